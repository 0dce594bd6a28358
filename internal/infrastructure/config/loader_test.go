package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadAppliesDefaultsAndDurations(t *testing.T) {
	dir := writeConfig(t, Test, `
escrow:
  storage: memory
token:
  defaultAccounts:
    alice: "100"
`)

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Escrow.LockTimeout())
	assert.Equal(t, 4*365*24*time.Hour, cfg.Escrow.MaxLockDuration)
	assert.Equal(t, "escrow-vault", cfg.Token.EscrowAccount)
	assert.Equal(t, map[string]string{"alice": "100"}, cfg.Token.DefaultAccounts)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, "escrow:\n  storage: memory\n")

	t.Setenv("BP_SERVER_PORT", "9090")
	t.Setenv("BP_ESCROW_LOCK_TIMEOUT_MS", "250")
	t.Setenv("BP_ALLOW_TIME_TRAVEL", "true")
	t.Setenv("BP_LOCK_BACKEND", AccountLockRedis)

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Escrow.LockTimeout())
	assert.True(t, cfg.Escrow.AllowTimeTravel)
	assert.Equal(t, AccountLockRedis, cfg.Escrow.AccountLockBackend)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("staging", t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Server:      ServerConfig{Port: 8080},
			Escrow: EscrowConfig{
				Storage:            StorageMemory,
				LockTimeoutMs:      1000,
				MaxLockDuration:    time.Hour,
				QueueSize:          1,
				AccountLockBackend: AccountLockDatabase,
			},
			Token: TokenConfig{EscrowAccount: "vault"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := map[string]func(c *Config){
		"bad port":            func(c *Config) { c.Server.Port = 0 },
		"unknown storage":     func(c *Config) { c.Escrow.Storage = "sqlite" },
		"postgres needs host": func(c *Config) { c.Escrow.Storage = StoragePostgres },
		"redis needs addr":    func(c *Config) { c.Escrow.AccountLockBackend = AccountLockRedis },
		"zero lock timeout":   func(c *Config) { c.Escrow.LockTimeoutMs = 0 },
		"zero queue":          func(c *Config) { c.Escrow.QueueSize = 0 },
		"no vault":            func(c *Config) { c.Token.EscrowAccount = "" },
		"time travel in production": func(c *Config) {
			c.Environment = Production
			c.Escrow.AllowTimeTravel = true
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
