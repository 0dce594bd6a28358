package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/voting-escrow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExtractSQLParts(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "escrow_locks"`))
	assert.Equal(t, "escrow_locks", extractTableName(`SELECT * FROM "escrow_locks" WHERE account = $1`))
	assert.Equal(t, "escrow_operations", extractTableName(`INSERT INTO "escrow_operations" ("operation_id") VALUES ($1)`))
	assert.Equal(t, "token_accounts", extractTableName(`UPDATE "token_accounts" SET "balance"=$1`))
	assert.Equal(t, "", extractTableName("SET LOCAL lock_timeout = 5000"))
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseGormLevel("silent"))
	assert.Equal(t, logger.Error, ParseGormLevel("ERROR"))
	assert.Equal(t, logger.Warn, ParseGormLevel("warn"))
	assert.Equal(t, logger.Info, ParseGormLevel("debug"))
}

func TestDatabaseLoggerTrace(t *testing.T) {
	ctx := context.Background()
	query := func() (string, int64) { return `SELECT * FROM "escrow_locks"`, 1 }

	t.Run("Errors are logged at error level", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["table"] == "escrow_locks" && f["error"] == "boom"
		})).Once()

		NewDatabaseLogger(core, nil, "warn").Trace(ctx, time.Now(), query, errors.New("boom"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		NewDatabaseLogger(core, nil, "warn").Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	})

	t.Run("Slow queries warn", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(core, nil, "warn").(*DatabaseLogger).WithSlowThreshold(time.Millisecond)
		l.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		NewDatabaseLogger(core, nil, "silent").Trace(ctx, time.Now(), query, errors.New("boom"))
	})
}
