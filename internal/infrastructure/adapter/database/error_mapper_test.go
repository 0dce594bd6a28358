package database

import (
	"errors"
	"testing"

	domainErr "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper(t *testing.T) {
	m := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"lock timeout", errors.New("canceling statement due to lock timeout"), domainErr.ErrAccountLocked},
		{"duplicate operation", errors.New(`duplicate key value violates unique constraint "idx_escrow_operations_operation_id"`), domainErr.ErrDuplicateOperation},
		{"check", errors.New(`violates check constraint "chk_escrow_locks_amount"`), domainErr.ErrConstraintViolation},
		{"refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"timeout", errors.New("i/o timeout"), domainErr.ErrDatabaseConnection},
		{"other", errors.New("syntax error"), domainErr.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.MapError(tt.err, "test"), tt.want)
		})
	}

	assert.Nil(t, m.MapError(nil, "test"))
	assert.ErrorIs(t, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeLock), domainErr.ErrNoLock)
	assert.ErrorIs(t, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeOperation), domainErr.ErrOperationNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeTokenAccount), domainErr.ErrTokenAccountNotFound)
}
