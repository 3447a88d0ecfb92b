package postgres

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_users_email"}

	assert.True(t, isUniqueConstraintViolation(uniqueErr))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(uniqueErr, "create user")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))

	assert.False(t, isUniqueConstraintViolation(nil))
	assert.False(t, isUniqueConstraintViolation(errors.New("some other failure")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	notNullErr := &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "email"}

	assert.True(t, isNotNullConstraintViolation(notNullErr))
	assert.True(t, isNotNullConstraintViolation(errors.Wrap(notNullErr, "create user")))

	assert.False(t, isNotNullConstraintViolation(nil))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
}
