// Package model holds the GORM persistence models mirroring database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The integer id is the identity primary
// key and the token subject; email and phone_number carry unique indexes that
// are the authoritative duplicate-registration guard.
type UserModel struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	Guid             *uuid.UUID `gorm:"type:uuid"`
	FirstName        string     `gorm:"type:varchar(100)"`
	LastName         string     `gorm:"type:varchar(100)"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber      string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash     []byte     `gorm:"type:bytea;not null"`
	PasswordSalt     []byte     `gorm:"type:bytea;not null"`
	Credits          int        `gorm:"not null;default:0"`
	RegistrationDate time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
