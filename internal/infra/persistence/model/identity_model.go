// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. Handle and email carry
// unique constraints: the database, not the application's pre-flight
// conflict check, is what actually guarantees uniqueness when two
// registrations race (the check-then-write sequence is not atomic).
type IdentityModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Handle         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	Salt           []byte    `gorm:"type:bytea;not null"`
	CredentialHash string    `gorm:"type:varchar(64);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
