package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are assigned by the application so the same
// schema works on PostgreSQL and SQLite.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserName       string    `gorm:"type:varchar(256);uniqueIndex;not null"`
	Email          string    `gorm:"type:varchar(256);index"`
	EmailConfirmed bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every model owned by the identity store, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&UserLoginModel{},
		&UserClaimModel{},
	}
}
