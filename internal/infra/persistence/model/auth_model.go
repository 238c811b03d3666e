package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLoginModel mirrors the 'user_logins' table. A login is identified by the whole
// (user, provider, provider key) triple.
type UserLoginModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoginProvider string    `gorm:"type:varchar(128);primaryKey"`
	ProviderKey   string    `gorm:"type:varchar(128);primaryKey;index:idx_user_logins_provider_key"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLoginModel) TableName() string {
	return "user_logins"
}

// UserClaimModel mirrors the 'user_claims' table.
type UserClaimModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Issuer         string    `gorm:"type:varchar(256)"`
	OriginalIssuer string    `gorm:"type:varchar(256)"`
	ClaimType      string    `gorm:"type:varchar(256);not null;index:idx_user_claims_type_value"`
	ClaimValue     string    `gorm:"type:text;index:idx_user_claims_type_value"`
	ValueType      string    `gorm:"type:varchar(256)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserClaimModel) TableName() string {
	return "user_claims"
}
