package postgres

import (
	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	"idstore/internal/domain/specification"
	"idstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewLoginRepository creates an external login repository running on db. A login row is
// its own primary key, so logins are added and deleted but never updated.
func NewLoginRepository(db *gorm.DB) repository.Repository[entity.LoginRecord[uuid.UUID]] {
	return &gormRepository[entity.LoginRecord[uuid.UUID], model.UserLoginModel]{
		tx: db,
		columns: map[specification.Field]string{
			specification.FieldKey:         "user_id",
			specification.FieldProvider:    "login_provider",
			specification.FieldProviderKey: "provider_key",
		},
		order:    "user_id, login_provider, provider_key",
		toDomain: toLoginDomain,
		add: func(tx *gorm.DB, login entity.LoginRecord[uuid.UUID]) error {
			if login == nil {
				return errNilRecord
			}

			return tx.Create(toLoginModel(login)).Error
		},
		remove: func(tx *gorm.DB, login entity.LoginRecord[uuid.UUID]) error {
			if login == nil {
				return errNilRecord
			}

			return affectedOne(tx.
				Where("user_id = ? AND login_provider = ? AND provider_key = ?",
					login.Key(), login.Provider(), login.ProviderKey()).
				Delete(&model.UserLoginModel{}))
		},
	}
}

// NewClaimRepository creates a claim repository running on db.
func NewClaimRepository(db *gorm.DB) repository.Repository[entity.ClaimRecord[uuid.UUID]] {
	return &gormRepository[entity.ClaimRecord[uuid.UUID], model.UserClaimModel]{
		tx: db,
		columns: map[specification.Field]string{
			specification.FieldKey:        "user_id",
			specification.FieldClaimType:  "claim_type",
			specification.FieldClaimValue: "claim_value",
		},
		order:    "created_at, id",
		toDomain: toClaimDomain,
		add: func(tx *gorm.DB, claim entity.ClaimRecord[uuid.UUID]) error {
			if claim == nil {
				return errNilRecord
			}

			row := toClaimModel(claim)
			if row.ID == uuid.Nil {
				row.ID = uuid.New()
			}

			return tx.Create(row).Error
		},
		update: func(tx *gorm.DB, claim entity.ClaimRecord[uuid.UUID]) error {
			if claim == nil {
				return errNilRecord
			}

			row := toClaimModel(claim)
			if row.ID == uuid.Nil {
				return repository.ErrNotFound
			}

			return affectedOne(tx.Model(&model.UserClaimModel{}).
				Where("id = ?", row.ID).
				Updates(map[string]any{
					"issuer":          row.Issuer,
					"original_issuer": row.OriginalIssuer,
					"claim_type":      row.ClaimType,
					"claim_value":     row.ClaimValue,
					"value_type":      row.ValueType,
				}))
		},
		remove: func(tx *gorm.DB, claim entity.ClaimRecord[uuid.UUID]) error {
			if claim == nil {
				return errNilRecord
			}

			row := toClaimModel(claim)
			if row.ID != uuid.Nil {
				return affectedOne(tx.Where("id = ?", row.ID).Delete(&model.UserClaimModel{}))
			}

			return affectedOne(tx.
				Where("user_id = ? AND issuer = ? AND claim_type = ? AND claim_value = ?",
					row.UserID, row.Issuer, row.ClaimType, row.ClaimValue).
				Delete(&model.UserClaimModel{}))
		},
	}
}
