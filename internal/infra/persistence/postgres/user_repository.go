package postgres

import (
	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	"idstore/internal/domain/specification"
	"idstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var userColumns = map[specification.Field]string{
	specification.FieldKey:   "id",
	specification.FieldName:  "user_name",
	specification.FieldEmail: "email",
}

// NewUserRepository creates a user repository running on db.
func NewUserRepository(db *gorm.DB) repository.Repository[*User] {
	return &gormRepository[*User, model.UserModel]{
		tx:       db,
		columns:  userColumns,
		order:    "user_name",
		toDomain: toUserDomain,
		add: func(tx *gorm.DB, user *User) error {
			if user == nil {
				return errNilRecord
			}
			if user.ID == uuid.Nil {
				user.ID = uuid.New()
			}

			row := toUserModel(user)
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			user.CreatedAt, user.UpdatedAt = row.CreatedAt, row.UpdatedAt

			return nil
		},
		update: func(tx *gorm.DB, user *User) error {
			if user == nil {
				return errNilRecord
			}

			return affectedOne(tx.Model(&model.UserModel{}).
				Where("id = ?", user.ID).
				Updates(map[string]any{
					"user_name":       user.UserName,
					"email":           user.EmailAddress,
					"email_confirmed": user.Confirmed,
				}))
		},
		remove: func(tx *gorm.DB, user *User) error {
			if user == nil {
				return errNilRecord
			}

			return affectedOne(tx.Where("id = ?", user.ID).Delete(&model.UserModel{}))
		},
	}
}

// NewEmailRepository creates a view of the users table that only changes the email column.
// Users are added and deleted through the user repository.
func NewEmailRepository(db *gorm.DB) repository.Repository[entity.EmailHolder[uuid.UUID]] {
	return &gormRepository[entity.EmailHolder[uuid.UUID], model.UserModel]{
		tx:      db,
		columns: userColumns,
		order:   "user_name",
		toDomain: func(m *model.UserModel) entity.EmailHolder[uuid.UUID] {
			return toUserDomain(m)
		},
		update: func(tx *gorm.DB, holder entity.EmailHolder[uuid.UUID]) error {
			return affectedOne(tx.Model(&model.UserModel{}).
				Where("id = ?", holder.Key()).
				Update("email", holder.Email()))
		},
	}
}

// NewEmailConfirmationRepository creates a view of the users table that only changes the
// confirmation flag.
func NewEmailConfirmationRepository(db *gorm.DB) repository.Repository[entity.EmailConfirmable[uuid.UUID]] {
	return &gormRepository[entity.EmailConfirmable[uuid.UUID], model.UserModel]{
		tx:      db,
		columns: userColumns,
		order:   "user_name",
		toDomain: func(m *model.UserModel) entity.EmailConfirmable[uuid.UUID] {
			return toUserDomain(m)
		},
		update: func(tx *gorm.DB, confirmable entity.EmailConfirmable[uuid.UUID]) error {
			return affectedOne(tx.Model(&model.UserModel{}).
				Where("id = ?", confirmable.Key()).
				Update("email_confirmed", confirmable.EmailConfirmed()))
		},
	}
}
