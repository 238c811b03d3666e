// Package usecase contains the application-specific business rules.
// It declares the identity store surface a host framework depends on.
package usecase

import (
	"context"

	"idstore/internal/domain/entity"
)

// UserStore manages user records.
type UserStore[U entity.Identity[K], K comparable] interface {
	Create(ctx context.Context, user U) error
	Update(ctx context.Context, user U) error
	Delete(ctx context.Context, user U) error

	// FindByID returns the zero U and a nil error when no user has the id.
	FindByID(ctx context.Context, userID K) (U, error)

	// FindByName returns the zero U and a nil error when no user has the name.
	FindByName(ctx context.Context, userName string) (U, error)

	// Close releases the store. Every call already releases its own scope.
	Close() error
}

// UserLoginStore manages external logins linked to users.
type UserLoginStore[U entity.Identity[K], K comparable] interface {
	UserStore[U, K]

	AddLogin(ctx context.Context, user U, login *entity.LoginInfo) error
	RemoveLogin(ctx context.Context, user U, login *entity.LoginInfo) error
	GetLogins(ctx context.Context, user U) ([]entity.LoginInfo, error)

	// Find returns the user owning login, or the zero U when the login is unknown.
	Find(ctx context.Context, login *entity.LoginInfo) (U, error)
}

// UserClaimStore manages claims issued for users.
type UserClaimStore[U entity.Identity[K], K comparable] interface {
	UserStore[U, K]

	AddClaim(ctx context.Context, user U, claim *entity.ClaimInfo) error
	RemoveClaim(ctx context.Context, user U, claim *entity.ClaimInfo) error
	GetClaims(ctx context.Context, user U) ([]entity.ClaimInfo, error)
}

// UserEmailStore manages user email addresses and their confirmation state.
type UserEmailStore[U entity.Identity[K], K comparable] interface {
	UserStore[U, K]

	SetEmail(ctx context.Context, user U, email string) error
	GetEmail(ctx context.Context, user U) (string, error)
	GetEmailConfirmed(ctx context.Context, user U) (bool, error)
	SetEmailConfirmed(ctx context.Context, user U, confirmed bool) error
	FindByEmail(ctx context.Context, email string) (U, error)
}

// IdentityUsecase is the full store surface: users, logins, claims and email.
type IdentityUsecase[U entity.Identity[K], K comparable] interface {
	UserLoginStore[U, K]
	UserClaimStore[U, K]
	UserEmailStore[U, K]
}
