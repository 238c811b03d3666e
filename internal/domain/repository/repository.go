// Package repository defines the contracts idstore consumes from its persistence
// collaborator. The adapter depends only on these interfaces; gorm and in-memory
// implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"idstore/internal/domain/entity"
	"idstore/internal/domain/specification"
	"idstore/internal/errors"
)

var (
	// ErrNotFound is returned by FindFirst when no record satisfies the specification.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned by Add when a record with the same identity exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrUnsupported is returned by repositories that only expose part of Repository,
	// e.g. an email view that cannot Add users.
	ErrUnsupported = errors.New("operation not supported by repository")
	// ErrForeignUnitOfWork is returned when a repository factory is handed a unit of work
	// opened by another backend.
	ErrForeignUnitOfWork = errors.New("unit of work belongs to another backend")
	// ErrUnitOfWorkClosed is returned when a closed unit of work is used.
	ErrUnitOfWorkClosed = errors.New("unit of work is closed")
)

// FetchStrategy bounds a Find. A nil strategy fetches everything.
type FetchStrategy struct {
	Limit  int
	Offset int
}

// Repository is an abstract collection of T bound to one unit of work.
type Repository[T any] interface {
	Add(ctx context.Context, item T) error
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, item T) error

	// Find returns every record satisfying spec. No match is an empty slice, not an error.
	Find(ctx context.Context, spec specification.Specification[T], fetch *FetchStrategy) ([]T, error)

	// FindFirst returns the first record satisfying spec, or ErrNotFound.
	FindFirst(ctx context.Context, spec specification.Specification[T], fetch *FetchStrategy) (T, error)
}

// RepositoryFactory hands out repositories bound to a unit of work, one method per
// capability.
type RepositoryFactory[U entity.Identity[K], K comparable] interface {
	Users(uow UnitOfWork) (Repository[U], error)
	Logins(uow UnitOfWork) (Repository[entity.LoginRecord[K]], error)
	Claims(uow UnitOfWork) (Repository[entity.ClaimRecord[K]], error)
	Emails(uow UnitOfWork) (Repository[entity.EmailHolder[K]], error)
	EmailConfirmations(uow UnitOfWork) (Repository[entity.EmailConfirmable[K]], error)
}

// DependencyFactory constructs composite records the caller does not supply whole.
type DependencyFactory[K comparable] interface {
	NewLogin(userID K, provider, providerKey string) (entity.LoginRecord[K], error)
	NewClaim(userID K, claim entity.ClaimInfo) (entity.ClaimRecord[K], error)
}

// Page applies fetch to an already filtered slice.
func Page[T any](items []T, fetch *FetchStrategy) []T {
	if fetch == nil {
		return items
	}
	if fetch.Offset > 0 {
		if fetch.Offset >= len(items) {
			return items[:0]
		}
		items = items[fetch.Offset:]
	}
	if fetch.Limit > 0 && fetch.Limit < len(items) {
		items = items[:fetch.Limit]
	}

	return items
}
