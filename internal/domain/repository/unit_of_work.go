package repository

import "context"

// Scope names the capability a unit of work is opened for. Backends may use it to pick
// tables, connections or isolation; the adapter only passes it through.
type Scope string

const (
	ScopeUser              Scope = "user"
	ScopeLogin             Scope = "login"
	ScopeClaim             Scope = "claim"
	ScopeEmail             Scope = "email"
	ScopeEmailConfirmation Scope = "email_confirmation"
)

// UnitOfWork is a transactional scope bounding one or more repository calls.
type UnitOfWork interface {
	// Scope returns the capability the unit of work was opened for.
	Scope() Scope

	// Commit makes every change done through the unit of work's repositories durable.
	Commit(ctx context.Context) error

	// Close releases the scope. Uncommitted changes are discarded. Close is safe to call
	// more than once and after Commit.
	Close() error
}

// UnitOfWorkFactory opens transactional scopes.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context, scope Scope) (UnitOfWork, error)
}
