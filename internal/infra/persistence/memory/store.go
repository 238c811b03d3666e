// Package memory is an in-memory persistence backend. Writes are staged on the unit of
// work and applied atomically on Commit; reads see committed state only.
//
// Records are deep-copied on the way in and on the way out. Committed records are never
// modified in place, only replaced by a commit.
package memory

import (
	"context"
	"slices"
	"sync"

	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	"idstore/internal/errors"

	"github.com/mitchellh/copystructure"
)

type tables[U entity.Identity[K], K comparable] struct {
	users  []U
	logins []entity.LoginRecord[K]
	claims []entity.ClaimRecord[K]
}

func (t *tables[U, K]) clone() *tables[U, K] {
	return &tables[U, K]{
		users:  slices.Clone(t.users),
		logins: slices.Clone(t.logins),
		claims: slices.Clone(t.claims),
	}
}

// Store is both the unit-of-work factory and the repository factory of the backend.
type Store[U entity.Identity[K], K comparable] struct {
	mu      sync.RWMutex
	data    *tables[U, K]
	commits int
}

var (
	_ repository.UnitOfWorkFactory = (*Store[*entity.User[int], int])(nil)
	_ repository.RepositoryFactory[*entity.User[int], int] = (*Store[*entity.User[int], int])(nil)
)

// NewStore returns an empty store.
func NewStore[U entity.Identity[K], K comparable]() *Store[U, K] {
	return &Store[U, K]{data: &tables[U, K]{}}
}

// Begin opens a unit of work on the store.
func (s *Store[U, K]) Begin(ctx context.Context, scope repository.Scope) (repository.UnitOfWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &unitOfWork[U, K]{store: s, scope: scope}, nil
}

// Commits returns how many units of work were committed.
func (s *Store[U, K]) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commits
}

// CommittedUsers returns copies of the committed users.
func (s *Store[U, K]) CommittedUsers() ([]U, error) {
	return duplicateAll(s.snapshot().users)
}

// CommittedLogins returns copies of the committed logins.
func (s *Store[U, K]) CommittedLogins() ([]entity.LoginRecord[K], error) {
	return duplicateAll(s.snapshot().logins)
}

// CommittedClaims returns copies of the committed claims.
func (s *Store[U, K]) CommittedClaims() ([]entity.ClaimRecord[K], error) {
	return duplicateAll(s.snapshot().claims)
}

// Seed commits copies of the given records directly, bypassing units of work.
func (s *Store[U, K]) Seed(users []U, logins []entity.LoginRecord[K], claims []entity.ClaimRecord[K]) error {
	userCopies, err := duplicateAll(users)
	if err != nil {
		return err
	}
	loginCopies, err := duplicateAll(logins)
	if err != nil {
		return err
	}
	claimCopies, err := duplicateAll(claims)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	next.users = append(next.users, userCopies...)
	next.logins = append(next.logins, loginCopies...)
	next.claims = append(next.claims, claimCopies...)
	s.data = next

	return nil
}

// snapshot returns the committed tables. The returned slices are never written again.
func (s *Store[U, K]) snapshot() *tables[U, K] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data
}

func (s *Store[U, K]) apply(ops []func(*tables[U, K]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	for _, op := range ops {
		if err := op(next); err != nil {
			return err
		}
	}
	s.data = next
	s.commits++

	return nil
}

func (s *Store[U, K]) own(uow repository.UnitOfWork) (*unitOfWork[U, K], error) {
	u, ok := uow.(*unitOfWork[U, K])
	if !ok || u.store != s {
		return nil, errors.WithStack(repository.ErrForeignUnitOfWork)
	}

	return u, nil
}

type unitOfWork[U entity.Identity[K], K comparable] struct {
	store   *Store[U, K]
	scope   repository.Scope
	mu      sync.Mutex
	pending []func(*tables[U, K]) error
	closed  bool
}

func (u *unitOfWork[U, K]) Scope() repository.Scope {
	return u.scope
}

func (u *unitOfWork[U, K]) stage(op func(*tables[U, K]) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return errors.WithStack(repository.ErrUnitOfWorkClosed)
	}
	u.pending = append(u.pending, op)

	return nil
}

func (u *unitOfWork[U, K]) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return errors.WithStack(repository.ErrUnitOfWorkClosed)
	}
	if err := u.store.apply(u.pending); err != nil {
		return err
	}
	u.pending = nil
	u.closed = true

	return nil
}

func (u *unitOfWork[U, K]) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.pending = nil
	u.closed = true

	return nil
}

// duplicate deep-copies item. Only exported fields survive the copy.
func duplicate[T any](item T) (T, error) {
	copied, err := copystructure.Copy(item)
	if err != nil {
		return item, errors.Wrapf(err, "failed to copy %T", item)
	}
	if copied == nil {
		var zero T
		return zero, nil
	}
	out, ok := copied.(T)
	if !ok {
		return item, errors.Errorf("copy of %T has type %T", item, copied)
	}

	return out, nil
}

func duplicateAll[T any](items []T) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		copied, err := duplicate(item)
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}

	return out, nil
}
