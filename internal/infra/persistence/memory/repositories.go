package memory

import (
	"context"

	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	"idstore/internal/domain/specification"
	"idstore/internal/errors"
)

// collection adapts one table, or a view over one, to repository.Repository[T].
type collection[T any, U entity.Identity[K], K comparable] struct {
	uow    *unitOfWork[U, K]
	list   func(t *tables[U, K]) []T
	add    func(t *tables[U, K], item T) error
	update func(t *tables[U, K], item T) error
	delete func(t *tables[U, K], item T) error
}

func (c *collection[T, U, K]) Add(ctx context.Context, item T) error {
	return c.write(ctx, item, c.add)
}

func (c *collection[T, U, K]) Update(ctx context.Context, item T) error {
	return c.write(ctx, item, c.update)
}

func (c *collection[T, U, K]) Delete(ctx context.Context, item T) error {
	return c.write(ctx, item, c.delete)
}

func (c *collection[T, U, K]) write(ctx context.Context, item T, fn func(*tables[U, K], T) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fn == nil {
		return errors.WithStack(repository.ErrUnsupported)
	}

	staged, err := duplicate(item)
	if err != nil {
		return err
	}

	return c.uow.stage(func(t *tables[U, K]) error { return fn(t, staged) })
}

func (c *collection[T, U, K]) Find(
	ctx context.Context,
	spec specification.Specification[T],
	fetch *repository.FetchStrategy,
) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := c.list(c.uow.store.snapshot())

	return duplicateAll(repository.Page(specification.Filter(spec, rows), fetch))
}

func (c *collection[T, U, K]) FindFirst(
	ctx context.Context,
	spec specification.Specification[T],
	fetch *repository.FetchStrategy,
) (T, error) {
	var zero T

	found, err := c.Find(ctx, spec, fetch)
	if err != nil {
		return zero, err
	}
	if len(found) == 0 {
		return zero, errors.WithStack(repository.ErrNotFound)
	}

	return found[0], nil
}

// Users returns the user repository bound to uow.
func (s *Store[U, K]) Users(uow repository.UnitOfWork) (repository.Repository[U], error) {
	u, err := s.own(uow)
	if err != nil {
		return nil, err
	}

	return &collection[U, U, K]{
		uow:  u,
		list: func(t *tables[U, K]) []U { return t.users },
		add: func(t *tables[U, K], user U) error {
			if indexByKey(t.users, user.Key()) >= 0 {
				return errors.WithStack(repository.ErrDuplicate)
			}
			t.users = append(t.users, user)

			return nil
		},
		update: replaceUser[U, K],
		delete: func(t *tables[U, K], user U) error {
			i := indexByKey(t.users, user.Key())
			if i < 0 {
				return errors.WithStack(repository.ErrNotFound)
			}
			t.users = append(t.users[:i], t.users[i+1:]...)

			return nil
		},
	}, nil
}

// Logins returns the login repository bound to uow.
func (s *Store[U, K]) Logins(uow repository.UnitOfWork) (repository.Repository[entity.LoginRecord[K]], error) {
	u, err := s.own(uow)
	if err != nil {
		return nil, err
	}

	return &collection[entity.LoginRecord[K], U, K]{
		uow:  u,
		list: func(t *tables[U, K]) []entity.LoginRecord[K] { return t.logins },
		add: func(t *tables[U, K], login entity.LoginRecord[K]) error {
			if indexOf(t.logins, login, sameLogin[K]) >= 0 {
				return errors.WithStack(repository.ErrDuplicate)
			}
			t.logins = append(t.logins, login)

			return nil
		},
		update: func(t *tables[U, K], login entity.LoginRecord[K]) error {
			i := indexOf(t.logins, login, sameLogin[K])
			if i < 0 {
				return errors.WithStack(repository.ErrNotFound)
			}
			t.logins[i] = login

			return nil
		},
		delete: func(t *tables[U, K], login entity.LoginRecord[K]) error {
			i := indexOf(t.logins, login, sameLogin[K])
			if i < 0 {
				return errors.WithStack(repository.ErrNotFound)
			}
			t.logins = append(t.logins[:i], t.logins[i+1:]...)

			return nil
		},
	}, nil
}

// Claims returns the claim repository bound to uow.
func (s *Store[U, K]) Claims(uow repository.UnitOfWork) (repository.Repository[entity.ClaimRecord[K]], error) {
	u, err := s.own(uow)
	if err != nil {
		return nil, err
	}

	return &collection[entity.ClaimRecord[K], U, K]{
		uow:  u,
		list: func(t *tables[U, K]) []entity.ClaimRecord[K] { return t.claims },
		add: func(t *tables[U, K], claim entity.ClaimRecord[K]) error {
			t.claims = append(t.claims, claim)

			return nil
		},
		update: func(t *tables[U, K], claim entity.ClaimRecord[K]) error {
			i := indexOf(t.claims, claim, sameClaim[K])
			if i < 0 {
				return errors.WithStack(repository.ErrNotFound)
			}
			t.claims[i] = claim

			return nil
		},
		delete: func(t *tables[U, K], claim entity.ClaimRecord[K]) error {
			i := indexOf(t.claims, claim, sameClaim[K])
			if i < 0 {
				return errors.WithStack(repository.ErrNotFound)
			}
			t.claims = append(t.claims[:i], t.claims[i+1:]...)

			return nil
		},
	}, nil
}

// Emails returns a view of the users that hold an email. It cannot add or delete users.
func (s *Store[U, K]) Emails(uow repository.UnitOfWork) (repository.Repository[entity.EmailHolder[K]], error) {
	u, err := s.own(uow)
	if err != nil {
		return nil, err
	}

	return &collection[entity.EmailHolder[K], U, K]{
		uow:    u,
		list:   usersAs[entity.EmailHolder[K], U, K],
		update: replaceUserAs[entity.EmailHolder[K], U, K],
	}, nil
}

// EmailConfirmations returns a view of the users that track email confirmation.
func (s *Store[U, K]) EmailConfirmations(uow repository.UnitOfWork) (repository.Repository[entity.EmailConfirmable[K]], error) {
	u, err := s.own(uow)
	if err != nil {
		return nil, err
	}

	return &collection[entity.EmailConfirmable[K], U, K]{
		uow:    u,
		list:   usersAs[entity.EmailConfirmable[K], U, K],
		update: replaceUserAs[entity.EmailConfirmable[K], U, K],
	}, nil
}

func usersAs[T any, U entity.Identity[K], K comparable](t *tables[U, K]) []T {
	views := make([]T, 0, len(t.users))
	for _, user := range t.users {
		if view, ok := any(user).(T); ok {
			views = append(views, view)
		}
	}

	return views
}

func replaceUserAs[T any, U entity.Identity[K], K comparable](t *tables[U, K], item T) error {
	user, ok := any(item).(U)
	if !ok {
		return errors.WithStack(repository.ErrUnsupported)
	}

	return replaceUser(t, user)
}

func replaceUser[U entity.Identity[K], K comparable](t *tables[U, K], user U) error {
	i := indexByKey(t.users, user.Key())
	if i < 0 {
		return errors.WithStack(repository.ErrNotFound)
	}
	t.users[i] = user

	return nil
}

func indexByKey[T entity.Keyed[K], K comparable](items []T, key K) int {
	for i, item := range items {
		if item.Key() == key {
			return i
		}
	}

	return -1
}

func indexOf[T any](items []T, target T, same func(a, b T) bool) int {
	for i, item := range items {
		if same(item, target) {
			return i
		}
	}

	return -1
}

func sameLogin[K comparable](a, b entity.LoginRecord[K]) bool {
	return a.Key() == b.Key() && a.Provider() == b.Provider() && a.ProviderKey() == b.ProviderKey()
}

func sameClaim[K comparable](a, b entity.ClaimRecord[K]) bool {
	return a.Key() == b.Key() &&
		a.Issuer() == b.Issuer() &&
		a.Type() == b.Type() &&
		a.Value() == b.Value()
}
