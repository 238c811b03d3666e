// Package postgres contains the gorm implementation of the persistence layer. It serves
// PostgreSQL in production and SQLite for local runs and tests.
package postgres

import (
	"context"
	"database/sql"
	"sync"

	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	"idstore/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the user type stored by this backend.
type User = entity.User[uuid.UUID]

// gormUnitOfWorkFactory opens one database transaction per unit of work.
type gormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewUnitOfWorkFactory is the constructor for gormUnitOfWorkFactory.
// This function will be used as an Fx provider.
func NewUnitOfWorkFactory(db *gorm.DB) repository.UnitOfWorkFactory {
	return &gormUnitOfWorkFactory{db: db}
}

// Begin starts a transaction. Every repository created from the returned unit of work
// runs its statements inside it.
func (f *gormUnitOfWorkFactory) Begin(ctx context.Context, scope repository.Scope) (repository.UnitOfWork, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "failed to begin transaction")
	}

	return &gormUnitOfWork{tx: tx, scope: scope}, nil
}

// gormUnitOfWork wraps a *gorm.DB transaction. In GORM a transaction is also a *gorm.DB.
type gormUnitOfWork struct {
	mu    sync.Mutex
	tx    *gorm.DB
	scope repository.Scope
	done  bool
}

func (u *gormUnitOfWork) Scope() repository.Scope {
	return u.scope
}

// Commit commits the transaction. The unit of work cannot be used afterwards.
func (u *gormUnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return repository.ErrUnitOfWorkClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.done = true
	if err := u.tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// Close rolls back whatever was not committed. It is safe to call after Commit.
func (u *gormUnitOfWork) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return nil
	}

	u.done = true
	if err := u.tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errors.Wrap(err, "failed to roll back transaction")
	}

	return nil
}

func (u *gormUnitOfWork) session() (*gorm.DB, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return nil, repository.ErrUnitOfWorkClosed
	}

	return u.tx, nil
}

// gormRepositoryFactory creates repositories bound to a gormUnitOfWork.
type gormRepositoryFactory struct{}

var _ repository.RepositoryFactory[*User, uuid.UUID] = (*gormRepositoryFactory)(nil)

// NewRepositoryFactory is the constructor for gormRepositoryFactory.
func NewRepositoryFactory() repository.RepositoryFactory[*User, uuid.UUID] {
	return &gormRepositoryFactory{}
}

func (f *gormRepositoryFactory) Users(uow repository.UnitOfWork) (repository.Repository[*User], error) {
	tx, err := transactionOf(uow)
	if err != nil {
		return nil, err
	}

	return NewUserRepository(tx), nil
}

func (f *gormRepositoryFactory) Logins(uow repository.UnitOfWork) (repository.Repository[entity.LoginRecord[uuid.UUID]], error) {
	tx, err := transactionOf(uow)
	if err != nil {
		return nil, err
	}

	return NewLoginRepository(tx), nil
}

func (f *gormRepositoryFactory) Claims(uow repository.UnitOfWork) (repository.Repository[entity.ClaimRecord[uuid.UUID]], error) {
	tx, err := transactionOf(uow)
	if err != nil {
		return nil, err
	}

	return NewClaimRepository(tx), nil
}

func (f *gormRepositoryFactory) Emails(uow repository.UnitOfWork) (repository.Repository[entity.EmailHolder[uuid.UUID]], error) {
	tx, err := transactionOf(uow)
	if err != nil {
		return nil, err
	}

	return NewEmailRepository(tx), nil
}

func (f *gormRepositoryFactory) EmailConfirmations(
	uow repository.UnitOfWork,
) (repository.Repository[entity.EmailConfirmable[uuid.UUID]], error) {
	tx, err := transactionOf(uow)
	if err != nil {
		return nil, err
	}

	return NewEmailConfirmationRepository(tx), nil
}

func transactionOf(uow repository.UnitOfWork) (*gorm.DB, error) {
	u, ok := uow.(*gormUnitOfWork)
	if !ok {
		return nil, repository.ErrForeignUnitOfWork
	}

	return u.session()
}
