package postgres

import (
	"context"
	"testing"

	"idstore/config"
	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	"idstore/internal/domain/specification"
	"idstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Driver = config.DriverSQLite
	cfg.Store.SQLitePath = sqliteMemoryPath

	db, err := Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

type fixture struct {
	db       *gorm.DB
	uows     repository.UnitOfWorkFactory
	repos    repository.RepositoryFactory[*User, uuid.UUID]
	alice    *User
	bob      *User
	aliceKey uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := setupTestDB(t)
	alice := &User{ID: uuid.New(), UserName: "alice", EmailAddress: "alice@example.com"}
	bob := &User{ID: uuid.New(), UserName: "bob"}
	require.NoError(t, db.Create(toUserModel(alice)).Error)
	require.NoError(t, db.Create(toUserModel(bob)).Error)

	return &fixture{
		db:       db,
		uows:     NewUnitOfWorkFactory(db),
		repos:    NewRepositoryFactory(),
		alice:    alice,
		bob:      bob,
		aliceKey: alice.ID,
	}
}

// run executes fn in a unit of work and commits when fn succeeds.
func (f *fixture) run(t *testing.T, scope repository.Scope, fn func(uow repository.UnitOfWork) error) error {
	t.Helper()

	ctx := context.Background()
	uow, err := f.uows.Begin(ctx, scope)
	require.NoError(t, err)
	defer func() { assert.NoError(t, uow.Close()) }()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	carol := &User{UserName: "carol"}
	require.NoError(t, f.run(t, repository.ScopeUser, func(uow repository.UnitOfWork) error {
		users, err := f.repos.Users(uow)
		require.NoError(t, err)

		return users.Add(ctx, carol)
	}))
	assert.NotEqual(t, uuid.Nil, carol.ID, "a missing key is generated")
	assert.False(t, carol.CreatedAt.IsZero())

	require.NoError(t, f.run(t, repository.ScopeUser, func(uow repository.UnitOfWork) error {
		users, err := f.repos.Users(uow)
		require.NoError(t, err)

		found, err := users.FindFirst(ctx, specification.ByUserName[*User]("carol"), nil)
		require.NoError(t, err)
		assert.Equal(t, carol.ID, found.ID)

		found.EmailAddress = "carol@example.com"

		return users.Update(ctx, found)
	}))

	var row model.UserModel
	require.NoError(t, f.db.First(&row, "id = ?", carol.ID).Error)
	assert.Equal(t, "carol@example.com", row.Email)

	require.NoError(t, f.run(t, repository.ScopeUser, func(uow repository.UnitOfWork) error {
		users, err := f.repos.Users(uow)
		require.NoError(t, err)

		return users.Delete(ctx, carol)
	}))

	var count int64
	require.NoError(t, f.db.Model(&model.UserModel{}).Where("id = ?", carol.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserRepository_DuplicateAndMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.run(t, repository.ScopeUser, func(uow repository.UnitOfWork) error {
		users, err := f.repos.Users(uow)
		require.NoError(t, err)

		return users.Add(ctx, &User{UserName: "alice"})
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = f.run(t, repository.ScopeUser, func(uow repository.UnitOfWork) error {
		users, err := f.repos.Users(uow)
		require.NoError(t, err)

		return users.Update(ctx, &User{ID: uuid.New(), UserName: "ghost"})
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = f.run(t, repository.ScopeUser, func(uow repository.UnitOfWork) error {
		users, err := f.repos.Users(uow)
		require.NoError(t, err)

		_, err = users.FindFirst(ctx, specification.ByUserID[*User](uuid.New()), nil)

		return err
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUnitOfWork_CloseRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	uow, err := f.uows.Begin(ctx, repository.ScopeUser)
	require.NoError(t, err)
	users, err := f.repos.Users(uow)
	require.NoError(t, err)
	require.NoError(t, users.Add(ctx, &User{UserName: "dave"}))
	require.NoError(t, uow.Close())
	require.NoError(t, uow.Close())

	var count int64
	require.NoError(t, f.db.Model(&model.UserModel{}).Where("user_name = ?", "dave").Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, uow.Commit(ctx), repository.ErrUnitOfWorkClosed)
	_, err = f.repos.Users(uow)
	assert.ErrorIs(t, err, repository.ErrUnitOfWorkClosed)
}

type foreignUnitOfWork struct{}

func (foreignUnitOfWork) Scope() repository.Scope        { return repository.ScopeUser }
func (foreignUnitOfWork) Commit(_ context.Context) error { return nil }
func (foreignUnitOfWork) Close() error                   { return nil }

func TestRepositoryFactory_ForeignUnitOfWork(t *testing.T) {
	_, err := NewRepositoryFactory().Claims(foreignUnitOfWork{})
	assert.ErrorIs(t, err, repository.ErrForeignUnitOfWork)
}

func TestLoginRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	logins := []entity.LoginRecord[uuid.UUID]{
		&entity.Login[uuid.UUID]{UserID: f.alice.ID, LoginProvider: "a", LoginKey: "b"},
		&entity.Login[uuid.UUID]{UserID: f.bob.ID, LoginProvider: "c", LoginKey: "d"},
		&entity.Login[uuid.UUID]{UserID: f.alice.ID, LoginProvider: "c", LoginKey: "d"},
	}

	require.NoError(t, f.run(t, repository.ScopeLogin, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.Logins(uow)
		require.NoError(t, err)
		for _, login := range logins {
			require.NoError(t, repo.Add(ctx, login))
		}

		return nil
	}))

	err := f.run(t, repository.ScopeLogin, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.Logins(uow)
		require.NoError(t, err)

		return repo.Add(ctx, logins[0])
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	require.NoError(t, f.run(t, repository.ScopeLogin, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.Logins(uow)
		require.NoError(t, err)

		owned, err := repo.Find(ctx, specification.ByUserLogin(f.aliceKey), nil)
		require.NoError(t, err)
		assert.Len(t, owned, 2)

		byProvider, err := repo.Find(ctx, specification.ByLoginProviderAndKey[uuid.UUID]("c", "d"), nil)
		require.NoError(t, err)
		assert.Len(t, byProvider, 2)

		swapped, err := repo.Find(ctx, specification.ByLoginProviderAndKey[uuid.UUID]("d", "c"), nil)
		require.NoError(t, err)
		assert.Empty(t, swapped)

		assert.ErrorIs(t, repo.Update(ctx, logins[0]), repository.ErrUnsupported)

		return repo.Delete(ctx, logins[2])
	}))

	var count int64
	require.NoError(t, f.db.Model(&model.UserLoginModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestClaimRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	claims := entity.NewFactory[uuid.UUID]()

	admin, err := claims.NewClaim(f.alice.ID, entity.ClaimInfo{Type: "role", Value: "admin", Issuer: "local"})
	require.NoError(t, err)
	reader, err := claims.NewClaim(f.alice.ID, entity.ClaimInfo{Type: "role", Value: "reader", Issuer: "local"})
	require.NoError(t, err)

	require.NoError(t, f.run(t, repository.ScopeClaim, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.Claims(uow)
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, admin))

		return repo.Add(ctx, reader)
	}))

	require.NoError(t, f.run(t, repository.ScopeClaim, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.Claims(uow)
		require.NoError(t, err)

		spec := specification.And(
			specification.ByUserClaim(f.aliceKey),
			specification.ByClaimTypeAndValue[uuid.UUID]("role", "admin"),
		)
		found, err := repo.Find(ctx, spec, nil)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, entity.ToClaimInfo(admin), entity.ToClaimInfo(found[0]))

		return repo.Delete(ctx, found[0])
	}))

	require.NoError(t, f.run(t, repository.ScopeClaim, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.Claims(uow)
		require.NoError(t, err)

		// Or cannot be pushed down and is filtered in memory.
		spec := specification.Or(
			specification.ByClaimTypeAndValue[uuid.UUID]("role", "admin"),
			specification.ByClaimTypeAndValue[uuid.UUID]("role", "reader"),
		)
		found, err := repo.Find(ctx, spec, nil)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "reader", found[0].Value())

		return nil
	}))
}

func TestEmailRepositories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.run(t, repository.ScopeEmail, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.Emails(uow)
		require.NoError(t, err)

		holder, err := repo.FindFirst(ctx, specification.ByEmail[entity.EmailHolder[uuid.UUID]]("alice@example.com"), nil)
		require.NoError(t, err)
		assert.Equal(t, f.aliceKey, holder.Key())
		assert.ErrorIs(t, repo.Delete(ctx, holder), repository.ErrUnsupported)

		holder.SetEmail("alice@example.org")

		return repo.Update(ctx, holder)
	}))

	require.NoError(t, f.run(t, repository.ScopeEmailConfirmation, func(uow repository.UnitOfWork) error {
		repo, err := f.repos.EmailConfirmations(uow)
		require.NoError(t, err)

		status, err := repo.FindFirst(ctx, specification.ByEmailConfirmationStatus(f.aliceKey), nil)
		require.NoError(t, err)
		assert.False(t, status.EmailConfirmed())
		status.SetEmailConfirmed(true)

		return repo.Update(ctx, status)
	}))

	var row model.UserModel
	require.NoError(t, f.db.First(&row, "id = ?", f.aliceKey).Error)
	assert.Equal(t, "alice@example.org", row.Email)
	assert.True(t, row.EmailConfirmed)
	assert.Equal(t, "alice", row.UserName)
}

func TestFind_FetchStrategyIsPushedDown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.run(t, repository.ScopeUser, func(uow repository.UnitOfWork) error {
		users, err := f.repos.Users(uow)
		require.NoError(t, err)

		all := specification.New(func(*User) bool { return true })
		found, err := users.Find(ctx, all, &repository.FetchStrategy{Offset: 1})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "bob", found[0].UserName)

		named, err := users.Find(ctx, specification.ByUserName[*User]("alice"), &repository.FetchStrategy{Limit: 1})
		require.NoError(t, err)
		require.Len(t, named, 1)

		return nil
	}))
}
