package memory

import (
	"context"
	"sync"
	"testing"

	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	"idstore/internal/domain/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUser = entity.User[int]

func begin(t *testing.T, store *Store[*testUser, int], scope repository.Scope) repository.UnitOfWork {
	t.Helper()

	uow, err := store.Begin(context.Background(), scope)
	require.NoError(t, err)
	t.Cleanup(func() { _ = uow.Close() })

	return uow
}

func committedUsers(t *testing.T, store *Store[*testUser, int]) []*testUser {
	t.Helper()

	users, err := committedUsers(t, store)
	require.NoError(t, err)

	return users
}

func TestStore_CommitAppliesStagedWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()

	uow := begin(t, store, repository.ScopeUser)
	assert.Equal(t, repository.ScopeUser, uow.Scope())

	users, err := store.Users(uow)
	require.NoError(t, err)
	require.NoError(t, users.Add(ctx, &testUser{ID: 1, UserName: "alice"}))

	assert.Empty(t, committedUsers(t, store), "staged writes are invisible before commit")

	require.NoError(t, uow.Commit(ctx))
	assert.Len(t, committedUsers(t, store), 1)
	assert.Equal(t, 1, store.Commits())
}

func TestStore_CloseDiscardsStagedWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()

	uow := begin(t, store, repository.ScopeUser)
	users, err := store.Users(uow)
	require.NoError(t, err)
	require.NoError(t, users.Add(ctx, &testUser{ID: 1}))

	require.NoError(t, uow.Close())
	require.NoError(t, uow.Close())

	assert.Empty(t, committedUsers(t, store))
	assert.Zero(t, store.Commits())
	assert.ErrorIs(t, uow.Commit(ctx), repository.ErrUnitOfWorkClosed)
	assert.ErrorIs(t, users.Add(ctx, &testUser{ID: 2}), repository.ErrUnitOfWorkClosed)
}

func TestStore_FailedCommitIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()
	require.NoError(t, store.Seed([]*testUser{{ID: 1, UserName: "alice"}}, nil, nil))

	uow := begin(t, store, repository.ScopeUser)
	users, err := store.Users(uow)
	require.NoError(t, err)
	require.NoError(t, users.Add(ctx, &testUser{ID: 2, UserName: "bob"}))
	require.NoError(t, users.Add(ctx, &testUser{ID: 1, UserName: "again"}))

	assert.ErrorIs(t, uow.Commit(ctx), repository.ErrDuplicate)
	assert.Len(t, committedUsers(t, store), 1)
}

func TestStore_ForeignUnitOfWork(t *testing.T) {
	store := NewStore[*testUser, int]()
	other := NewStore[*testUser, int]()

	uow := begin(t, other, repository.ScopeLogin)

	_, err := store.Logins(uow)
	assert.ErrorIs(t, err, repository.ErrForeignUnitOfWork)
}

func TestStore_BeginHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore[*testUser, int]().Begin(ctx, repository.ScopeUser)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogins_FindByUser(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()
	require.NoError(t, store.Seed(nil, []entity.LoginRecord[int]{
		&entity.Login[int]{UserID: 5, LoginProvider: "a", LoginKey: "b"},
		&entity.Login[int]{UserID: 7, LoginProvider: "c", LoginKey: "d"},
		&entity.Login[int]{UserID: 5, LoginProvider: "c", LoginKey: "d"},
		&entity.Login[int]{UserID: 6, LoginProvider: "c", LoginKey: "d"},
	}, nil))

	logins, err := store.Logins(begin(t, store, repository.ScopeLogin))
	require.NoError(t, err)

	found, err := logins.Find(ctx, specification.ByUserLogin(5), nil)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	paged, err := logins.Find(ctx, specification.ByUserLogin(5), &repository.FetchStrategy{Offset: 1, Limit: 5})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "c", paged[0].Provider())

	_, err = logins.FindFirst(ctx, specification.ByUserLogin(9), nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLogins_AddDuplicateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()
	login := &entity.Login[int]{UserID: 1, LoginProvider: "google", LoginKey: "g"}
	require.NoError(t, store.Seed(nil, []entity.LoginRecord[int]{login}, nil))

	uow := begin(t, store, repository.ScopeLogin)
	logins, err := store.Logins(uow)
	require.NoError(t, err)
	require.NoError(t, logins.Add(ctx, &entity.Login[int]{UserID: 1, LoginProvider: "google", LoginKey: "g"}))
	assert.ErrorIs(t, uow.Commit(ctx), repository.ErrDuplicate)

	uow = begin(t, store, repository.ScopeLogin)
	logins, err = store.Logins(uow)
	require.NoError(t, err)
	require.NoError(t, logins.Delete(ctx, &entity.Login[int]{UserID: 2, LoginProvider: "google", LoginKey: "g"}))
	assert.ErrorIs(t, uow.Commit(ctx), repository.ErrNotFound)
}

func TestClaims_AddUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()

	uow := begin(t, store, repository.ScopeClaim)
	claims, err := store.Claims(uow)
	require.NoError(t, err)
	require.NoError(t, claims.Add(ctx, &entity.Claim[int]{UserID: 1, ClaimType: "role", ClaimValue: "admin"}))
	require.NoError(t, claims.Add(ctx, &entity.Claim[int]{UserID: 1, ClaimType: "role", ClaimValue: "user"}))
	require.NoError(t, uow.Commit(ctx))

	uow = begin(t, store, repository.ScopeClaim)
	claims, err = store.Claims(uow)
	require.NoError(t, err)
	require.NoError(t, claims.Update(ctx, &entity.Claim[int]{
		UserID: 1, ClaimType: "role", ClaimValue: "user", ClaimValueType: "string",
	}))
	require.NoError(t, claims.Delete(ctx, &entity.Claim[int]{UserID: 1, ClaimType: "role", ClaimValue: "admin"}))
	require.NoError(t, uow.Commit(ctx))

	committed, err := store.CommittedClaims()
	require.NoError(t, err)
	require.Len(t, committed, 1)
	assert.Equal(t, "user", committed[0].Value())
	assert.Equal(t, "string", committed[0].ValueType())
}

func TestEmailViews(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()
	require.NoError(t, store.Seed([]*testUser{{ID: 1, UserName: "alice", EmailAddress: "a@example.com"}}, nil, nil))

	uow := begin(t, store, repository.ScopeEmail)
	emails, err := store.Emails(uow)
	require.NoError(t, err)

	holder, err := emails.FindFirst(ctx, specification.ByEmail[entity.EmailHolder[int]]("a@example.com"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, holder.Key())

	assert.ErrorIs(t, emails.Add(ctx, &testUser{ID: 2}), repository.ErrUnsupported)
	assert.ErrorIs(t, emails.Delete(ctx, holder), repository.ErrUnsupported)

	uow = begin(t, store, repository.ScopeEmailConfirmation)
	confirmations, err := store.EmailConfirmations(uow)
	require.NoError(t, err)
	require.NoError(t, confirmations.Update(ctx, &testUser{ID: 1, UserName: "alice", EmailAddress: "a@example.com", Confirmed: true}))
	require.NoError(t, uow.Commit(ctx))

	users := committedUsers(t, store)
	require.Len(t, users, 1)
	assert.True(t, users[0].EmailConfirmed())
}

func TestStore_RolledBackChangesNeverReachCommittedRecords(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()
	require.NoError(t, store.Seed([]*testUser{{ID: 1, UserName: "alice", EmailAddress: "a@example.com"}}, nil, nil))

	uow := begin(t, store, repository.ScopeEmailConfirmation)
	confirmations, err := store.EmailConfirmations(uow)
	require.NoError(t, err)
	status, err := confirmations.FindFirst(ctx, specification.ByEmailConfirmationStatus(1), nil)
	require.NoError(t, err)

	status.SetEmailConfirmed(true)
	require.NoError(t, uow.Close())

	users := committedUsers(t, store)
	require.Len(t, users, 1)
	assert.False(t, users[0].EmailConfirmed())
}

func TestStore_CallerKeepsNoHandleOnStoredRecords(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()
	user := &testUser{ID: 1, UserName: "alice"}

	uow := begin(t, store, repository.ScopeUser)
	users, err := store.Users(uow)
	require.NoError(t, err)
	require.NoError(t, users.Add(ctx, user))
	user.UserName = "changed before commit"
	require.NoError(t, uow.Commit(ctx))
	user.UserName = "changed after commit"

	found, err := users.FindFirst(ctx, specification.ByUserID[*testUser](1), nil)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.UserName)
	assert.NotSame(t, user, found)

	found.UserName = "changed after read"
	assert.Equal(t, "alice", committedUsers(t, store)[0].UserName)
}

func TestStore_ConcurrentUnitsOfWork(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*testUser, int]()
	require.NoError(t, store.Seed([]*testUser{{ID: 1, UserName: "alice", EmailAddress: "a@example.com"}}, nil, nil))

	const workers = 50
	errs := make(chan error, 2*workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			errs <- confirm(ctx, store, i%2 == 0)
		})
		wg.Go(func() {
			errs <- readConfirmation(ctx, store)
		})
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, workers, store.Commits())
	assert.Len(t, committedUsers(t, store), 1)
}

func confirm(ctx context.Context, store *Store[*testUser, int], confirmed bool) error {
	uow, err := store.Begin(ctx, repository.ScopeEmailConfirmation)
	if err != nil {
		return err
	}
	defer uow.Close()

	confirmations, err := store.EmailConfirmations(uow)
	if err != nil {
		return err
	}
	status, err := confirmations.FindFirst(ctx, specification.ByEmailConfirmationStatus(1), nil)
	if err != nil {
		return err
	}
	status.SetEmailConfirmed(confirmed)
	if err := confirmations.Update(ctx, status); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func readConfirmation(ctx context.Context, store *Store[*testUser, int]) error {
	uow, err := store.Begin(ctx, repository.ScopeEmailConfirmation)
	if err != nil {
		return err
	}
	defer uow.Close()

	confirmations, err := store.EmailConfirmations(uow)
	if err != nil {
		return err
	}
	status, err := confirmations.FindFirst(ctx, specification.ByEmailConfirmationStatus(1), nil)
	if err != nil {
		return err
	}
	_ = status.EmailConfirmed()

	return nil
}
