// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"reflect"
	"strings"

	"idstore/internal/domain/entity"
	domainerrors "idstore/internal/domain/errors"
	"idstore/internal/domain/repository"
	"idstore/internal/domain/specification"
	"idstore/internal/errors"
	"idstore/internal/usecase"

	"go.uber.org/fx"
)

// identityStore implements usecase.IdentityUsecase on top of an injected unit-of-work
// factory, repository factory and dependency factory. Every call opens its own scope, so
// the store holds no mutable state.
type identityStore[U entity.Identity[K], K comparable] struct {
	uowFactory  repository.UnitOfWorkFactory
	repoFactory repository.RepositoryFactory[U, K]
	deps        repository.DependencyFactory[K]
	logger      *slog.Logger
}

// IdentityStoreParams holds dependencies for the identity store, injected by Fx.
type IdentityStoreParams[U entity.Identity[K], K comparable] struct {
	fx.In

	UnitOfWorkFactory repository.UnitOfWorkFactory
	RepositoryFactory repository.RepositoryFactory[U, K]
	DependencyFactory repository.DependencyFactory[K]
	Logger            *slog.Logger
}

// NewIdentityStore is the constructor for identityStore.
func NewIdentityStore[U entity.Identity[K], K comparable](params IdentityStoreParams[U, K]) usecase.IdentityUsecase[U, K] {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &identityStore[U, K]{
		uowFactory:  params.UnitOfWorkFactory,
		repoFactory: params.RepositoryFactory,
		deps:        params.DependencyFactory,
		logger:      logger,
	}
}

// userWrite is a Repository method expression such as repository.Repository[U].Add.
type userWrite[U any] func(repository.Repository[U], context.Context, U) error

// Create adds user to the user repository.
func (s *identityStore[U, K]) Create(ctx context.Context, user U) error {
	return s.writeUser(ctx, user, "create", repository.Repository[U].Add)
}

// Update replaces the stored user with the same key.
func (s *identityStore[U, K]) Update(ctx context.Context, user U) error {
	return s.writeUser(ctx, user, "update", repository.Repository[U].Update)
}

// Delete removes the stored user with the same key.
func (s *identityStore[U, K]) Delete(ctx context.Context, user U) error {
	return s.writeUser(ctx, user, "delete", repository.Repository[U].Delete)
}

func (s *identityStore[U, K]) writeUser(ctx context.Context, user U, action string, write userWrite[U]) error {
	if isNil(user) {
		return domainerrors.NullArgument("user")
	}

	s.logger.DebugContext(ctx, "Writing user", slog.String("action", action), slog.Any("userID", user.Key()))

	return s.withUnitOfWork(ctx, repository.ScopeUser, true, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Users(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get user repository")
		}

		return errors.Wrapf(write(repo, ctx, user), "failed to %s user", action)
	})
}

// FindByID returns the user with userID, or the zero U if there is none.
func (s *identityStore[U, K]) FindByID(ctx context.Context, userID K) (U, error) {
	return s.findUser(ctx, specification.ByUserID[U](userID))
}

// FindByName returns the user whose name equals userName exactly, or the zero U.
func (s *identityStore[U, K]) FindByName(ctx context.Context, userName string) (U, error) {
	if isBlank(userName) {
		var zero U
		return zero, domainerrors.NullArgument("userName")
	}

	return s.findUser(ctx, specification.ByUserName[U](userName))
}

func (s *identityStore[U, K]) findUser(ctx context.Context, spec specification.Specification[U]) (U, error) {
	var found U
	err := s.withUnitOfWork(ctx, repository.ScopeUser, false, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Users(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get user repository")
		}

		user, err := repo.FindFirst(ctx, spec, nil)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		found = user

		return nil
	})

	return found, err
}

// AddLogin links login to user.
func (s *identityStore[U, K]) AddLogin(ctx context.Context, user U, login *entity.LoginInfo) error {
	return s.writeLogin(ctx, user, login, "add", repository.Repository[entity.LoginRecord[K]].Add)
}

// RemoveLogin unlinks login from user.
func (s *identityStore[U, K]) RemoveLogin(ctx context.Context, user U, login *entity.LoginInfo) error {
	return s.writeLogin(ctx, user, login, "remove", repository.Repository[entity.LoginRecord[K]].Delete)
}

func (s *identityStore[U, K]) writeLogin(
	ctx context.Context,
	user U,
	login *entity.LoginInfo,
	action string,
	write userWrite[entity.LoginRecord[K]],
) error {
	if isNil(user) {
		return domainerrors.NullArgument("user")
	}
	if login == nil {
		return domainerrors.NullArgument("login")
	}

	s.logger.DebugContext(ctx, "Writing login",
		slog.String("action", action),
		slog.Any("userID", user.Key()),
		slog.String("provider", login.LoginProvider),
	)

	return s.withUnitOfWork(ctx, repository.ScopeLogin, true, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Logins(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get login repository")
		}

		record, err := s.deps.NewLogin(user.Key(), login.LoginProvider, login.ProviderKey)
		if err != nil {
			return errors.Wrap(err, "failed to construct login")
		}

		return errors.Wrapf(write(repo, ctx, record), "failed to %s login", action)
	})
}

// GetLogins returns every login linked to user.
func (s *identityStore[U, K]) GetLogins(ctx context.Context, user U) ([]entity.LoginInfo, error) {
	if isNil(user) {
		return nil, domainerrors.NullArgument("user")
	}

	var logins []entity.LoginInfo
	err := s.withUnitOfWork(ctx, repository.ScopeLogin, false, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Logins(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get login repository")
		}

		records, err := repo.Find(ctx, specification.ByUserLogin(user.Key()), nil)
		if err != nil {
			return errors.Wrap(err, "failed to find logins")
		}

		logins = make([]entity.LoginInfo, 0, len(records))
		for _, record := range records {
			logins = append(logins, entity.ToLoginInfo(record))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return logins, nil
}

// Find returns the user owning login. Both lookups share one scope; an unknown login
// returns the zero U without looking up a user.
func (s *identityStore[U, K]) Find(ctx context.Context, login *entity.LoginInfo) (U, error) {
	var found U
	if login == nil {
		return found, domainerrors.NullArgument("login")
	}

	err := s.withUnitOfWork(ctx, repository.ScopeLogin, false, func(uow repository.UnitOfWork) error {
		logins, err := s.repoFactory.Logins(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get login repository")
		}

		record, err := logins.FindFirst(ctx,
			specification.ByLoginProviderAndKey[K](login.LoginProvider, login.ProviderKey), nil)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find login")
		}

		users, err := s.repoFactory.Users(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get user repository")
		}

		user, err := users.FindFirst(ctx, specification.ByUserID[U](record.Key()), nil)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for login")
		}
		found = user

		return nil
	})

	return found, err
}

// GetClaims returns every claim stored for user.
func (s *identityStore[U, K]) GetClaims(ctx context.Context, user U) ([]entity.ClaimInfo, error) {
	if isNil(user) {
		return nil, domainerrors.NullArgument("user")
	}

	var claims []entity.ClaimInfo
	err := s.withUnitOfWork(ctx, repository.ScopeClaim, false, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Claims(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get claim repository")
		}

		records, err := repo.Find(ctx, specification.ByUserClaim(user.Key()), nil)
		if err != nil {
			return errors.Wrap(err, "failed to find claims")
		}

		claims = make([]entity.ClaimInfo, 0, len(records))
		for _, record := range records {
			claims = append(claims, entity.ToClaimInfo(record))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// AddClaim stores claim for user.
func (s *identityStore[U, K]) AddClaim(ctx context.Context, user U, claim *entity.ClaimInfo) error {
	if isNil(user) {
		return domainerrors.NullArgument("user")
	}
	if claim == nil {
		return domainerrors.NullArgument("claim")
	}

	s.logger.DebugContext(ctx, "Adding claim", slog.Any("userID", user.Key()), slog.String("type", claim.Type))

	return s.withUnitOfWork(ctx, repository.ScopeClaim, true, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Claims(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get claim repository")
		}

		record, err := s.deps.NewClaim(user.Key(), *claim)
		if err != nil {
			return errors.Wrap(err, "failed to construct claim")
		}

		return errors.Wrap(repo.Add(ctx, record), "failed to add claim")
	})
}

// RemoveClaim deletes the user's claims with claim's type and value. Removing a claim the
// user does not have is a no-op.
func (s *identityStore[U, K]) RemoveClaim(ctx context.Context, user U, claim *entity.ClaimInfo) error {
	if isNil(user) {
		return domainerrors.NullArgument("user")
	}
	if claim == nil {
		return domainerrors.NullArgument("claim")
	}

	s.logger.DebugContext(ctx, "Removing claim", slog.Any("userID", user.Key()), slog.String("type", claim.Type))

	return s.withUnitOfWork(ctx, repository.ScopeClaim, true, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Claims(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get claim repository")
		}

		spec := specification.And(
			specification.ByUserClaim(user.Key()),
			specification.ByClaimTypeAndValue[K](claim.Type, claim.Value),
		)
		records, err := repo.Find(ctx, spec, nil)
		if err != nil {
			return errors.Wrap(err, "failed to find claims")
		}

		for _, record := range records {
			if err := repo.Delete(ctx, record); err != nil {
				return errors.Wrap(err, "failed to delete claim")
			}
		}

		return nil
	})
}

// SetEmail sets the email on user itself and persists it.
func (s *identityStore[U, K]) SetEmail(ctx context.Context, user U, email string) error {
	if isNil(user) {
		return domainerrors.NullArgument("user")
	}
	if isBlank(email) {
		return domainerrors.NullArgument("email")
	}

	holder, ok := any(user).(entity.EmailHolder[K])
	if !ok {
		return domainerrors.WrongCapability("user", "EmailHolder")
	}
	holder.SetEmail(email)

	return s.withUnitOfWork(ctx, repository.ScopeEmail, true, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Emails(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get email repository")
		}

		return errors.Wrap(repo.Update(ctx, holder), "failed to update email")
	})
}

// GetEmail returns the stored email of user.
func (s *identityStore[U, K]) GetEmail(ctx context.Context, user U) (string, error) {
	if isNil(user) {
		return "", domainerrors.NullArgument("user")
	}

	var email string
	err := s.withUnitOfWork(ctx, repository.ScopeEmail, false, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Emails(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get email repository")
		}

		stored, err := repo.FindFirst(ctx, specification.ByUserWithEmail(user.Key()), nil)
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.DataConsistency(domainerrors.MsgEmailNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find email")
		}
		email = stored.Email()

		return nil
	})

	return email, err
}

// GetEmailConfirmed returns whether the stored email of user is confirmed. The user
// must hold a non-blank email.
func (s *identityStore[U, K]) GetEmailConfirmed(ctx context.Context, user U) (bool, error) {
	if isNil(user) {
		return false, domainerrors.NullArgument("user")
	}

	holder, ok := any(user).(entity.EmailHolder[K])
	if !ok {
		return false, domainerrors.WrongCapability("user", "EmailHolder")
	}
	if isBlank(holder.Email()) {
		return false, domainerrors.InvalidOperation(domainerrors.MsgNoEmailForConfirmation)
	}

	var confirmed bool
	err := s.withUnitOfWork(ctx, repository.ScopeEmailConfirmation, false, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.EmailConfirmations(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get email confirmation repository")
		}

		status, err := repo.FindFirst(ctx, specification.ByEmailConfirmationStatus(user.Key()), nil)
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.DataConsistency(domainerrors.MsgConfirmationNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find email confirmation status")
		}
		confirmed = status.EmailConfirmed()

		return nil
	})

	return confirmed, err
}

// SetEmailConfirmed updates the stored confirmation flag of user.
func (s *identityStore[U, K]) SetEmailConfirmed(ctx context.Context, user U, confirmed bool) error {
	if isNil(user) {
		return domainerrors.NullArgument("user")
	}

	s.logger.DebugContext(ctx, "Setting email confirmation", slog.Any("userID", user.Key()), slog.Bool("confirmed", confirmed))

	return s.withUnitOfWork(ctx, repository.ScopeEmailConfirmation, true, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.EmailConfirmations(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get email confirmation repository")
		}

		status, err := repo.FindFirst(ctx, specification.ByEmailConfirmationStatus(user.Key()), nil)
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.DataConsistency(domainerrors.MsgConfirmationNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find email confirmation status")
		}

		status.SetEmailConfirmed(confirmed)

		return errors.Wrap(repo.Update(ctx, status), "failed to update email confirmation status")
	})
}

// FindByEmail returns the user holding email. A miss is reported with the
// mail-confirmation message for compatibility with existing callers matching on it.
func (s *identityStore[U, K]) FindByEmail(ctx context.Context, email string) (U, error) {
	var found U
	if isBlank(email) {
		return found, domainerrors.NullArgument("email")
	}

	err := s.withUnitOfWork(ctx, repository.ScopeEmail, false, func(uow repository.UnitOfWork) error {
		repo, err := s.repoFactory.Emails(uow)
		if err != nil {
			return errors.Wrap(err, "failed to get email repository")
		}

		holder, err := repo.FindFirst(ctx, specification.ByEmail[entity.EmailHolder[K]](email), nil)
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.DataConsistency(domainerrors.MsgConfirmationNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		user, ok := holder.(U)
		if !ok {
			return domainerrors.DataConsistency(domainerrors.MsgConfirmationNotFound)
		}
		found = user

		return nil
	})

	return found, err
}

// Close is a no-op; every call releases its own unit of work.
func (s *identityStore[U, K]) Close() error {
	return nil
}

// withUnitOfWork opens a unit of work for scope, runs fn, commits when commit is set and
// fn succeeded, and always releases the unit of work.
func (s *identityStore[U, K]) withUnitOfWork(
	ctx context.Context,
	scope repository.Scope,
	commit bool,
	fn func(uow repository.UnitOfWork) error,
) error {
	uow, err := s.uowFactory.Begin(ctx, scope)
	if err != nil {
		return errors.Wrapf(err, "failed to begin %s unit of work", scope)
	}
	defer func() {
		if closeErr := uow.Close(); closeErr != nil {
			s.logger.WarnContext(ctx, "Failed to release unit of work",
				slog.String("scope", string(scope)),
				slog.Any("error", closeErr),
			)
		}
	}()

	if err := fn(uow); err != nil {
		return err
	}
	if !commit {
		return nil
	}

	return errors.Wrapf(uow.Commit(ctx), "failed to commit %s unit of work", scope)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isNil reports whether v is nil, including typed nil pointers held by a type parameter.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
