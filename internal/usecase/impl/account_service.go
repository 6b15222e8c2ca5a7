// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/oliviahealth/Careplan/internal/delivery/context"
	"github.com/oliviahealth/Careplan/internal/domain/entity"
	domainerrors "github.com/oliviahealth/Careplan/internal/domain/errors"
	"github.com/oliviahealth/Careplan/internal/domain/repository"
	"github.com/oliviahealth/Careplan/internal/domain/service"
	"github.com/oliviahealth/Careplan/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	revocationStore repository.TokenRevocationStore
	logger          *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	Hasher          service.PasswordHasher
	TokenService    service.TokenService
	RevocationStore repository.TokenRevocationStore
	Logger          *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		revocationStore: params.RevocationStore,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a new account and immediately signs it in.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Signup for already registered email", slog.String("email", input.Email))

			return nil, domainerrors.ErrDuplicateEmail
		}

		return nil, domainerrors.NewStorageError(err, "failed to create account")
	}

	token, _, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SessionOutput{User: newUser, AccessToken: token}, nil
}

// SignIn verifies the email/password pair and issues a fresh token. A
// missing account and a wrong password produce the same error so the
// response never discloses whether the email is registered.
func (srv *accountService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Signin for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewStorageError(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Signin with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, _, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after signin")
	}

	srv.log(ctx).Debug("Signin completed", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{User: user, AccessToken: token}, nil
}

// SignOut revokes the token's jti until its natural expiry. Revoking an
// already revoked jti succeeds.
func (srv *accountService) SignOut(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := srv.revocationStore.Revoke(ctx, jti, expiresAt); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	srv.log(ctx).Debug("Signout completed", slog.String("jti", jti))

	return nil
}

// GetAccount returns the profile of an account.
func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnknownOwner
		}

		return nil, domainerrors.NewStorageError(err, "failed to load account")
	}

	return user, nil
}

// UpdateAccount replaces the account's profile fields wholesale. The
// password is always rehashed; there is no partial update.
func (srv *accountService) UpdateAccount(ctx context.Context, input usecase.UpdateAccountInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnknownOwner
		}

		return nil, domainerrors.NewStorageError(err, "failed to load account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during account update")
	}

	user.Name = input.Name
	user.Email = input.Email
	user.PasswordHash = hashedPassword

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, domainerrors.ErrDuplicateEmail
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUnknownOwner
		default:
			return nil, domainerrors.NewStorageError(err, "failed to update account")
		}
	}

	srv.log(ctx).Debug("Account updated", slog.Any("userID", user.ID))

	return user, nil
}

// DeleteAccount removes the account together with every clinical record it
// owns. The cascade runs inside one transaction so a failure partway leaves
// nothing half-deleted.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recordRepo := repoFactory.RecordRepo()
		for _, kind := range entity.RecordKinds {
			if err := recordRepo.DeleteByOwner(ctx, userID, kind); err != nil {
				return errors.Wrapf(err, "failed to cascade %s records", kind)
			}
		}

		return repoFactory.UserRepo().Delete(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnknownOwner
		}

		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.Any("userID", userID), slog.Any("error", err))

		return domainerrors.NewStorageError(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}
