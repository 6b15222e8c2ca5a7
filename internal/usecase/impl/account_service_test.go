package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
	domainerrors "github.com/oliviahealth/Careplan/internal/domain/errors"
	"github.com/oliviahealth/Careplan/internal/domain/repository"
	"github.com/oliviahealth/Careplan/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service         usecase.AccountUsecase
	txManager       *mockTransactionManager
	userRepo        *mockUserRepository
	recordRepo      *mockRecordRepository
	hasher          *mockPasswordHasher
	tokenService    *mockTokenService
	revocationStore *mockRevocationStore
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	userRepo := new(mockUserRepository)
	recordRepo := new(mockRecordRepository)
	txManager := &mockTransactionManager{
		factory: &mockRepositoryFactory{userRepo: userRepo, recordRepo: recordRepo},
	}
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)
	revocationStore := new(mockRevocationStore)

	service := NewAccountService(AccountServiceParams{
		TxManager:       txManager,
		UserRepo:        userRepo,
		Hasher:          hasher,
		TokenService:    tokenService,
		RevocationStore: revocationStore,
		Logger:          newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:         service,
		txManager:       txManager,
		userRepo:        userRepo,
		recordRepo:      recordRepo,
		hasher:          hasher,
		tokenService:    tokenService,
		revocationStore: revocationStore,
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	input := usecase.SignUpInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.On("Hash", input.Password).Return("hashed-password", nil)
	fixtures.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == input.Email && user.PasswordHash == "hashed-password"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = uuid.New()
	}).Return(nil)
	fixtures.tokenService.On("Issue", mock.AnythingOfType("uuid.UUID")).
		Return("signed-token", nil, nil)

	output, err := fixtures.service.SignUp(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)

	fixtures.userRepo.AssertExpectations(t)
	fixtures.tokenService.AssertExpectations(t)
}

func TestAccountService_SignUp_DuplicateEmail(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "Password123!").Return("hashed-password", nil)
	fixtures.userRepo.On("Create", ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := fixtures.service.SignUp(ctx, usecase.SignUpInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)

	fixtures.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_SignIn_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "stored-hash",
	}

	fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fixtures.hasher.On("Check", "Password123!", "stored-hash").Return(true)
	fixtures.tokenService.On("Issue", user.ID).Return("signed-token", nil, nil)

	output, err := fixtures.service.SignIn(ctx, usecase.SignInInput{
		Email:    user.Email,
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAccountService_SignIn_UniformFailure(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fixtures := createTestAccountService(t)
		fixtures.userRepo.On("FindByEmail", ctx, "nobody@example.com").
			Return(nil, repository.ErrUserNotFound)

		_, err := fixtures.service.SignIn(ctx, usecase.SignInInput{
			Email:    "nobody@example.com",
			Password: "Password123!",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fixtures := createTestAccountService(t)
		user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "stored-hash"}
		fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
		fixtures.hasher.On("Check", "wrong", "stored-hash").Return(false)

		_, err := fixtures.service.SignIn(ctx, usecase.SignInInput{
			Email:    user.Email,
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_SignOut_RevokesJTI(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	fixtures.revocationStore.On("Revoke", ctx, "jti-123", expiry).Return(nil)

	require.NoError(t, fixtures.service.SignOut(ctx, "jti-123", expiry))
	fixtures.revocationStore.AssertExpectations(t)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.GetAccount(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownOwner)
}

func TestAccountService_UpdateAccount_RehashesPassword(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Old Name",
		Email:        "old@example.com",
		PasswordHash: "old-hash",
	}

	fixtures.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fixtures.hasher.On("Hash", "NewPassword1!").Return("new-hash", nil)
	fixtures.userRepo.On("Update", ctx, mock.MatchedBy(func(updated *entity.User) bool {
		return updated.Name == "New Name" &&
			updated.Email == "new@example.com" &&
			updated.PasswordHash == "new-hash"
	})).Return(nil)

	updated, err := fixtures.service.UpdateAccount(ctx, usecase.UpdateAccountInput{
		UserID:   user.ID,
		Name:     "New Name",
		Email:    "new@example.com",
		Password: "NewPassword1!",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
}

func TestAccountService_UpdateAccount_DuplicateEmail(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "old@example.com"}
	fixtures.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fixtures.hasher.On("Hash", "Password123!").Return("new-hash", nil)
	fixtures.userRepo.On("Update", ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := fixtures.service.UpdateAccount(ctx, usecase.UpdateAccountInput{
		UserID:   user.ID,
		Name:     "Name",
		Email:    "taken@example.com",
		Password: "Password123!",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAccountService_DeleteAccount_CascadesAllKinds(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	for _, kind := range entity.RecordKinds {
		fixtures.recordRepo.On("DeleteByOwner", ctx, userID, kind).Return(nil)
	}
	fixtures.userRepo.On("Delete", ctx, userID).Return(nil)

	require.NoError(t, fixtures.service.DeleteAccount(ctx, userID))

	// Every one of the ten kinds must be swept inside the transaction.
	for _, kind := range entity.RecordKinds {
		fixtures.recordRepo.AssertCalled(t, "DeleteByOwner", ctx, userID, kind)
	}
	fixtures.userRepo.AssertCalled(t, "Delete", ctx, userID)
}

func TestAccountService_DeleteAccount_RollsBackOnCascadeFailure(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	fixtures.recordRepo.On("DeleteByOwner", ctx, userID, entity.KindMaternalDemographics).
		Return(errors.New("connection reset"))

	err := fixtures.service.DeleteAccount(ctx, userID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_FAILURE", appErr.ErrorCode())

	// The account row must not be touched once the cascade fails.
	fixtures.userRepo.AssertNotCalled(t, "Delete", ctx, userID)
}

func TestAccountService_DeleteAccount_UnknownUser(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	for _, kind := range entity.RecordKinds {
		fixtures.recordRepo.On("DeleteByOwner", ctx, userID, kind).Return(nil)
	}
	fixtures.userRepo.On("Delete", ctx, userID).Return(repository.ErrUserNotFound)

	err := fixtures.service.DeleteAccount(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownOwner)
}
