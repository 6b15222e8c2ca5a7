package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
	"github.com/oliviahealth/Careplan/internal/domain/repository"
	"github.com/oliviahealth/Careplan/internal/domain/service"
)

// Hand-written testify doubles for the domain interfaces.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*mockUserRepository)(nil)

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockRecordRepository struct {
	mock.Mock
}

var _ repository.RecordRepository = (*mockRecordRepository)(nil)

func (m *mockRecordRepository) Create(ctx context.Context, record *entity.Record) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}

func (m *mockRecordRepository) FindByID(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, id uuid.UUID) (*entity.Record, error) {
	args := m.Called(ctx, ownerID, kind, id)
	if record, ok := args.Get(0).(*entity.Record); ok {
		return record, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRecordRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) ([]*entity.Record, error) {
	args := m.Called(ctx, ownerID, kind)
	if records, ok := args.Get(0).([]*entity.Record); ok {
		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRecordRepository) UpdatePayload(ctx context.Context, record *entity.Record) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}

func (m *mockRecordRepository) Delete(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, kind, id)

	return args.Error(0)
}

func (m *mockRecordRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) error {
	args := m.Called(ctx, ownerID, kind)

	return args.Error(0)
}

// mockTransactionManager runs the callback against a factory wired to the
// test's mock repositories, so transactional code paths exercise the same
// expectations as the rest of the test.
type mockTransactionManager struct {
	mock.Mock
	factory repository.RepositoryFactory
}

var _ repository.TransactionManager = (*mockTransactionManager)(nil)

func (m *mockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.factory)
}

type mockRepositoryFactory struct {
	userRepo   repository.UserRepository
	recordRepo repository.RecordRepository
}

var _ repository.RepositoryFactory = (*mockRepositoryFactory)(nil)

func (f *mockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *mockRepositoryFactory) RecordRepo() repository.RecordRepository {
	return f.recordRepo
}

type mockPasswordHasher struct {
	mock.Mock
}

var _ service.PasswordHasher = (*mockPasswordHasher)(nil)

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

var _ service.TokenService = (*mockTokenService)(nil)

func (m *mockTokenService) Issue(userID uuid.UUID) (string, *service.Claims, error) {
	args := m.Called(userID)
	claims, _ := args.Get(1).(*service.Claims)

	return args.String(0), claims, args.Error(2)
}

func (m *mockTokenService) Validate(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockRevocationStore struct {
	mock.Mock
}

var _ repository.TokenRevocationStore = (*mockRevocationStore)(nil)

func (m *mockRevocationStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	args := m.Called(ctx, jti, expiresAt)

	return args.Error(0)
}

func (m *mockRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)

	return args.Bool(0), args.Error(1)
}
