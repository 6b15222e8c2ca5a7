package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/oliviahealth/Careplan/internal/delivery/context"
	"github.com/oliviahealth/Careplan/internal/domain/entity"
	domainerrors "github.com/oliviahealth/Careplan/internal/domain/errors"
	"github.com/oliviahealth/Careplan/internal/domain/repository"
	"github.com/oliviahealth/Careplan/internal/domain/schema"
	"github.com/oliviahealth/Careplan/internal/usecase"
)

// recordService implements the RecordUsecase interface for all ten form
// kinds. The kind is plain data here; nothing below the handler branches
// on it except the schema registry and the table selection in the
// repository.
type recordService struct {
	userRepo   repository.UserRepository
	recordRepo repository.RecordRepository
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for recordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	RecordRepo repository.RecordRepository
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		userRepo:   params.UserRepo,
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
	}
}

func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the payload against the kind's schema and stores a new
// record for the owner. The owner must still exist: a valid token can
// outlive its account.
func (srv *recordService) Create(ctx context.Context, input usecase.CreateRecordInput) (*entity.Record, error) {
	normalized, err := srv.validatePayload(ctx, input.Kind, input.Payload)
	if err != nil {
		return nil, err
	}

	if err := srv.ensureOwnerExists(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	record := &entity.Record{
		UserID:  input.OwnerID,
		Kind:    input.Kind,
		Payload: normalized,
	}

	if err := srv.recordRepo.Create(ctx, record); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to create record")
	}

	srv.log(ctx).Debug("Record created",
		slog.String("kind", input.Kind.String()),
		slog.Any("recordID", record.ID),
		slog.Any("userID", input.OwnerID),
	)

	return record, nil
}

// Get returns a single owned record. A record owned by another account is
// reported as not found.
func (srv *recordService) Get(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, recordID uuid.UUID) (*entity.Record, error) {
	record, err := srv.recordRepo.FindByID(ctx, ownerID, kind, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to load record")
	}

	return record, nil
}

// List returns every record of the kind owned by ownerID. No records is an
// empty list, not an error.
func (srv *recordService) List(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) ([]*entity.Record, error) {
	records, err := srv.recordRepo.FindByOwner(ctx, ownerID, kind)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list records")
	}

	return records, nil
}

// Update validates the replacement payload and overwrites the stored one
// wholesale. Whoever writes last wins; there is no version check.
func (srv *recordService) Update(ctx context.Context, input usecase.UpdateRecordInput) (*entity.Record, error) {
	normalized, err := srv.validatePayload(ctx, input.Kind, input.Payload)
	if err != nil {
		return nil, err
	}

	record := &entity.Record{
		ID:      input.RecordID,
		UserID:  input.OwnerID,
		Kind:    input.Kind,
		Payload: normalized,
	}

	if err := srv.recordRepo.UpdatePayload(ctx, record); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to update record")
	}

	srv.log(ctx).Debug("Record updated",
		slog.String("kind", input.Kind.String()),
		slog.Any("recordID", input.RecordID),
		slog.Any("userID", input.OwnerID),
	)

	return record, nil
}

// Delete removes a single owned record.
func (srv *recordService) Delete(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, recordID uuid.UUID) error {
	if err := srv.recordRepo.Delete(ctx, ownerID, kind, recordID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrRecordNotFound
		}

		return domainerrors.NewStorageError(err, "failed to delete record")
	}

	srv.log(ctx).Debug("Record deleted",
		slog.String("kind", kind.String()),
		slog.Any("recordID", recordID),
		slog.Any("userID", ownerID),
	)

	return nil
}

func (srv *recordService) validatePayload(ctx context.Context, kind entity.RecordKind, payload entity.Payload) (entity.Payload, error) {
	if !kind.Valid() {
		return nil, domainerrors.ErrUnknownRecordKind
	}

	normalized, err := schema.Validate(kind, payload)
	if err != nil {
		var shapeErr *schema.ShapeError
		if errors.As(err, &shapeErr) {
			srv.log(ctx).Warn("Payload failed shape validation",
				slog.String("kind", kind.String()),
				slog.String("fields", strings.Join(shapeErr.Fields, ", ")),
			)

			return nil, domainerrors.ErrInvalidShape.WithDetails(shapeErr.Error())
		}

		return nil, errors.Wrap(err, "failed to validate payload")
	}

	return normalized, nil
}

func (srv *recordService) ensureOwnerExists(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnknownOwner
		}

		return domainerrors.NewStorageError(err, "failed to verify record owner")
	}

	return nil
}
