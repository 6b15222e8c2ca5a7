package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
	"github.com/oliviahealth/Careplan/internal/domain/repository"
	"github.com/oliviahealth/Careplan/internal/infra/persistence/model"
)

// recordRepository implements the domain.RecordRepository interface using GORM.
// One implementation serves all ten form kinds; the kind selects the backing
// table and the validated payload is stored as a jsonb document.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

// table scopes a query to the kind's backing table.
func (repo *recordRepository) table(ctx context.Context, kind entity.RecordKind) *gorm.DB {
	return repo.db.WithContext(ctx).Table(kind.String())
}

// Create persists a new record. ID and both timestamps are assigned here so
// they are always server-generated, never caller-supplied.
func (repo *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordM, err := fromRecordDomain(record)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	recordM.ID = uuid.New()
	recordM.DateCreated = now
	recordM.DateLastModified = now

	if err := repo.table(ctx, record.Kind).Create(recordM).Error; err != nil {
		return errors.Wrapf(err, "failed to create %s record", record.Kind)
	}

	record.ID = recordM.ID
	record.DateCreated = recordM.DateCreated
	record.DateLastModified = recordM.DateLastModified

	return nil
}

// FindByID retrieves a single record owned by ownerID. The owner predicate
// is part of the WHERE clause, so a record owned by another account is
// indistinguishable from a missing one.
func (repo *recordRepository) FindByID(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, id uuid.UUID) (*entity.Record, error) {
	var recordM model.RecordModel
	err := repo.table(ctx, kind).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s record by id", kind)
	}

	return toRecordDomain(&recordM, kind)
}

// FindByOwner retrieves every record of the kind owned by ownerID, oldest
// first. No records is an empty slice, not an error.
func (repo *recordRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) ([]*entity.Record, error) {
	var recordMs []model.RecordModel
	err := repo.table(ctx, kind).
		Where("user_id = ?", ownerID).
		Order("date_created ASC").
		Find(&recordMs).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s records", kind)
	}

	records := make([]*entity.Record, 0, len(recordMs))
	for i := range recordMs {
		record, err := toRecordDomain(&recordMs[i], kind)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// UpdatePayload replaces the stored payload wholesale and refreshes
// date_last_modified. date_created and user_id are never touched; the
// stored date_created is read back into the record so callers can return
// the full row.
func (repo *recordRepository) UpdatePayload(ctx context.Context, record *entity.Record) error {
	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal record payload")
	}

	now := time.Now().UTC()
	result := repo.table(ctx, record.Kind).
		Where("user_id = ? AND id = ?", record.UserID, record.ID).
		Updates(map[string]any{
			"payload":            payload,
			"date_last_modified": now,
		})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s record", record.Kind)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	var recordM model.RecordModel
	err = repo.table(ctx, record.Kind).
		Select("date_created").
		Where("user_id = ? AND id = ?", record.UserID, record.ID).
		Take(&recordM).Error
	if err != nil {
		return errors.Wrapf(err, "failed to read back %s record after update", record.Kind)
	}

	record.DateCreated = recordM.DateCreated
	record.DateLastModified = now

	return nil
}

// Delete removes an owned record. Zero rows affected means the record does
// not exist for this owner.
func (repo *recordRepository) Delete(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, id uuid.UUID) error {
	result := repo.table(ctx, kind).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&model.RecordModel{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s record", kind)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// DeleteByOwner removes every record of the kind owned by ownerID. Used by
// the account-deletion cascade; deleting zero rows is fine.
func (repo *recordRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) error {
	err := repo.table(ctx, kind).
		Where("user_id = ?", ownerID).
		Delete(&model.RecordModel{}).Error
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s records for owner", kind)
	}

	return nil
}

// --- Mapper Functions ---

// toRecordDomain converts a GORM RecordModel to a domain Record entity.
func toRecordDomain(data *model.RecordModel, kind entity.RecordKind) (*entity.Record, error) {
	if data == nil {
		return nil, nil
	}

	var payload entity.Payload
	if len(data.Payload) > 0 {
		if err := json.Unmarshal(data.Payload, &payload); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s record payload", kind)
		}
	}

	return &entity.Record{
		ID:               data.ID,
		UserID:           data.UserID,
		Kind:             kind,
		Payload:          payload,
		DateCreated:      data.DateCreated,
		DateLastModified: data.DateLastModified,
	}, nil
}

// fromRecordDomain converts a domain Record entity to a GORM RecordModel for persistence.
func fromRecordDomain(data *entity.Record) (*model.RecordModel, error) {
	if data == nil {
		return nil, nil
	}

	payload, err := json.Marshal(data.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal record payload")
	}

	return &model.RecordModel{
		ID:               data.ID,
		UserID:           data.UserID,
		Payload:          payload,
		DateCreated:      data.DateCreated,
		DateLastModified: data.DateLastModified,
	}, nil
}
