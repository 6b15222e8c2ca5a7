package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
)

// RecordRepository is the persistence contract for clinical records. One
// implementation serves all ten kinds; the kind selects the backing table.
//
// Ownership is enforced by query predicate: every lookup and mutation
// filters on (user_id, id) in a single WHERE clause, so a record owned by a
// different account surfaces as ErrRecordNotFound rather than a separate
// authorization failure.
type RecordRepository interface {
	// Create persists a new record. The caller supplies owner, kind and
	// payload; id and both timestamps are assigned here.
	Create(ctx context.Context, record *entity.Record) error

	// FindByID retrieves a single record owned by ownerID.
	FindByID(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, id uuid.UUID) (*entity.Record, error)

	// FindByOwner retrieves all records of the kind owned by ownerID.
	// Returns an empty slice, not an error, when none exist.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) ([]*entity.Record, error)

	// UpdatePayload replaces the payload of an owned record wholesale and
	// refreshes date_last_modified. date_created is never touched, but the
	// stored value is loaded into the record on success so the caller holds
	// the complete row.
	UpdatePayload(ctx context.Context, record *entity.Record) error

	// Delete removes an owned record.
	Delete(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, id uuid.UUID) error

	// DeleteByOwner removes every record of the kind owned by ownerID.
	// Used by the account-deletion cascade; deleting zero rows is not an
	// error.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) error
}
