package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
)

// CreateRecordInput carries a new form submission. The payload is the raw
// decoded JSON body; shape validation happens inside the use case.
type CreateRecordInput struct {
	OwnerID uuid.UUID
	Kind    entity.RecordKind
	Payload entity.Payload
}

// UpdateRecordInput carries a full replacement payload for an existing
// record. Fields absent from the payload are nulled, not preserved.
type UpdateRecordInput struct {
	OwnerID  uuid.UUID
	Kind     entity.RecordKind
	RecordID uuid.UUID
	Payload  entity.Payload
}

// RecordUsecase defines the interface for clinical record operations. One
// implementation serves all ten form kinds; handlers pass the kind through.
type RecordUsecase interface {
	// Create validates and stores a new record for the owner.
	Create(ctx context.Context, input CreateRecordInput) (*entity.Record, error)

	// Get returns a single record owned by ownerID.
	Get(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, recordID uuid.UUID) (*entity.Record, error)

	// List returns every record of the kind owned by ownerID, oldest first.
	List(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind) ([]*entity.Record, error)

	// Update validates the replacement payload and overwrites the stored one.
	Update(ctx context.Context, input UpdateRecordInput) (*entity.Record, error)

	// Delete removes a single owned record.
	Delete(ctx context.Context, ownerID uuid.UUID, kind entity.RecordKind, recordID uuid.UUID) error
}
