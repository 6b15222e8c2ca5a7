package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordModel mirrors one row of any clinical form table. All form tables
// share the same shape: identity, owner, a jsonb document and two
// timestamps. The table itself is chosen per form kind at query time, so
// RecordModel deliberately has no TableName method.
type RecordModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Payload          datatypes.JSON `gorm:"type:jsonb;not null"`
	DateCreated      time.Time      `gorm:"not null"`
	DateLastModified time.Time      `gorm:"not null"`
}
