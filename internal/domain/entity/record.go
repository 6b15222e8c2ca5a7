// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordKind classifies a clinical intake form. The ten kinds share one
// record mechanism; the kind only selects the payload schema and the
// backing table.
type RecordKind string

const (
	KindMaternalDemographics           RecordKind = "maternal_demographics"
	KindMaternalMedicalHistory         RecordKind = "maternal_medical_history"
	KindPsychiatricHistory             RecordKind = "psychiatric_history"
	KindSubstanceUseHistory            RecordKind = "substance_use_history"
	KindMedicalServicesForSubstanceUse RecordKind = "medical_services_for_substance_use"
	KindDrugScreeningResults           RecordKind = "drug_screening_results"
	KindFamilyAndSupports              RecordKind = "family_and_supports"
	KindInfantInformation              RecordKind = "infant_information"
	KindReferralsAndServices           RecordKind = "referrals_and_services"
	KindRelapsePreventionPlan          RecordKind = "relapse_prevention_plan"
)

// RecordKinds lists every known kind in declaration order.
var RecordKinds = []RecordKind{
	KindMaternalDemographics,
	KindMaternalMedicalHistory,
	KindPsychiatricHistory,
	KindSubstanceUseHistory,
	KindMedicalServicesForSubstanceUse,
	KindDrugScreeningResults,
	KindFamilyAndSupports,
	KindInfantInformation,
	KindReferralsAndServices,
	KindRelapsePreventionPlan,
}

// ParseRecordKind maps a wire string onto a known kind.
func ParseRecordKind(s string) (RecordKind, bool) {
	kind := RecordKind(s)

	return kind, kind.Valid()
}

// Valid reports whether the kind is one of the ten known form domains.
func (k RecordKind) Valid() bool {
	switch k {
	case KindMaternalDemographics, KindMaternalMedicalHistory,
		KindPsychiatricHistory, KindSubstanceUseHistory,
		KindMedicalServicesForSubstanceUse, KindDrugScreeningResults,
		KindFamilyAndSupports, KindInfantInformation,
		KindReferralsAndServices, KindRelapsePreventionPlan:
		return true
	}

	return false
}

// String returns the wire/table name of the kind.
func (k RecordKind) String() string {
	return string(k)
}

// Payload is the kind-specific structured body of a record: scalars,
// nested objects and arrays of nested objects, as decoded from JSON.
type Payload map[string]any

// Record is one clinical intake form instance. The owner is fixed at
// creation and every operation on the record is scoped to it; both
// timestamps are server-assigned.
type Record struct {
	ID               uuid.UUID  // The unique identifier for this record.
	UserID           uuid.UUID  // The owning account. Immutable after creation.
	Kind             RecordKind // Which of the ten form domains this record belongs to.
	Payload          Payload    // The schema-validated form body.
	DateCreated      time.Time  // Set once when the record is created.
	DateLastModified time.Time  // Refreshed on every successful mutation.
}
