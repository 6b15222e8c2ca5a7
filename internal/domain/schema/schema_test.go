package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
)

func TestForKind_AllKindsRegistered(t *testing.T) {
	for _, kind := range entity.RecordKinds {
		s, ok := ForKind(kind)
		assert.True(t, ok, "missing schema for kind %s", kind)
		assert.Equal(t, kind, s.Kind)
		assert.NotEmpty(t, s.Fields)
	}
}

func TestValidate_RequiredScalarMissing(t *testing.T) {
	payload := entity.Payload{
		"three_things_that_trigger_desire_to_use": "stress, isolation, conflict",
		// three_skills_you_enjoy omitted
		"three_people_to_talk_to": "sponsor, sister, counselor",
		"have_naloxone":           "yes",
	}

	normalized, err := Validate(entity.KindRelapsePreventionPlan, payload)
	require.Error(t, err)
	assert.Nil(t, normalized)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []string{"three_skills_you_enjoy"}, shapeErr.Fields)
}

func TestValidate_NullRequiredScalarIsMissing(t *testing.T) {
	payload := entity.Payload{
		"three_things_that_trigger_desire_to_use": nil,
		"three_skills_you_enjoy":                  "music, cooking, walking",
		"three_people_to_talk_to":                 "sponsor, sister, counselor",
		"have_naloxone":                           "yes",
	}

	_, err := Validate(entity.KindRelapsePreventionPlan, payload)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []string{"three_things_that_trigger_desire_to_use"}, shapeErr.Fields)
}

func TestValidate_AbsentArrayDefaultsToEmpty(t *testing.T) {
	payload := entity.Payload{
		"three_things_that_trigger_desire_to_use": "stress",
		"three_skills_you_enjoy":                  "music",
		"three_people_to_talk_to":                 "sponsor",
		"have_naloxone":                           "yes",
	}

	normalized, err := Validate(entity.KindRelapsePreventionPlan, payload)
	require.NoError(t, err)
	assert.Equal(t, []any{}, normalized["safe_caregivers"])
}

func TestValidate_AbsentOptionalScalarBecomesNull(t *testing.T) {
	payload := entity.Payload{
		"three_things_that_trigger_desire_to_use": "stress",
		"three_skills_you_enjoy":                  "music",
		"three_people_to_talk_to":                 "sponsor",
		"have_naloxone":                           "yes",
	}

	normalized, err := Validate(entity.KindRelapsePreventionPlan, payload)
	require.NoError(t, err)

	value, present := normalized["comments"]
	assert.True(t, present, "omitted optional fields must be materialized as null")
	assert.Nil(t, value)
}

func TestValidate_UnknownTopLevelFieldDropped(t *testing.T) {
	payload := entity.Payload{
		"tests":            []any{},
		"not_in_schema":    "whatever",
		"also_not_in_form": 42,
	}

	normalized, err := Validate(entity.KindDrugScreeningResults, payload)
	require.NoError(t, err)
	assert.NotContains(t, normalized, "not_in_schema")
	assert.NotContains(t, normalized, "also_not_in_form")
}

func TestValidate_UnknownSubFieldsPassThrough(t *testing.T) {
	payload := entity.Payload{
		"tests": []any{
			map[string]any{
				"drug_name":      "opiates",
				"date_collected": "2024-01-15",
				"lab_reference":  "LAB-9931", // not in the sub-schema
			},
		},
	}

	normalized, err := Validate(entity.KindDrugScreeningResults, payload)
	require.NoError(t, err)

	tests, ok := normalized["tests"].([]any)
	require.True(t, ok)
	require.Len(t, tests, 1)
	assert.Equal(t, "LAB-9931", tests[0].(map[string]any)["lab_reference"])
}

func TestValidate_ScalarFieldRejectsNestedValue(t *testing.T) {
	payload := entity.Payload{
		"three_things_that_trigger_desire_to_use": map[string]any{"oops": true},
		"three_skills_you_enjoy":                  "music",
		"three_people_to_talk_to":                 "sponsor",
		"have_naloxone":                           "yes",
	}

	_, err := Validate(entity.KindRelapsePreventionPlan, payload)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Fields, "three_things_that_trigger_desire_to_use")
}

func TestValidate_ArrayOfNonObjectsRejected(t *testing.T) {
	payload := entity.Payload{
		"tests": []any{"not-an-object"},
	}

	_, err := Validate(entity.KindDrugScreeningResults, payload)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []string{"tests"}, shapeErr.Fields)
}

func TestValidate_RequiredObjectMissing(t *testing.T) {
	// Substance use history requires one object per substance.
	payload := entity.Payload{
		"alcohol": map[string]any{"ever_used": "no"},
	}

	_, err := Validate(entity.KindSubstanceUseHistory, payload)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Fields, "benzodiazepines")
	assert.Contains(t, shapeErr.Fields, "tobacco")
	assert.NotContains(t, shapeErr.Fields, "alcohol")
}

func TestValidate_UnknownKind(t *testing.T) {
	_, err := Validate(entity.RecordKind("not_a_form"), entity.Payload{})
	assert.Error(t, err)
}

func TestValidate_FullReplaceSemantics(t *testing.T) {
	// An update that omits a field previously set must yield null for it,
	// not the prior value: validation output always covers every field.
	first := entity.Payload{
		"three_things_that_trigger_desire_to_use": "stress",
		"three_skills_you_enjoy":                  "music",
		"three_people_to_talk_to":                 "sponsor",
		"have_naloxone":                           "yes",
		"comments":                                "call before visiting",
	}
	second := entity.Payload{
		"three_things_that_trigger_desire_to_use": "stress",
		"three_skills_you_enjoy":                  "music",
		"three_people_to_talk_to":                 "sponsor",
		"have_naloxone":                           "yes",
	}

	out1, err := Validate(entity.KindRelapsePreventionPlan, first)
	require.NoError(t, err)
	assert.Equal(t, "call before visiting", out1["comments"])

	out2, err := Validate(entity.KindRelapsePreventionPlan, second)
	require.NoError(t, err)
	assert.Nil(t, out2["comments"])
}
