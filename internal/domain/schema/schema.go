// Package schema describes the payload shape of each record kind and
// validates inbound payloads against it. The ten clinical forms are data,
// not code: each kind contributes one descriptor and a single validator
// walks all of them.
package schema

import (
	"fmt"
	"strings"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
)

// FieldType classifies a payload field.
type FieldType int

const (
	// Scalar is a string, number, boolean or date carried as a JSON
	// primitive.
	Scalar FieldType = iota

	// Object is a single nested object with a fixed sub-schema.
	Object

	// ArrayOfObject is a list of nested objects sharing one sub-schema.
	ArrayOfObject
)

// Field describes one named payload field.
type Field struct {
	Name     string
	Type     FieldType
	Required bool // Required scalars must be present and non-null.

	// SubFields lists the recognized keys of a nested object. Unknown keys
	// are passed through as opaque data, never rejected; the list exists
	// for documentation and for structural checks only.
	SubFields []string
}

// Schema is the ordered field list for one record kind.
type Schema struct {
	Kind   entity.RecordKind
	Fields []Field
}

// ShapeError reports the fields that failed structural validation.
type ShapeError struct {
	Fields []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid payload shape: %s", strings.Join(e.Fields, ", "))
}

// ForKind returns the schema descriptor for the kind.
func ForKind(kind entity.RecordKind) (Schema, bool) {
	s, ok := registry[kind]

	return s, ok
}

// Validate checks payload against the kind's schema and returns the
// normalized form used for persistence:
//
//   - required scalar fields must be present and non-null;
//   - object fields must be JSON objects when present;
//   - array fields must be arrays of JSON objects; absent or null arrays
//     normalize to an empty array;
//   - absent optional fields are materialized as explicit nulls, so a
//     full-replace update really does clear anything the caller omitted;
//   - fields outside the schema are dropped, unknown sub-fields inside a
//     nested object are kept as-is.
func Validate(kind entity.RecordKind, payload entity.Payload) (entity.Payload, error) {
	s, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("no schema registered for kind %q", kind)
	}

	normalized := make(entity.Payload, len(s.Fields))
	var bad []string

	for _, field := range s.Fields {
		value, present := payload[field.Name]

		switch field.Type {
		case Scalar:
			if !present || value == nil {
				if field.Required {
					bad = append(bad, field.Name)

					continue
				}
				normalized[field.Name] = nil

				continue
			}
			if !isScalar(value) {
				bad = append(bad, field.Name)

				continue
			}
			normalized[field.Name] = value

		case Object:
			if !present || value == nil {
				if field.Required {
					bad = append(bad, field.Name)

					continue
				}
				normalized[field.Name] = nil

				continue
			}
			obj, ok := value.(map[string]any)
			if !ok {
				bad = append(bad, field.Name)

				continue
			}
			normalized[field.Name] = obj

		case ArrayOfObject:
			if !present || value == nil {
				// Arrays default to empty rather than null.
				normalized[field.Name] = []any{}

				continue
			}
			arr, ok := value.([]any)
			if !ok {
				bad = append(bad, field.Name)

				continue
			}
			if !elementsAreObjects(arr) {
				bad = append(bad, field.Name)

				continue
			}
			normalized[field.Name] = arr
		}
	}

	if len(bad) > 0 {
		return nil, &ShapeError{Fields: bad}
	}

	return normalized, nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, int, int64:
		return true
	}

	return false
}

func elementsAreObjects(arr []any) bool {
	for _, elem := range arr {
		if _, ok := elem.(map[string]any); !ok {
			return false
		}
	}

	return true
}
