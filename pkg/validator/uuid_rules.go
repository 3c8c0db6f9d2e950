package validator

import (
	"github.com/google/uuid"
)

// UUID passes for canonical UUID strings (8-4-4-4-12) and uuid.UUID values.
func UUID(value any, _ ...any) Outcome {
	if id, ok := value.(uuid.UUID); ok {
		return Check(id != uuid.Nil, Params{"value": value})
	}
	return Check(validUUID(toString(value)), Params{"value": value})
}

// validUUID pre-validates the shape to avoid expensive parsing.
func validUUID(value string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(value) != 36 {
		return false
	}

	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}
