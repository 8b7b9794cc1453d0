package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when inserting a record whose
	// identity is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrDraftNotFound is returned when an operation targets a draft
	// identity that does not exist or is no longer in draft status
	ErrDraftNotFound = errors.New("draft not found")

	// ErrInvalidStatus is returned when a status string names no known
	// lifecycle state
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidMode is returned when the data mode names no known source
	ErrInvalidMode = errors.New("invalid data mode")

	// ErrUnknownScenario is returned when demo mode requests a scenario
	// that has no template set
	ErrUnknownScenario = errors.New("unknown scenario")
)

// ValidationError reports the required submission fields that are
// missing or empty. It is rendered inline by the CLI rather than
// aborting the process.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Fields))
	copy(fields, e.Fields)
	sort.Strings(fields)
	return fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", "))
}

// IsValidation reports whether err is a field-validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
