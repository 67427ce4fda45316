package credid

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ID is the short public identifier printed on a credential. It is the first
// hyphen-delimited segment of a random UUID, uppercased: eight hex characters
// that a recipient can read over the phone or type into the lookup form.
//
// The truncation trades uniqueness for typability. Collision odds are far
// worse than a full UUID's and the store does not retry on conflict. That is
// a deliberate product decision, not an oversight.
type ID string

// Zero is the empty ID. Only useful as a placeholder.
const Zero ID = ""

// Length is the number of characters in a credential ID.
const Length = 8

// ErrInvalid reports a malformed credential ID string.
var ErrInvalid = errors.New("credid: invalid credential id")

// New generates a fresh credential ID.
func New() ID {
	seg, _, _ := strings.Cut(uuid.New().String(), "-")
	return ID(strings.ToUpper(seg))
}

// Parse validates the form of a credential ID: exactly eight hex characters.
// Lowercase input is accepted and canonicalised to uppercase, matching what
// New produces.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if len(s) != Length {
		return Zero, ErrInvalid
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return Zero, ErrInvalid
		}
	}
	return ID(strings.ToUpper(s)), nil
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }
