package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUID is a stable, globally unique entity identifier.
//
// UUIDs are only minted by the identity cache on a cache miss. Everywhere
// else they are looked up or parsed, which keeps them stable across
// regenerations of the same library element.
type UUID struct {
	value uuid.UUID
}

// NewUUID generates a new random UUID (v4).
func NewUUID() UUID {
	return UUID{value: uuid.New()}
}

// MustParseUUID parses a UUID from string, panicking on error.
// This is useful for test fixtures and constants where the UUID is known valid.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(fmt.Sprintf("invalid UUID: %s: %v", s, err))
	}
	return u
}

// ParseUUID parses a UUID from string (e.g., "550e8400-e29b-41d4-a716-446655440000").
// Accepts standard UUID formats (with or without hyphens).
func ParseUUID(s string) (UUID, error) {
	if s == "" {
		return UUID{}, fmt.Errorf("UUID cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{value: u}, nil
}

// String returns the canonical UUID string in lowercase with hyphens.
// Format: "550e8400-e29b-41d4-a716-446655440000"
func (u UUID) String() string {
	return u.value.String()
}

// IsZero returns true if this is the zero/nil UUID.
func (u UUID) IsZero() bool {
	return u.value == uuid.Nil
}

// Equal returns true if two UUIDs are equal.
func (u UUID) Equal(other UUID) bool {
	return u.value == other.value
}

// Compare orders UUIDs by their canonical string form. It returns -1, 0 or +1.
//
// Comparing the canonical strings matches a byte-wise comparison of the
// values, so sorted output is stable whichever way the UUIDs were obtained.
func (u UUID) Compare(other UUID) int {
	return strings.Compare(u.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(data []byte) error {
	parsed, err := ParseUUID(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
