package utils

import "github.com/google/uuid"

// UUIDGenerator assigns string identifiers to new database rows.
// Generated identifiers are UUIDv7, which carry a millisecond timestamp
// prefix so that freshly inserted rows sort chronologically by id.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a ready-to-use UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier in canonical string form.
// If v7 generation fails it falls back to a random v4 value instead of
// returning an error, since id generation must not fail a request.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
