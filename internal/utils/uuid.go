// Package utils provides general-purpose helper utilities
// used across different parts of the application.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for history entries.
// UUIDv7 keeps ids time-ordered, which makes the ledger sort naturally;
// if v7 generation fails the generator falls back to a random v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
