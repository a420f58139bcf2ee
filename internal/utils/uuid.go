package utils

import (
	"strings"

	"github.com/google/uuid"
)

// BatchIDGenerator produces opaque batch identifiers: random (v4) UUIDs
// rendered as 32 lowercase hex characters without dashes.
type BatchIDGenerator struct {
}

func NewBatchIDGenerator() *BatchIDGenerator {
	return &BatchIDGenerator{}
}

func (g *BatchIDGenerator) Generate() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
