package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var batchIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestBatchIDGenerator_Format(t *testing.T) {
	id := NewBatchIDGenerator().Generate()

	assert.Regexp(t, batchIDPattern, id)
}

func TestBatchIDGenerator_Unique(t *testing.T) {
	g := NewBatchIDGenerator()
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		id := g.Generate()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
