package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateIsV4(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Len(t, id, 36)
}

func TestUUIDGenerator_PairwiseDistinct(t *testing.T) {
	const n = 10000
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s after %d generations", id, i)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}
