package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUID("req")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "req_"))
	assert.NotEqual(t, first, second)
}

func TestUUIDGenerator_NoPrefix(t *testing.T) {
	gen := NewUUID("")
	assert.NotContains(t, gen.Generate(), "_")
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequential("test")

	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())

	bare := NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
