// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates prefixed uuid-backed IDs
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new uuid-backed generator with the given prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new ID with the format: prefix_uuid
func (g *UUIDGenerator) Generate() string {
	if g.prefix == "" {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s_%s", g.prefix, uuid.NewString())
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s_%d", g.prefix, n)
}
