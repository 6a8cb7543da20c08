// Package guid hands out process-unique 64-bit identifiers.
package guid

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// floor keeps generated ids clear of the reserved trigger-node range.
const floor = 1024

// Generator produces random 64-bit ids derived from version 4 UUIDs.
type Generator struct{}

// New returns a Generator.
func New() Generator {
	return Generator{}
}

// Next returns a fresh id. It never returns a value below the reserved floor.
func (Generator) Next() uint64 {
	for {
		u := uuid.New()
		id := binary.LittleEndian.Uint64(u[:8]) ^ binary.LittleEndian.Uint64(u[8:])
		if id >= floor {
			return id
		}
	}
}

// Sequence is a deterministic generator for tests and tooling.
// It is not safe for concurrent use.
type Sequence struct {
	next uint64
}

// NewSequence returns a Sequence whose first id is start (raised to the floor).
func NewSequence(start uint64) *Sequence {
	return &Sequence{next: max(start, floor)}
}

func (s *Sequence) Next() uint64 {
	id := s.next
	s.next++
	return id
}
