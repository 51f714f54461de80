// SPDX-License-Identifier: MIT

package neighborhood

import (
	"errors"
	"strconv"
)

// DefaultWeight is the weight used by Connect.
const DefaultWeight = 1.0

// Sentinel errors for neighborhood operations.
var (
	// ErrNegativeItem indicates an item handle below zero.
	ErrNegativeItem = errors.New("neighborhood: negative item index")

	// ErrNaNWeight indicates a relation weight that is not a number.
	ErrNaNWeight = errors.New("neighborhood: relation weight is NaN")

	// ErrNilFilter indicates AppendUsing was called without a filter.
	ErrNilFilter = errors.New("neighborhood: relation filter is nil")
)

// Relation is one directed, weighted edge From→To.
type Relation struct {
	// From is the source item index.
	From int

	// To is the target item index.
	To int

	// Weight is the value gained by following this relation.
	Weight float64
}

// String renders the relation as "from->to(weight)".
func (r Relation) String() string {
	return strconv.Itoa(r.From) + "->" + strconv.Itoa(r.To) +
		"(" + strconv.FormatFloat(r.Weight, 'g', -1, 64) + ")"
}

// Weighted stores directed weighted relations grouped by source item.
// The zero value is an empty, ready to use neighborhood.
type Weighted struct {
	// buckets[from] holds the out-relations of from, ascending by weight.
	buckets [][]Relation

	// size counts relations across all buckets.
	size int

	// top is the highest referenced item index plus one (0 when empty).
	top int
}

// New returns an empty neighborhood.
func New() *Weighted {
	return &Weighted{}
}

// NewWithCapacity returns an empty neighborhood with bucket space reserved for
// items 0..n-1. A non-positive n behaves like New.
func NewWithCapacity(n int) *Weighted {
	if n <= 0 {
		return New()
	}

	return &Weighted{buckets: make([][]Relation, 0, n)}
}
