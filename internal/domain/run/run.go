package run

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// seqCounter hands out a process-local sequence number per run
var seqCounter uint64

// MutationKind names an in-place column change
type MutationKind string

const (
	MutationStrip   MutationKind = "STRIP"
	MutationReplace MutationKind = "REPLACE"
	MutationFill    MutationKind = "FILL"
	MutationCast    MutationKind = "CAST"
	MutationClip    MutationKind = "CLIP"
)

// Mutation records one in-place change applied to a live table
type Mutation struct {
	Kind    MutationKind
	Table   string
	Column  string
	Changed int // number of cells whose value changed
}

// Run is the context of one pass over a table
type Run struct {
	ID        string
	Seq       uint64
	Active    bool
	StartTime time.Time
	Mutations []Mutation
}

// New creates a new run with a unique ID
func New() *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&seqCounter, 1),
		Active:    true,
		StartTime: time.Now(),
		Mutations: make([]Mutation, 0),
	}
}

// Record appends a mutation. Safe on a nil run.
func (r *Run) Record(m Mutation) {
	if r == nil {
		return
	}
	r.Mutations = append(r.Mutations, m)
}

// Close marks the run as finished
func (r *Run) Close() {
	r.Active = false
}
