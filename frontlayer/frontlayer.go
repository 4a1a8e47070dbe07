// Package frontlayer implements the ordered, uniquely-membered collection of
// node IDs currently eligible for execution — every predecessor already
// applied (spec §4.4).
//
// Ordering is insertion order; it is used only as a deterministic tiebreak
// source when the router scans the layer, never as a scheduling priority.
// Remove is a linear scan, acceptable because the layer is bounded by device
// width in practice.
package frontlayer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qroute/circuit"
)

// ErrAlreadyPresent indicates PushBack was called with an ID already in the
// layer — the Router's resolution check must prevent this from occurring.
var ErrAlreadyPresent = errors.New("frontlayer: node already present")

// FrontLayer is an ordered, duplicate-free collection of node IDs.
type FrontLayer struct {
	ids   []circuit.NodeID
	index map[circuit.NodeID]int
}

// New returns an empty FrontLayer, or one seeded with the given node IDs in
// order (typically the DAG's operation roots).
func New(seed ...circuit.NodeID) *FrontLayer {
	f := &FrontLayer{index: make(map[circuit.NodeID]int, len(seed))}
	for _, id := range seed {
		f.ids = append(f.ids, id)
		f.index[id] = len(f.ids) - 1
	}

	return f
}

// PushBack appends id to the end of the layer. Returns ErrAlreadyPresent if
// id is already a member.
func (f *FrontLayer) PushBack(id circuit.NodeID) error {
	if _, ok := f.index[id]; ok {
		return fmt.Errorf("frontlayer: PushBack(%d): %w", id, ErrAlreadyPresent)
	}
	f.ids = append(f.ids, id)
	f.index[id] = len(f.ids) - 1

	return nil
}

// Remove deletes id from the layer if present; a no-op otherwise.
func (f *FrontLayer) Remove(id circuit.NodeID) {
	pos, ok := f.index[id]
	if !ok {
		return
	}
	f.ids = append(f.ids[:pos], f.ids[pos+1:]...)
	delete(f.index, id)
	for i := pos; i < len(f.ids); i++ {
		f.index[f.ids[i]] = i
	}
}

// Contains reports whether id is currently a member.
func (f *FrontLayer) Contains(id circuit.NodeID) bool {
	_, ok := f.index[id]

	return ok
}

// IDs returns the layer's members in insertion order. The returned slice
// must be treated as read-only by callers.
func (f *FrontLayer) IDs() []circuit.NodeID { return f.ids }

// IsEmpty reports whether the layer has no members.
func (f *FrontLayer) IsEmpty() bool { return len(f.ids) == 0 }

// Size returns the number of members.
func (f *FrontLayer) Size() int { return len(f.ids) }
