package pipeline

import (
	"slices"

	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// Snapshot is an immutable deep copy of the full list taken at drag start.
// It is only ever used to roll the store back.
type Snapshot struct {
	items      []lead.Lead
	generation uint64
	epoch      uint64
}

// Items returns a copy of the captured list.
func (s Snapshot) Items() []lead.Lead {
	return slices.Clone(s.items)
}

// Len returns the number of captured leads.
func (s Snapshot) Len() int {
	return len(s.items)
}

// Position returns a lead's captured stage and index within that stage.
func (s Snapshot) Position(id string) (lead.Stage, int, bool) {
	return positionOf(s.items, id)
}

// Epoch returns the store's commit epoch at capture time.
func (s Snapshot) Epoch() uint64 {
	return s.epoch
}

// Rebase returns a copy of the snapshot in which leads selected by keep, and
// leads present in current but missing from the snapshot, take their current
// stage, placed right after the lead that precedes them there now. Every
// other lead keeps its captured placement.
//
// Rolling back a failed move with a rebased snapshot leaves concurrent,
// independent moves of other leads intact. With nothing to keep the result
// equals the snapshot.
func (s Snapshot) Rebase(current []lead.Lead, keep func(id string) bool) Snapshot {
	carry := make(map[string]struct{})
	for _, l := range current {
		if _, _, captured := positionOf(s.items, l.ID); !captured || keep(l.ID) {
			carry[l.ID] = struct{}{}
		}
	}
	if len(carry) == 0 {
		return s
	}

	base := slices.DeleteFunc(slices.Clone(s.items), func(l lead.Lead) bool {
		_, ok := carry[l.ID]
		return ok
	})
	for _, l := range current {
		if _, ok := carry[l.ID]; !ok {
			continue
		}
		base = insertAt(base, l, anchorIndex(base, current, l))
	}

	return Snapshot{items: base, generation: s.generation, epoch: s.epoch}
}

// anchorIndex returns the slot of base where l goes: right after the nearest
// lead that precedes l in its current stage and is already placed in base
// with that stage, or at the front of the stage.
func anchorIndex(base, current []lead.Lead, l lead.Lead) int {
	seq := filterStage(current, l.Stage)
	k := slices.IndexFunc(seq, func(x lead.Lead) bool { return x.ID == l.ID })
	for j := k - 1; j >= 0; j-- {
		i := slices.IndexFunc(base, func(x lead.Lead) bool { return x.ID == seq[j].ID })
		if i >= 0 && base[i].Stage == l.Stage {
			return i + 1
		}
	}
	return globalIndex(base, l.Stage, 0)
}
