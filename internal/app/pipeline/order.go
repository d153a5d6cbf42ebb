package pipeline

import (
	"slices"

	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

func filterStage(items []lead.Lead, stage lead.Stage) []lead.Lead {
	out := make([]lead.Lead, 0, len(items))
	for _, l := range items {
		if l.Stage == stage {
			out = append(out, l)
		}
	}
	return out
}

func positionOf(items []lead.Lead, id string) (lead.Stage, int, bool) {
	i := slices.IndexFunc(items, func(l lead.Lead) bool { return l.ID == id })
	if i < 0 {
		return 0, -1, false
	}
	stage := items[i].Stage
	return stage, len(filterStage(items[:i], stage)), true
}

// globalIndex converts a within-stage index into a slot of the global list.
// Past-the-end indexes land right after the stage's last lead, or at the end
// of the list for an empty stage.
func globalIndex(items []lead.Lead, stage lead.Stage, stageIndex int) int {
	seen := 0
	last := -1
	for i, l := range items {
		if l.Stage != stage {
			continue
		}
		if seen == stageIndex {
			return i
		}
		seen++
		last = i
	}
	if last < 0 {
		return len(items)
	}
	return last + 1
}

func insertAt(items []lead.Lead, l lead.Lead, at int) []lead.Lead {
	return slices.Insert(items, clampIndex(at, len(items)), l)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// diffIDs lists the IDs whose stage or position differs between a and b.
func diffIDs(a, b []lead.Lead) []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, l := range a {
		sa, ia, _ := positionOf(a, l.ID)
		sb, ib, ok := positionOf(b, l.ID)
		if !ok || sa != sb || ia != ib {
			ids = append(ids, l.ID)
			seen[l.ID] = struct{}{}
		}
	}
	for _, l := range b {
		if _, done := seen[l.ID]; done {
			continue
		}
		if _, _, ok := positionOf(a, l.ID); !ok {
			ids = append(ids, l.ID)
		}
	}
	return ids
}
