package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

var testTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func mkLead(id string, stage lead.Stage) lead.Lead {
	return lead.Lead{ID: id, DisplayName: "Lead " + id, Stage: stage, CreatedAt: testTime}
}

func ids(leads []lead.Lead) []string {
	out := make([]string, len(leads))
	for i, l := range leads {
		out[i] = l.ID
	}
	return out
}

// recorder counts notifications.
type recorder struct {
	changes []Change
}

func (r *recorder) BoardChanged(c Change) { r.changes = append(r.changes, c) }

func newLoadedStore(t *testing.T) (*Store, *recorder) {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Load([]lead.Lead{
		mkLead("c1", lead.StageNew),
		mkLead("c2", lead.StageNew),
		mkLead("c3", lead.StageContacted),
		mkLead("c4", lead.StageClosed),
	}))
	rec := &recorder{}
	s.Subscribe(rec)
	return s, rec
}

func TestStore_ByStage(t *testing.T) {
	t.Parallel()
	s, _ := newLoadedStore(t)

	assert.Equal(t, []string{"c1", "c2"}, ids(s.ByStage(lead.StageNew)))
	assert.Equal(t, []string{"c3"}, ids(s.ByStage(lead.StageContacted)))
	assert.Empty(t, s.ByStage(lead.StageProposal))
}

func TestStore_Load_Rejects(t *testing.T) {
	t.Parallel()

	s := NewStore()
	err := s.Load([]lead.Lead{mkLead("a", 0)})
	require.ErrorIs(t, err, domain.ErrValidation)

	err = s.Load([]lead.Lead{mkLead("a", lead.StageNew), mkLead("a", lead.StageClosed)})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, s.Items())
}

func TestStore_ApplyLocalMutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		id        string
		stage     lead.Stage
		index     int
		wantMoved bool
		wantNew   []string
		wantOther []string
		other     lead.Stage
	}{
		{
			name: "cross stage to end", id: "c1", stage: lead.StageClosed, index: 99,
			wantMoved: true, wantNew: []string{"c2"}, other: lead.StageClosed, wantOther: []string{"c4", "c1"},
		},
		{
			name: "cross stage to front", id: "c1", stage: lead.StageClosed, index: 0,
			wantMoved: true, wantNew: []string{"c2"}, other: lead.StageClosed, wantOther: []string{"c1", "c4"},
		},
		{
			name: "into empty stage", id: "c2", stage: lead.StageProposal, index: 3,
			wantMoved: true, wantNew: []string{"c1"}, other: lead.StageProposal, wantOther: []string{"c2"},
		},
		{
			name: "reorder below sibling", id: "c1", stage: lead.StageNew, index: 1,
			wantMoved: true, wantNew: []string{"c2", "c1"},
		},
		{
			name: "reorder above sibling", id: "c2", stage: lead.StageNew, index: 0,
			wantMoved: true, wantNew: []string{"c2", "c1"},
		},
		{
			name: "same slot is a no-op", id: "c1", stage: lead.StageNew, index: 0,
			wantMoved: false, wantNew: []string{"c1", "c2"},
		},
		{
			name: "unknown lead is a no-op", id: "zz", stage: lead.StageClosed, index: 0,
			wantMoved: false, wantNew: []string{"c1", "c2"},
		},
		{
			name: "invalid stage is a no-op", id: "c1", stage: 0, index: 0,
			wantMoved: false, wantNew: []string{"c1", "c2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, rec := newLoadedStore(t)

			moved := s.ApplyLocalMutation(tt.id, tt.stage, tt.index)
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantNew, ids(s.ByStage(lead.StageNew)))
			if tt.other != 0 {
				assert.Equal(t, tt.wantOther, ids(s.ByStage(tt.other)))
			}

			wantNotifications := 0
			if tt.wantMoved {
				wantNotifications = 1
			}
			assert.Len(t, rec.changes, wantNotifications)
		})
	}
}

func TestStore_CommitAndDurable(t *testing.T) {
	t.Parallel()
	s, rec := newLoadedStore(t)

	require.True(t, s.ApplyLocalMutation("c1", lead.StageClosed, 0))
	assert.False(t, s.Durable("c1"))

	before := s.Snapshot().Epoch()
	require.True(t, s.Commit("c1"))
	assert.True(t, s.Durable("c1"))
	assert.Equal(t, []string{"c1"}, s.SettledSince(before))
	assert.False(t, s.Commit("missing"))

	require.Len(t, rec.changes, 2)
	assert.Equal(t, ReasonMove, rec.changes[0].Reason)
	assert.Equal(t, ReasonCommit, rec.changes[1].Reason)
	assert.Greater(t, rec.changes[1].Version, rec.changes[0].Version)
}

func TestStore_Confirm(t *testing.T) {
	t.Parallel()

	t.Run("already in confirmed stage", func(t *testing.T) {
		t.Parallel()
		s, rec := newLoadedStore(t)

		require.True(t, s.ApplyLocalMutation("c1", lead.StageClosed, 0))
		rec.changes = nil

		require.True(t, s.Confirm("c1", lead.StageClosed))
		assert.True(t, s.Durable("c1"))
		assert.Equal(t, []string{"c1", "c4"}, ids(s.ByStage(lead.StageClosed)))
		require.Len(t, rec.changes, 1)
		assert.Equal(t, ReasonCommit, rec.changes[0].Reason)
	})

	t.Run("reload put the lead back", func(t *testing.T) {
		t.Parallel()
		s, rec := newLoadedStore(t)

		require.True(t, s.ApplyLocalMutation("c1", lead.StageClosed, 0))
		require.NoError(t, s.Load([]lead.Lead{
			mkLead("c1", lead.StageNew),
			mkLead("c2", lead.StageNew),
			mkLead("c4", lead.StageClosed),
		}))
		rec.changes = nil
		before := s.Snapshot().Epoch()

		require.True(t, s.Confirm("c1", lead.StageClosed))
		stage, index, ok := s.Position("c1")
		require.True(t, ok)
		assert.Equal(t, lead.StageClosed, stage)
		assert.Equal(t, 1, index, "lands after the stage's existing leads")
		assert.True(t, s.Durable("c1"))
		assert.Equal(t, []string{"c1"}, s.SettledSince(before))
		require.Len(t, rec.changes, 1, "confirm must be a single transition")
		assert.Equal(t, ReasonCommit, rec.changes[0].Reason)
	})

	t.Run("ignored", func(t *testing.T) {
		t.Parallel()
		s, rec := newLoadedStore(t)
		rec.changes = nil

		assert.False(t, s.Confirm("missing", lead.StageClosed))
		assert.False(t, s.Confirm("c1", lead.Stage(99)))
		assert.Empty(t, rec.changes)
	})
}

func TestStore_RollbackRestoresSnapshot(t *testing.T) {
	t.Parallel()
	s, rec := newLoadedStore(t)

	snap := s.Snapshot()
	want := s.Items()

	s.ApplyLocalMutation("c1", lead.StageContacted, 0)
	s.ApplyLocalMutation("c1", lead.StageClosed, 1)
	rec.changes = nil

	require.True(t, s.Rollback(snap))
	assert.Equal(t, want, s.Items())
	require.Len(t, rec.changes, 1, "rollback must be a single transition")
	assert.Equal(t, ReasonRollback, rec.changes[0].Reason)
	assert.Contains(t, rec.changes[0].LeadIDs, "c1")

	assert.False(t, s.Rollback(snap), "rollback without changes is a no-op")
	assert.Len(t, rec.changes, 1)
}

func TestStore_RollbackSkipsStaleSnapshot(t *testing.T) {
	t.Parallel()
	s, _ := newLoadedStore(t)

	snap := s.Snapshot()
	s.ApplyLocalMutation("c1", lead.StageClosed, 0)

	reloaded := []lead.Lead{mkLead("c1", lead.StageClosed), mkLead("c9", lead.StageNew)}
	require.NoError(t, s.Load(reloaded))

	assert.False(t, s.Rollback(snap))
	assert.Equal(t, reloaded, s.Items())
}

func TestStore_Insert(t *testing.T) {
	t.Parallel()
	s, rec := newLoadedStore(t)

	require.NoError(t, s.Insert(mkLead("c5", lead.StageNew)))
	assert.Equal(t, []string{"c1", "c2", "c5"}, ids(s.ByStage(lead.StageNew)))
	assert.True(t, s.Durable("c5"))
	require.Len(t, rec.changes, 1)

	require.ErrorIs(t, s.Insert(mkLead("c5", lead.StageNew)), domain.ErrConflict)
	require.ErrorIs(t, s.Insert(mkLead("c6", 0)), domain.ErrValidation)
}

func TestStore_Unsubscribe(t *testing.T) {
	t.Parallel()
	s, rec := newLoadedStore(t)

	var calls int
	sub := s.Subscribe(ObserverFunc(func(Change) { calls++ }))
	s.ApplyLocalMutation("c1", lead.StageClosed, 0)
	s.Unsubscribe(sub)
	s.ApplyLocalMutation("c1", lead.StageNew, 0)

	assert.Equal(t, 1, calls)
	assert.Len(t, rec.changes, 2)
}

func TestStore_Position(t *testing.T) {
	t.Parallel()
	s, _ := newLoadedStore(t)

	stage, idx, ok := s.Position("c2")
	require.True(t, ok)
	assert.Equal(t, lead.StageNew, stage)
	assert.Equal(t, 1, idx)

	_, _, ok = s.Position("nope")
	assert.False(t, ok)
}

func TestSnapshot_RebaseKeepsIndependentMoves(t *testing.T) {
	t.Parallel()
	s, _ := newLoadedStore(t)

	snap := s.Snapshot()
	s.ApplyLocalMutation("c1", lead.StageClosed, 0) // the move that will fail
	s.ApplyLocalMutation("c3", lead.StageProposal, 0)
	s.Commit("c3") // an independent move confirmed meanwhile
	require.NoError(t, s.Insert(mkLead("c5", lead.StageNew)))

	committed := map[string]bool{}
	for _, id := range s.SettledSince(snap.Epoch()) {
		committed[id] = true
	}
	rebased := snap.Rebase(s.Items(), func(id string) bool { return committed[id] })

	require.True(t, s.Rollback(rebased))
	assert.Equal(t, []string{"c1", "c2", "c5"}, ids(s.ByStage(lead.StageNew)))
	assert.Equal(t, []string{"c3"}, ids(s.ByStage(lead.StageProposal)))
	assert.Equal(t, []string{"c4"}, ids(s.ByStage(lead.StageClosed)))
}

func TestSnapshot_RebaseWithNothingToKeepIsIdentity(t *testing.T) {
	t.Parallel()
	s, _ := newLoadedStore(t)

	snap := s.Snapshot()
	s.ApplyLocalMutation("c2", lead.StageClosed, 0)

	rebased := snap.Rebase(s.Items(), func(string) bool { return false })
	assert.Equal(t, snap.Items(), rebased.Items())
}

func TestStore_Restore(t *testing.T) {
	t.Parallel()

	t.Run("keeps commits and inserts made after capture", func(t *testing.T) {
		t.Parallel()
		s, rec := newLoadedStore(t)

		snap := s.Snapshot()
		s.ApplyLocalMutation("c1", lead.StageClosed, 0)
		s.ApplyLocalMutation("c3", lead.StageProposal, 0)
		s.Commit("c3")
		require.NoError(t, s.Insert(mkLead("c5", lead.StageNew)))
		before := len(rec.changes)

		require.True(t, s.Restore(snap, "c1", nil))
		assert.Equal(t, []string{"c1", "c2", "c5"}, ids(s.ByStage(lead.StageNew)))
		assert.Equal(t, []string{"c3"}, ids(s.ByStage(lead.StageProposal)))
		assert.Equal(t, []string{"c4"}, ids(s.ByStage(lead.StageClosed)))
		require.Len(t, rec.changes, before+1)
		assert.Equal(t, ReasonRollback, rec.changes[before].Reason)
	})

	t.Run("keeps leads selected by the caller", func(t *testing.T) {
		t.Parallel()
		s, _ := newLoadedStore(t)

		snap := s.Snapshot()
		s.ApplyLocalMutation("c1", lead.StageClosed, 0)
		s.ApplyLocalMutation("c2", lead.StageQualified, 0)

		require.True(t, s.Restore(snap, "c1", func(id string) bool { return id == "c2" }))
		assert.Equal(t, []string{"c1"}, ids(s.ByStage(lead.StageNew)))
		assert.Equal(t, []string{"c2"}, ids(s.ByStage(lead.StageQualified)))
		assert.Equal(t, []string{"c4"}, ids(s.ByStage(lead.StageClosed)))
	})

	t.Run("skips a snapshot taken before a reload", func(t *testing.T) {
		t.Parallel()
		s, _ := newLoadedStore(t)

		snap := s.Snapshot()
		require.NoError(t, s.Load([]lead.Lead{mkLead("z1", lead.StageProposal)}))

		assert.False(t, s.Restore(snap, "c1", nil))
		assert.Equal(t, []string{"z1"}, ids(s.Items()))
	})

	t.Run("restored subject survives an older restore", func(t *testing.T) {
		t.Parallel()
		s, _ := newLoadedStore(t)

		older := s.Snapshot()
		s.ApplyLocalMutation("c1", lead.StageClosed, 0)
		newer := s.Snapshot()
		s.ApplyLocalMutation("c3", lead.StageProposal, 0)

		require.True(t, s.Restore(older, "c1", func(id string) bool { return id == "c3" }))
		assert.Equal(t, []string{"c1", "c2"}, ids(s.ByStage(lead.StageNew)))

		require.True(t, s.Restore(newer, "c3", nil))
		assert.Equal(t, []string{"c1", "c2"}, ids(s.ByStage(lead.StageNew)))
		assert.Equal(t, []string{"c3"}, ids(s.ByStage(lead.StageContacted)))
		assert.Equal(t, []string{"c1", "c3"}, s.SettledSince(newer.Epoch()))
	})
}

// Any sequence of speculative moves followed by a rollback restores the
// snapshot exactly: same stages and same relative order.
func TestStore_RollbackCompletenessProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		items := make([]lead.Lead, n)
		for i := range items {
			st := lead.Stages()[rapid.IntRange(0, lead.StageCount-1).Draw(t, "stage")]
			items[i] = mkLead(fmt.Sprintf("l%d", i), st)
		}

		s := NewStore()
		if err := s.Load(items); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		snap := s.Snapshot()

		moves := rapid.IntRange(0, 15).Draw(t, "moves")
		for range moves {
			id := fmt.Sprintf("l%d", rapid.IntRange(0, n-1).Draw(t, "id"))
			st := lead.Stages()[rapid.IntRange(0, lead.StageCount-1).Draw(t, "to")]
			s.ApplyLocalMutation(id, st, rapid.IntRange(-1, n+1).Draw(t, "idx"))
		}

		s.Rollback(snap)
		got := s.Items()
		if len(got) != len(items) {
			t.Fatalf("len = %d, want %d", len(got), len(items))
		}
		for i := range items {
			if got[i] != items[i] {
				t.Fatalf("item %d = %+v, want %+v", i, got[i], items[i])
			}
		}
	})
}
