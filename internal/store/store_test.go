package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kny8493/2025-todolist/internal/models"
)

func TestAdd_AssignsIncreasingIDs(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Add(fmt.Sprintf("task %d", i))
	}

	tasks := s.Tasks()
	require.Len(t, tasks, 5)

	seen := make(map[int64]bool)
	for i, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
		assert.Equal(t, int64(i+1), task.ID)
		assert.False(t, task.Completed)
	}
	assert.Equal(t, int64(6), s.NextID())
}

func TestAdd_TrimsText(t *testing.T) {
	s := New()
	s.Add("  Buy milk  ")

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)
}

func TestAdd_BlankTextIsNoOp(t *testing.T) {
	s := New()
	s.Add("")
	s.Add("   ")
	s.Add("\t\n")

	assert.Empty(t, s.Tasks())
	assert.Equal(t, models.Statistics{}, s.Statistics())
	assert.Equal(t, int64(1), s.NextID(), "rejected input must not consume ids")
}

func TestAdd_CapturesCreationInstant(t *testing.T) {
	instant := time.Date(2025, time.March, 14, 9, 26, 0, 0, time.Local)
	s := NewWithClock(func() time.Time { return instant })
	s.Add("Buy milk")

	require.Len(t, s.Tasks(), 1)
	assert.True(t, s.Tasks()[0].CreatedAt.Equal(instant))
}

func TestDelete_PreservesOrder(t *testing.T) {
	s := New()
	s.Add("first")
	s.Add("second")
	s.Add("third")

	s.Delete(2)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Text)
	assert.Equal(t, "third", tasks[1].Text)
}

func TestDelete_IsIdempotent(t *testing.T) {
	s := New()
	s.Add("only")
	s.Delete(1)

	before := s.Statistics()
	s.Delete(1)
	assert.Equal(t, before, s.Statistics())
	assert.Equal(t, int64(2), s.NextID())
}

func TestDelete_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.Add("keep me")
	s.Delete(42)

	assert.Len(t, s.Tasks(), 1)
}

func TestToggle_FlipsAndRestores(t *testing.T) {
	s := New()
	s.Add("task")

	s.Toggle(1)
	assert.True(t, s.Tasks()[0].Completed)

	s.Toggle(1)
	assert.False(t, s.Tasks()[0].Completed)
}

func TestToggle_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.Add("task")
	s.Toggle(99)

	assert.False(t, s.Tasks()[0].Completed)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		text     string
		wantText string
	}{
		{name: "replaces text", id: 1, text: "new text", wantText: "new text"},
		{name: "trims text", id: 1, text: "  new  ", wantText: "new"},
		{name: "blank text preserves existing", id: 1, text: "   ", wantText: "original"},
		{name: "empty text preserves existing", id: 1, text: "", wantText: "original"},
		{name: "unknown id is a no-op", id: 7, text: "new text", wantText: "original"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Add("original")

			s.Update(tt.id, tt.text)

			tasks := s.Tasks()
			require.Len(t, tasks, 1)
			assert.Equal(t, tt.wantText, tasks[0].Text)
		})
	}
}

func TestFiltered(t *testing.T) {
	s := New()
	s.Add("done one")
	s.Add("pending")
	s.Add("done two")
	s.Toggle(1)
	s.Toggle(3)

	all := s.Filtered(models.FilterAll)
	require.Len(t, all, 3)

	completed := s.Filtered(models.FilterCompleted)
	require.Len(t, completed, 2)
	assert.Equal(t, int64(1), completed[0].ID)
	assert.Equal(t, int64(3), completed[1].ID)

	incomplete := s.Filtered(models.FilterIncomplete)
	require.Len(t, incomplete, 1)
	assert.Equal(t, "pending", incomplete[0].Text)
}

func TestFiltered_ReturnsCopy(t *testing.T) {
	s := New()
	s.Add("task")

	view := s.Filtered(models.FilterAll)
	view[0].Text = "mutated"

	assert.Equal(t, "task", s.Tasks()[0].Text)
}

func TestMarkAllCompleted(t *testing.T) {
	s := New()
	s.Add("one")
	s.Add("two")
	s.Add("three")

	s.MarkAllCompleted()

	assert.Empty(t, s.Filtered(models.FilterIncomplete))

	completed := s.Filtered(models.FilterCompleted)
	require.Len(t, completed, 3)
	for i, task := range completed {
		assert.Equal(t, int64(i+1), task.ID, "insertion order must survive bulk completion")
	}

	// Tasks added afterward still start out incomplete.
	s.Add("four")
	assert.Len(t, s.Filtered(models.FilterIncomplete), 1)
}

func TestDeleteAll_KeepsIDCounter(t *testing.T) {
	s := New()
	s.Add("one")
	s.Add("two")
	s.Add("three")

	s.DeleteAll()
	assert.Equal(t, models.Statistics{}, s.Statistics())

	s.Add("four")
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(4), tasks[0].ID, "ids are never reused after a clear")
}

func TestStatistics(t *testing.T) {
	s := New()
	assert.Equal(t, models.Statistics{}, s.Statistics())

	s.Add("one")
	s.Add("two")
	s.Add("three")
	s.Toggle(2)

	stats := s.Statistics()
	assert.Equal(t, models.Statistics{Total: 3, Completed: 1, Pending: 2}, stats)
	assert.Equal(t, stats.Total, stats.Completed+stats.Pending)
}

// Mirrors a full user session: create, toggle, filter, delete, create again.
func TestStoreScenario(t *testing.T) {
	s := New()
	s.Add("Buy milk")
	s.Add("Walk dog")

	s.Toggle(1)

	completed := s.Filtered(models.FilterCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, int64(1), completed[0].ID)
	assert.Equal(t, "Buy milk", completed[0].Text)
	assert.True(t, completed[0].Completed)

	incomplete := s.Filtered(models.FilterIncomplete)
	require.Len(t, incomplete, 1)
	assert.Equal(t, int64(2), incomplete[0].ID)
	assert.Equal(t, "Walk dog", incomplete[0].Text)

	assert.Equal(t, models.Statistics{Total: 2, Completed: 1, Pending: 1}, s.Statistics())

	s.Delete(2)
	assert.Equal(t, models.Statistics{Total: 1, Completed: 1, Pending: 0}, s.Statistics())

	s.Add("Read book")
	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(3), tasks[1].ID, "deleted ids must not come back")
}
