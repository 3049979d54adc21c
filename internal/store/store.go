package store

import (
	"strings"
	"time"

	"github.com/kny8493/2025-todolist/internal/models"
)

// TaskStore owns an ordered task collection and the id counter.
//
// It is deliberately single-owner: there is no locking here, every
// operation runs to completion, and invalid input degrades to a silent
// no-op instead of an error. A host that serves concurrent callers must
// serialize access per store instance.
type TaskStore struct {
	tasks  []models.Task
	nextID int64
	now    func() time.Time
}

func New() *TaskStore {
	return &TaskStore{
		nextID: 1,
		now:    time.Now,
	}
}

// NewWithClock is New with an injected clock, used by tests.
func NewWithClock(now func() time.Time) *TaskStore {
	s := New()
	s.now = now
	return s
}

// Add appends a task with the next id and the current creation instant.
// Blank or whitespace-only text is discarded without any state change.
func (s *TaskStore) Add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.tasks = append(s.tasks, models.Task{
		ID:        s.nextID,
		Text:      text,
		CreatedAt: s.now(),
	})
	s.nextID++
}

// Delete removes the task with the given id, preserving the relative
// order of the remaining tasks. Unknown ids are a no-op.
func (s *TaskStore) Delete(id int64) {
	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Toggle flips the completion flag of the task with the given id.
// Unknown ids are a no-op.
func (s *TaskStore) Toggle(id int64) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return
		}
	}
}

// Update replaces the text of the task with the given id. Blank or
// whitespace-only text preserves the existing text; unknown ids are
// a no-op.
func (s *TaskStore) Update(id int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Text = text
			return
		}
	}
}

// Filtered returns the tasks matching the filter kind in insertion
// order. The result is a copy; mutating it does not affect the store.
func (s *TaskStore) Filtered(kind models.Filter) []models.Task {
	if kind == models.FilterAll {
		return s.Tasks()
	}

	completed := kind == models.FilterCompleted
	tasks := make([]models.Task, 0)
	for _, task := range s.tasks {
		if task.Completed == completed {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Tasks returns a copy of the full task sequence in insertion order.
func (s *TaskStore) Tasks() []models.Task {
	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *TaskStore) Statistics() models.Statistics {
	stats := models.Statistics{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// MarkAllCompleted completes every existing task. Tasks added
// afterward still start out incomplete.
func (s *TaskStore) MarkAllCompleted() {
	for i := range s.tasks {
		s.tasks[i].Completed = true
	}
}

// DeleteAll empties the task sequence. The id counter is not reset, so
// ids are never reused for the lifetime of the store.
func (s *TaskStore) DeleteAll() {
	s.tasks = nil
}

// NextID exposes the id counter for diagnostics. Callers must not rely
// on it for targeting; it only promises to exceed every assigned id.
func (s *TaskStore) NextID() int64 {
	return s.nextID
}
