package memory

import (
	"context"
	"slices"
	"sync"

	"household-tasks/core"
)

// Tasks is the in-memory ordered task table. Ids come from a counter that is
// incremented before use and never rewinds, so deleted ids are not reused.
type Tasks struct {
	mu     sync.RWMutex
	nextID int64
	items  []core.Task
}

func NewTasks(counter int64, seed []core.Task) *Tasks {
	s := &Tasks{
		nextID: counter,
		items:  make([]core.Task, 0, len(seed)),
	}
	for _, t := range seed {
		if t.ID > s.nextID {
			s.nextID = t.ID
		}
		s.items = append(s.items, t)
	}
	return s
}

func (s *Tasks) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Tasks) List(ctx context.Context) ([]core.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items), nil
}

func (s *Tasks) ListAssignedTo(ctx context.Context, username string) ([]core.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Task, 0)
	for _, t := range s.items {
		if t.AssignedTo == username {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Tasks) Get(ctx context.Context, id int64) (core.Task, error) {
	if err := ctx.Err(); err != nil {
		return core.Task{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Task{}, core.ErrTaskNotFound
	}
	return s.items[i], nil
}

func (s *Tasks) Create(ctx context.Context, t core.Task) (core.Task, error) {
	if err := ctx.Err(); err != nil {
		return core.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	s.items = append(s.items, t)
	return t, nil
}

func (s *Tasks) UpdateStatus(ctx context.Context, id int64, status core.TaskStatus) (core.Task, error) {
	if err := ctx.Err(); err != nil {
		return core.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Task{}, core.ErrTaskNotFound
	}
	s.items[i].Status = status
	return s.items[i], nil
}

func (s *Tasks) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.ErrTaskNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// DeleteAssignedTo removes every task assigned to username and reports how many were removed.
func (s *Tasks) DeleteAssignedTo(ctx context.Context, username string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(t core.Task) bool {
		return t.AssignedTo == username
	})
	return before - len(s.items), nil
}

func (s *Tasks) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Tasks) indexOf(id int64) int {
	return slices.IndexFunc(s.items, func(t core.Task) bool { return t.ID == id })
}

var _ core.Tasks = (*Tasks)(nil)
