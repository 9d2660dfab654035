package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Service composes the account and task stores with the authorization policy.
// Multi-step mutations hold mu so both tables see at most one writer at a time.
type Service struct {
	mu sync.RWMutex

	log      *slog.Logger
	accounts Accounts
	tasks    Tasks
	rec      Recorder
	now      func() time.Time
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.rec = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(log *slog.Logger, accounts Accounts, tasks Tasks, opts ...Option) *Service {
	s := &Service{
		log:      log,
		accounts: accounts,
		tasks:    tasks,
		rec:      nopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.accounts.Ping(ctx); err != nil {
		return fmt.Errorf("accounts: %w", err)
	}
	if err := s.tasks.Ping(ctx); err != nil {
		return fmt.Errorf("tasks: %w", err)
	}
	return nil
}

// Callers

// ResolveCaller trusts the asserted username and looks it up. Missing and unknown names are treated alike.
func (s *Service) ResolveCaller(ctx context.Context, username string) (Account, error) {
	if strings.TrimSpace(username) == "" {
		return Account{}, ErrUnauthenticated
	}
	a, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Account{}, ErrUnauthenticated
		}
		return Account{}, err
	}
	return a, nil
}

func (s *Service) ResolveAdmin(ctx context.Context, username string) (Account, error) {
	a, err := s.ResolveCaller(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return Account{}, ErrAdminRequired
		}
		return Account{}, err
	}
	if !IsAdmin(a) {
		return Account{}, ErrAdminRequired
	}
	return a, nil
}

// Accounts

func (s *Service) Login(ctx context.Context, username, password string) (Account, error) {
	if username == "" || password == "" {
		return Account{}, ErrMissingCredentials
	}
	// login keys are lowercased but not trimmed
	if strings.TrimSpace(username) != username {
		return Account{}, ErrUnknownLogin
	}

	a, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Account{}, ErrUnknownLogin
		}
		return Account{}, err
	}
	// plaintext comparison; credentials are stored as given
	if a.Password != password {
		return Account{}, ErrInvalidPassword
	}
	return a, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accounts.ListAll(ctx)
}

func (s *Service) CreateUser(ctx context.Context, admin Account, in NewUserInput) (Account, error) {
	if !IsAdmin(admin) {
		return Account{}, ErrAdminRequired
	}
	if in.Username == "" || in.Name == "" || in.Password == "" {
		return Account{}, ErrMissingUserFields
	}

	a := NewAccount(in.Username, in.Name, in.Password, ParseRole(in.Role))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.accounts.FindByUsername(ctx, a.Username); err == nil {
		return Account{}, ErrDuplicateUsername
	} else if !errors.Is(err, ErrUserNotFound) {
		return Account{}, err
	}
	if len(a.Username) < 2 {
		return Account{}, ErrInvalidUsername
	}

	created, err := s.accounts.Create(ctx, a)
	if err != nil {
		return Account{}, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user created", "username", created.Username, "role", created.Role, "by", admin.Username)
	return created, nil
}

// DeleteUser removes the account and then every task assigned to it.
// It returns the deleted account and the number of cascaded tasks.
func (s *Service) DeleteUser(ctx context.Context, admin Account, username string) (Account, int, error) {
	if !IsAdmin(admin) {
		return Account{}, 0, ErrAdminRequired
	}
	key := NormalizeUsername(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.accounts.FindByUsername(ctx, key)
	if err != nil {
		return Account{}, 0, err
	}
	if target.Username == admin.Username {
		return Account{}, 0, ErrSelfDeletion
	}

	if err := s.accounts.Delete(ctx, target.Username); err != nil {
		return Account{}, 0, fmt.Errorf("delete user: %w", err)
	}
	// the account is gone; the cascade must finish even if the request is cancelled now
	n, err := s.tasks.DeleteAssignedTo(context.WithoutCancel(ctx), target.Username)
	if err != nil {
		return Account{}, 0, fmt.Errorf("delete tasks of %s: %w", target.Username, err)
	}

	s.rec.UserDeleted(n)
	s.log.Info("user deleted", "username", target.Username, "cascaded_tasks", n, "by", admin.Username)
	return target, n, nil
}

// Tasks

// ListTasks returns every task to admins and only the caller's own tasks to members.
func (s *Service) ListTasks(ctx context.Context, caller Account) ([]TaskView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		items []Task
		err   error
	)
	if IsAdmin(caller) {
		items, err = s.tasks.List(ctx)
	} else {
		items, err = s.tasks.ListAssignedTo(ctx, caller.Username)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := make([]TaskView, 0, len(items))
	for _, t := range items {
		out = append(out, s.view(ctx, t))
	}
	return out, nil
}

func (s *Service) CreateTask(ctx context.Context, admin Account, in NewTaskInput) (TaskView, error) {
	if !IsAdmin(admin) {
		return TaskView{}, ErrAdminRequired
	}

	title := strings.TrimSpace(in.Title)
	assignee := NormalizeUsername(in.AssignedTo)
	if title == "" || assignee == "" {
		return TaskView{}, ErrMissingTaskFields
	}

	priority := in.Priority
	if priority == "" {
		priority = DefaultPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.accounts.FindByUsername(ctx, assignee); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return TaskView{}, ErrUnknownAssignee
		}
		return TaskView{}, err
	}

	t, err := s.tasks.Create(ctx, Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		AssignedTo:  assignee,
		AssignedBy:  admin.Username,
		Status:      StatusPending,
		Priority:    priority,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return TaskView{}, fmt.Errorf("create task: %w", err)
	}

	s.rec.TaskCreated()
	s.log.Info("task created", "id", t.ID, "assigned_to", t.AssignedTo, "by", admin.Username)
	return s.view(ctx, t), nil
}

// TaskForCaller returns the task when it exists and caller may act on it.
func (s *Service) TaskForCaller(ctx context.Context, caller Account, id int64) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.taskForCaller(ctx, caller, id)
}

func (s *Service) taskForCaller(ctx context.Context, caller Account, id int64) (Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if !CanActOnTask(caller, t) {
		return Task{}, ErrForbidden
	}
	return t, nil
}

// UpdateTaskStatus overwrites the status with the given text; values other than
// pending and completed are accepted as-is.
func (s *Service) UpdateTaskStatus(ctx context.Context, caller Account, id int64, status string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.taskForCaller(ctx, caller, id); err != nil {
		return Task{}, err
	}
	if status == "" {
		return Task{}, ErrMissingStatus
	}

	t, err := s.tasks.UpdateStatus(ctx, id, TaskStatus(status))
	if err != nil {
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	s.log.Debug("task status updated", "id", id, "status", status, "by", caller.Username)
	return t, nil
}

func (s *Service) DeleteTask(ctx context.Context, admin Account, id int64) error {
	if !IsAdmin(admin) {
		return ErrAdminRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("task deleted", "id", id, "by", admin.Username)
	return nil
}

// view resolves display names, falling back to the raw username when the account is gone.
func (s *Service) view(ctx context.Context, t Task) TaskView {
	return TaskView{
		Task:           t,
		AssignedToName: s.displayName(ctx, t.AssignedTo),
		AssignedByName: s.displayName(ctx, t.AssignedBy),
	}
}

func (s *Service) displayName(ctx context.Context, username string) string {
	a, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		return username
	}
	return a.Name
}
