package memory

import (
	"context"
	"log/slog"
	"sync"

	"household-tasks/core"
)

// Accounts is the in-memory account table keyed by normalized username.
// Listing preserves insertion order.
type Accounts struct {
	log *slog.Logger

	mu    sync.RWMutex
	byKey map[string]core.Account
	order []string
}

func NewAccounts(log *slog.Logger, seed []core.Account) *Accounts {
	s := &Accounts{
		log:   log,
		byKey: make(map[string]core.Account, len(seed)),
	}
	for _, a := range seed {
		a = core.NewAccount(a.Username, a.Name, a.Password, a.Role)
		if _, ok := s.byKey[a.Username]; ok {
			log.Warn("duplicate seed account skipped", "username", a.Username)
			continue
		}
		s.byKey[a.Username] = a
		s.order = append(s.order, a.Username)
	}
	return s
}

func (s *Accounts) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Accounts) FindByUsername(ctx context.Context, username string) (core.Account, error) {
	if err := ctx.Err(); err != nil {
		return core.Account{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byKey[core.NormalizeUsername(username)]
	if !ok {
		return core.Account{}, core.ErrUserNotFound
	}
	return a, nil
}

// ListAll returns every account with the password cleared.
func (s *Accounts) ListAll(ctx context.Context) ([]core.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Account, 0, len(s.order))
	for _, key := range s.order {
		a := s.byKey[key]
		a.Password = ""
		out = append(out, a)
	}
	return out, nil
}

func (s *Accounts) Create(ctx context.Context, a core.Account) (core.Account, error) {
	if err := ctx.Err(); err != nil {
		return core.Account{}, err
	}

	a = core.NewAccount(a.Username, a.Name, a.Password, a.Role)
	if len(a.Username) < 2 {
		return core.Account{}, core.ErrInvalidUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byKey[a.Username]; ok {
		return core.Account{}, core.ErrDuplicateUsername
	}
	s.byKey[a.Username] = a
	s.order = append(s.order, a.Username)
	return a, nil
}

func (s *Accounts) Delete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := core.NormalizeUsername(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byKey[key]; !ok {
		return core.ErrUserNotFound
	}
	delete(s.byKey, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Accounts) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKey)
}

var _ core.Accounts = (*Accounts)(nil)
