package memory

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"household-tasks/core"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedAccount struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

type seedTask struct {
	ID          int64     `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	AssignedTo  string    `yaml:"assigned_to"`
	AssignedBy  string    `yaml:"assigned_by"`
	Status      string    `yaml:"status"`
	Priority    string    `yaml:"priority"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type seedDoc struct {
	Accounts    []seedAccount `yaml:"accounts"`
	TaskCounter int64         `yaml:"task_counter"`
	Tasks       []seedTask    `yaml:"tasks"`
}

// Seed is the initial content of both stores.
type Seed struct {
	Accounts    []core.Account
	TaskCounter int64
	Tasks       []core.Task
}

// LoadSeed reads the seed document at path, or the embedded demo household when path is empty.
func LoadSeed(path string) (Seed, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed %q: %w", path, err)
		}
		data = b
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (Seed, error) {
	var doc seedDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}

	seed := Seed{TaskCounter: doc.TaskCounter}
	for _, a := range doc.Accounts {
		seed.Accounts = append(seed.Accounts, core.NewAccount(a.Username, a.Name, a.Password, core.ParseRole(a.Role)))
	}

	seen := make(map[int64]bool, len(doc.Tasks))
	for _, t := range doc.Tasks {
		if t.ID <= 0 || seen[t.ID] {
			return Seed{}, fmt.Errorf("parse seed: invalid or duplicate task id %d", t.ID)
		}
		seen[t.ID] = true

		priority := t.Priority
		if priority == "" {
			priority = core.DefaultPriority
		}
		status := core.TaskStatus(t.Status)
		if status == "" {
			status = core.StatusPending
		}
		seed.Tasks = append(seed.Tasks, core.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			AssignedTo:  core.NormalizeUsername(t.AssignedTo),
			AssignedBy:  core.NormalizeUsername(t.AssignedBy),
			Status:      status,
			Priority:    priority,
			CreatedAt:   t.CreatedAt.UTC(),
		})
	}
	return seed, nil
}
