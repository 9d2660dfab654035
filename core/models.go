package core

import (
	"strings"
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ParseRole coerces anything other than the literal "admin" to member.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleMember
}

func (r Role) Label() string {
	if r == RoleAdmin {
		return "Administrator"
	}
	return "Member"
}

// TaskStatus is stored as free text; only pending and completed are produced by the service itself.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

const DefaultPriority = "medium"

type Account struct {
	Username  string `json:"username"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	RoleLabel string `json:"roleLabel"`
}

// NewAccount normalizes the username and name and derives the role label.
func NewAccount(username, name, password string, role Role) Account {
	return Account{
		Username:  NormalizeUsername(username),
		Password:  password,
		Name:      strings.TrimSpace(name),
		Role:      role,
		RoleLabel: role.Label(),
	}
}

func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assignedTo"`
	AssignedBy  string     `json:"assignedBy"`
	Status      TaskStatus `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TaskView is a task enriched with the display names of the accounts it references.
type TaskView struct {
	Task
	AssignedToName string `json:"assignedToName"`
	AssignedByName string `json:"assignedByName"`
}

type NewTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    string
}

type NewUserInput struct {
	Username string
	Name     string
	Password string
	Role     string
}
