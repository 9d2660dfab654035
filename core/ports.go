package core

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Accounts interface {
	Pinger

	FindByUsername(ctx context.Context, username string) (Account, error)
	ListAll(ctx context.Context) ([]Account, error)
	Create(ctx context.Context, a Account) (Account, error)
	Delete(ctx context.Context, username string) error
}

type Tasks interface {
	Pinger

	List(ctx context.Context) ([]Task, error)
	ListAssignedTo(ctx context.Context, username string) ([]Task, error)
	Get(ctx context.Context, id int64) (Task, error)
	Create(ctx context.Context, t Task) (Task, error)
	UpdateStatus(ctx context.Context, id int64, status TaskStatus) (Task, error)
	Delete(ctx context.Context, id int64) error
	DeleteAssignedTo(ctx context.Context, username string) (int, error)
}

// Recorder receives domain events for metrics.
type Recorder interface {
	TaskCreated()
	UserDeleted(cascaded int)
}

type nopRecorder struct{}

func (nopRecorder) TaskCreated() {}
func (nopRecorder) UserDeleted(int) {}
