package services

import (
	"context"
	"errors"
	"time"

	"github.com/ndanilenko/taskboard/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrSessionNotFound      = errors.New("session not found")
	ErrTaskNotFound         = errors.New("task not found")
)

type AuthService interface {
	// Register creates a user with the given username, email and password.
	//
	// It hashes the password, generates a unique ID and persists the
	// user. It returns ErrUserAlreadyExists if a user with the same
	// email or username already exists.
	//
	// It does not create a session; the user logs in separately.
	Register(ctx context.Context, params RegisterParams) (*models.User, error)

	// Authenticate checks the credentials of the user with the given email.
	//
	// It returns ErrUserNotFound if no user with the given email exists
	// or ErrUserPasswordMismatch if the password doesn't match. Callers
	// must surface both as one generic failure so that registered
	// emails cannot be probed.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// GetUserByID resolves a user ID to its user record.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

type SessionService interface {
	// Create issues a fresh session. An empty userID creates an
	// anonymous session, which still carries a CSRF token and may
	// accumulate flash messages.
	Create(ctx context.Context, userID string) (*models.Session, error)

	// Get resolves an opaque session token. It returns
	// ErrSessionNotFound for unknown and expired tokens alike.
	Get(ctx context.Context, sessionID string) (*models.Session, error)

	// Delete invalidates the session and drops its pending flashes.
	// Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// PushFlash queues a one-shot notice for the next rendered page.
	PushFlash(ctx context.Context, sessionID, level, message string) error

	// PopFlashes returns the queued notices and removes them.
	PopFlashes(ctx context.Context, sessionID string) ([]models.Flash, error)
}

type TaskService interface {
	// ListTasks returns the user's tasks, freshly selected on every
	// call, narrowed and ordered by the given filter.
	ListTasks(ctx context.Context, userID string, filter TaskFilter) ([]*models.Task, error)

	// CreateTask persists a new task for the given user. A zero status
	// or priority falls back to Pending and Low, which is how the
	// quick-add path applies its defaults.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// GetOwnedTask fetches a task scoped by its owner. It returns
	// ErrTaskNotFound whether the task is absent or owned by someone
	// else; the two cases are indistinguishable on purpose.
	GetOwnedTask(ctx context.Context, userID string, taskID int64) (*models.Task, error)

	// UpdateTask rewrites title, description, status, priority and due
	// date of an owned task and refreshes updated_at. Ownership checks
	// match GetOwnedTask.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask removes an owned task.
	DeleteTask(ctx context.Context, userID string, taskID int64) error

	// ToggleTask flips the status of an owned task: Completed becomes
	// Pending, everything else becomes Completed.
	ToggleTask(ctx context.Context, userID string, taskID int64) (*models.Task, error)
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

const (
	SortByDueDate   = "due_date"
	SortByPriority  = "priority"
	SortByCreatedAt = "created_at"
)

// TaskFilter narrows and orders ListTasks results. Zero values mean
// "no filter"; an unknown Sort falls back to SortByDueDate.
type TaskFilter struct {
	Query  string
	Status string
	Sort   string
}

type CreateTaskParams struct {
	UserID      string
	Title       string
	Description string
	Status      string
	Priority    int
	DueDate     *time.Time
}

type UpdateTaskParams struct {
	ID          int64
	UserID      string
	Title       string
	Description string
	Status      string
	Priority    int
	DueDate     *time.Time
}
