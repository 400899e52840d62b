package identity

import (
	"context"
	"time"
)

// User is the actor identity referenced by workspaces, audit entries and
// snapshot metadata. Credential management lives outside this service; the
// auth middleware only verifies tokens and hands over the user ID.
type User struct {
	ID          int64
	Username    string
	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// UserRepository provides access to user records
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}
