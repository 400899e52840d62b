package workspace

import "time"

// Role is an actor's authorization level within a workspace.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ValidRole reports whether the value is one of the four recognized roles
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Member links a user to a workspace with a role. The owner is implicit via
// Workspace.OwnerID and does not need a membership row.
type Member struct {
	ID          int64
	WorkspaceID int64
	UserID      int64
	Username    string
	Role        Role
	JoinedAt    time.Time
}

// ActorContext carries the resolved identity of the requesting actor into
// every core call. The core never reads ambient state; callers resolve the
// role at the start of each operation because roles can change between a
// screen being opened and an action being triggered.
type ActorContext struct {
	UserID      int64
	Username    string
	WorkspaceID int64
	Role        Role
}
