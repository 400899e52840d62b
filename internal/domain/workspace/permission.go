package workspace

// CanRestore decides whether the actor's role authorizes a destructive
// restore of a workspace with the given storage type.
//
// Local workspaces belong to a single machine, so only the owner may
// overwrite them. Server workspaces are shared, and administrators are
// trusted with data management alongside the owner. Editors and viewers are
// never authorized.
func CanRestore(storageType StorageType, role Role) bool {
	switch storageType {
	case StorageLocal:
		return role == RoleOwner
	case StorageServer:
		return role == RoleOwner || role == RoleAdmin
	default:
		return false
	}
}

// CanExport decides whether the actor's role authorizes a snapshot export.
// Export is read-only, so every member except nobody may run it; viewers
// included, matching the read permission of the original role matrix.
func CanExport(role Role) bool {
	return ValidRole(role)
}
