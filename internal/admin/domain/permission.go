package domain

// Permission is a capability tag carried by a role. Stored space-delimited in
// a single column and parsed back out on read.
type Permission string

const (
	PermCreateUser  Permission = "CREATE_USER"
	PermViewUser    Permission = "VIEW_USER"
	PermEditUser    Permission = "EDIT_USER"
	PermDeleteUser  Permission = "DELETE_USER"
	PermManageRoles Permission = "MANAGE_ROLES"
	PermViewReports Permission = "VIEW_REPORTS"
)

// KnownPermissions lists every permission the service understands. Roles may
// only carry tags from this set.
var KnownPermissions = []Permission{
	PermCreateUser,
	PermViewUser,
	PermEditUser,
	PermDeleteUser,
	PermManageRoles,
	PermViewReports,
}

// IsKnown reports whether p is one of the recognised permission tags.
func (p Permission) IsKnown() bool {
	for _, k := range KnownPermissions {
		if p == k {
			return true
		}
	}
	return false
}

func (p Permission) String() string { return string(p) }
