// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular customer account.
	RoleCustomer Role = "customer"
	// RoleChef indicates kitchen staff assigned to a branch.
	RoleChef Role = "chef"
	// RoleCashier indicates counter staff assigned to a branch.
	RoleCashier Role = "cashier"
	// RoleBranchManager indicates the manager of a single branch.
	RoleBranchManager Role = "branch_manager"
	// RoleGeneralManager indicates a manager with authority over all branches.
	RoleGeneralManager Role = "general_manager"
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleChef, RoleCashier, RoleBranchManager, RoleGeneralManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsBranchScoped reports whether the role operates within a single assigned branch.
// Branch-scoped roles must carry a branch assignment to perform branch-scoped actions.
func (r Role) IsBranchScoped() bool {
	switch r {
	case RoleChef, RoleCashier, RoleBranchManager:
		return true
	default:
		return false
	}
}

// IsManagement reports whether the role is branch-agnostic management.
func (r Role) IsManagement() bool {
	return r == RoleGeneralManager || r == RoleAdmin
}

// IsStaff reports whether the role belongs to restaurant personnel.
func (r Role) IsStaff() bool {
	return r != RoleCustomer && r.IsValid()
}

// RoleFromString converts a string claim to a Role, reporting validity.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
