// Package policy is the authorization decision engine. It is pure: given the
// authenticated identity, a requested action and the targeted scope, it either
// allows the action and computes the implicit filter callers must apply, or
// denies it with a structured reason. Scope is always recomputed server-side;
// client-supplied branch claims only narrow the result for unrestricted roles.
package policy

import (
	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
)

// Action identifies an operation guarded by the policy engine.
type Action string

const (
	ActionViewOrders      Action = "orders.view"
	ActionCreateOrder     Action = "orders.create"
	ActionTransitionOrder Action = "orders.transition"
	ActionDeleteOrder     Action = "orders.delete"
	ActionCreatePayment   Action = "payments.create"
	ActionViewPayments    Action = "payments.view"
	ActionManageMenu      Action = "menu.manage"
	ActionViewInventory   Action = "inventory.view"
	ActionAdjustInventory Action = "inventory.adjust"
	ActionManageStaff     Action = "staff.manage"
	ActionViewStaff       Action = "staff.view"
	ActionManageBranches  Action = "branches.manage"
	ActionViewDashboard   Action = "dashboard.view"
)

// Identity is the verified result of authentication: who is calling, as which
// role, and with which branch assignment. BranchID presence is checked by
// nil-ness so that branch id 0 remains a valid assignment.
type Identity struct {
	UserID   uint
	Role     entity.Role
	BranchID *uint
}

// Target describes the scope a request aims at. Fields are optional; a list
// request typically targets nothing specific, a single-resource request
// carries the owning branch or customer of that resource.
type Target struct {
	BranchID   *uint
	CustomerID *uint
}

// ScopeFilter is the implicit query restriction derived from the caller's
// role. A nil field means "no restriction on that axis".
type ScopeFilter struct {
	BranchID   *uint
	CustomerID *uint
}

// scopeRule is the per-cell outcome of the role/action table.
type scopeRule int

const (
	ruleDeny scopeRule = iota
	// ruleSelf restricts the action to resources owned by the caller.
	ruleSelf
	// ruleOwnBranch restricts the action to the caller's assigned branch.
	ruleOwnBranch
	// ruleAnyBranch allows the action everywhere; a target branch only narrows.
	ruleAnyBranch
)

// rules is the centralized policy table: action -> role -> scope rule.
// Roles absent from a row are denied.
var rules = map[Action]map[entity.Role]scopeRule{
	ActionViewOrders: {
		entity.RoleCustomer:       ruleSelf,
		entity.RoleCashier:        ruleOwnBranch,
		entity.RoleChef:           ruleOwnBranch,
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionCreateOrder: {
		entity.RoleCustomer:       ruleSelf,
		entity.RoleCashier:        ruleOwnBranch,
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionTransitionOrder: {
		entity.RoleChef:    ruleOwnBranch,
		entity.RoleCashier: ruleOwnBranch,
	},
	ActionDeleteOrder: {
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionCreatePayment: {
		entity.RoleCustomer:       ruleSelf,
		entity.RoleCashier:        ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionViewPayments: {
		entity.RoleCustomer:       ruleSelf,
		entity.RoleCashier:        ruleOwnBranch,
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionManageMenu: {
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionViewInventory: {
		entity.RoleChef:           ruleOwnBranch,
		entity.RoleCashier:        ruleOwnBranch,
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionAdjustInventory: {
		entity.RoleChef:           ruleOwnBranch,
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionManageStaff: {
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionViewStaff: {
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionManageBranches: {
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
	ActionViewDashboard: {
		entity.RoleBranchManager:  ruleOwnBranch,
		entity.RoleGeneralManager: ruleAnyBranch,
		entity.RoleAdmin:          ruleAnyBranch,
	},
}

// roleTransitions maps each role to the order statuses it may request.
// Note CASHIER may request DELIVERED from any state where the transition
// table allows it, including directly from PENDING (counter orders).
var roleTransitions = map[entity.Role][]entity.OrderStatus{
	entity.RoleChef:    {entity.OrderStatusPreparing, entity.OrderStatusReady},
	entity.RoleCashier: {entity.OrderStatusDelivered, entity.OrderStatusCancelled},
}

// CanPerform decides whether the identity may perform action against target.
// On allow it returns the implicit scope filter callers must apply to any
// subsequent query or mutation; on deny it returns a structured reason.
func CanPerform(id Identity, action Action, target Target) (ScopeFilter, error) {
	if !id.Role.IsValid() {
		return ScopeFilter{}, domainerrors.ErrNotAuthenticated
	}

	rule, ok := rules[action][id.Role]
	if !ok || rule == ruleDeny {
		return ScopeFilter{}, domainerrors.ErrRoleNotPermitted.WithDetails(
			"role " + id.Role.String() + " may not perform " + string(action))
	}

	switch rule {
	case ruleSelf:
		userID := id.UserID
		if target.CustomerID != nil && *target.CustomerID != userID {
			return ScopeFilter{}, domainerrors.ErrRoleNotPermitted.WithDetails(
				"customers may only act on their own resources")
		}

		return ScopeFilter{CustomerID: &userID}, nil

	case ruleOwnBranch:
		if id.BranchID == nil {
			return ScopeFilter{}, domainerrors.ErrNoBranchAssigned
		}
		if target.BranchID != nil && *target.BranchID != *id.BranchID {
			return ScopeFilter{}, domainerrors.ErrBranchMismatch
		}
		branchID := *id.BranchID

		return ScopeFilter{BranchID: &branchID}, nil

	case ruleAnyBranch:
		// Unrestricted; a client-supplied branch acts as a narrowing filter only.
		return ScopeFilter{BranchID: target.BranchID}, nil

	default:
		return ScopeFilter{}, domainerrors.ErrRoleNotPermitted
	}
}

// TransitionsForRole returns the order statuses the role may request,
// or nil when the role may not drive the order lifecycle at all.
func TransitionsForRole(role entity.Role) []entity.OrderStatus {
	allowed := roleTransitions[role]
	out := make([]entity.OrderStatus, len(allowed))
	copy(out, allowed)

	return out
}

// RoleMayRequest reports whether the role's permitted transition set
// contains the requested status.
func RoleMayRequest(role entity.Role, status entity.OrderStatus) bool {
	for _, allowed := range roleTransitions[role] {
		if allowed == status {
			return true
		}
	}

	return false
}
