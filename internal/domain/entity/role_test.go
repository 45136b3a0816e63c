package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	for _, role := range []Role{RoleCustomer, RoleChef, RoleCashier, RoleBranchManager, RoleGeneralManager, RoleAdmin} {
		assert.True(t, role.IsValid(), "role %s", role)
	}

	assert.False(t, Role("waiter").IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("ADMIN").IsValid())
}

func TestRole_Classification(t *testing.T) {
	assert.False(t, RoleCustomer.IsStaff())
	assert.False(t, Role("waiter").IsStaff())

	for _, role := range []Role{RoleChef, RoleCashier, RoleBranchManager, RoleGeneralManager, RoleAdmin} {
		assert.True(t, role.IsStaff(), "role %s", role)
	}

	for _, role := range []Role{RoleChef, RoleCashier, RoleBranchManager} {
		assert.True(t, role.IsBranchScoped(), "role %s", role)
		assert.False(t, role.IsManagement(), "role %s", role)
	}

	for _, role := range []Role{RoleGeneralManager, RoleAdmin} {
		assert.False(t, role.IsBranchScoped(), "role %s", role)
		assert.True(t, role.IsManagement(), "role %s", role)
	}

	assert.False(t, RoleCustomer.IsBranchScoped())
	assert.False(t, RoleCustomer.IsManagement())
}

func TestRoleFromString(t *testing.T) {
	role, ok := RoleFromString("cashier")
	assert.True(t, ok)
	assert.Equal(t, RoleCashier, role)

	_, ok = RoleFromString("Cashier")
	assert.False(t, ok)
}
