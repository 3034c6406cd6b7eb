package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_AtLeast_Reflexivo(t *testing.T) {
	for _, r := range []Role{RoleCustomer, RoleStaff, RoleAdmin, RoleSuperAdmin} {
		assert.True(t, r.AtLeast(r), "hasRole(%s, %s) deve ser true", r, r)
	}
}

func TestRole_AtLeast_Hierarquia(t *testing.T) {
	// SUPER_ADMIN atinge qualquer mínimo
	for _, r := range []Role{RoleCustomer, RoleStaff, RoleAdmin, RoleSuperAdmin} {
		assert.True(t, RoleSuperAdmin.AtLeast(r))
	}
	// CUSTOMER nunca atinge ADMIN
	assert.False(t, RoleCustomer.AtLeast(RoleAdmin))
	assert.False(t, RoleCustomer.AtLeast(RoleStaff))
	assert.True(t, RoleAdmin.AtLeast(RoleStaff))
	assert.False(t, RoleStaff.AtLeast(RoleAdmin))
}

func TestRole_AtLeast_PapelDesconhecidoNuncaPrivilegiado(t *testing.T) {
	desconhecido := Role("GERENTE")
	assert.False(t, desconhecido.AtLeast(RoleCustomer))
	assert.False(t, RoleSuperAdmin.AtLeast(desconhecido))
	assert.False(t, desconhecido.IsValid())
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("STAFF")
	assert.True(t, ok)
	assert.Equal(t, RoleStaff, r)

	_, ok = ParseRole("staff") // case-sensitive: contrato de wire em maiúsculas
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRole_Predicados(t *testing.T) {
	assert.True(t, RoleStaff.CanManageProducts())
	assert.False(t, RoleCustomer.CanManageProducts())

	assert.True(t, RoleAdmin.CanViewReports())
	assert.False(t, RoleStaff.CanViewReports())

	assert.True(t, RoleSuperAdmin.CanChangeUserRoles())
	assert.False(t, RoleAdmin.CanChangeUserRoles())

	assert.True(t, RoleAdmin.CanDeleteProducts())
	assert.False(t, RoleStaff.CanDeleteProducts())
}
