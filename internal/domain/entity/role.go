package entity

// Role papel de um utilizador. O conjunto é fixo e totalmente ordenado por
// privilégio crescente: CUSTOMER < STAFF < ADMIN < SUPER_ADMIN.
type Role string

// Papéis válidos para User.
const (
	RoleCustomer   Role = "CUSTOMER"
	RoleStaff      Role = "STAFF"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// roleHierarchy ordem canónica dos papéis; o nível de privilégio de um papel
// é o seu índice nesta sequência.
var roleHierarchy = []Role{RoleCustomer, RoleStaff, RoleAdmin, RoleSuperAdmin}

// level devolve o índice do papel na hierarquia, ou -1 se desconhecido.
func (r Role) level() int {
	for i, role := range roleHierarchy {
		if role == r {
			return i
		}
	}
	return -1
}

// IsValid verifica se o papel pertence ao conjunto fixo.
func (r Role) IsValid() bool {
	return r.level() >= 0
}

// AtLeast responde "o papel r atinge o mínimo exigido min?".
// Papéis desconhecidos nunca são privilegiados: qualquer comparação que
// envolva um papel fora da hierarquia devolve false.
func (r Role) AtLeast(min Role) bool {
	rl, ml := r.level(), min.level()
	if rl < 0 || ml < 0 {
		return false
	}
	return rl >= ml
}

// ParseRole valida um literal vindo da camada HTTP ou da DB.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

// Predicados de permissão: cada acção administrativa exige um papel mínimo
// fixo comparado via AtLeast. Os handlers usam estes nomes em vez de comparar
// papéis directamente.

func (r Role) CanManageProducts() bool   { return r.AtLeast(RoleStaff) }
func (r Role) CanManageCategories() bool { return r.AtLeast(RoleStaff) }
func (r Role) CanManageOrders() bool     { return r.AtLeast(RoleStaff) }
func (r Role) CanCancelOrders() bool     { return r.AtLeast(RoleStaff) }
func (r Role) CanViewDashboard() bool    { return r.AtLeast(RoleStaff) }
func (r Role) CanViewReports() bool      { return r.AtLeast(RoleAdmin) }
func (r Role) CanExportReports() bool    { return r.AtLeast(RoleAdmin) }
func (r Role) CanManageUsers() bool      { return r.AtLeast(RoleAdmin) }
func (r Role) CanDeleteProducts() bool   { return r.AtLeast(RoleAdmin) }
func (r Role) CanRefundOrders() bool     { return r.AtLeast(RoleAdmin) }
func (r Role) CanManageSettings() bool   { return r.AtLeast(RoleAdmin) }
func (r Role) CanChangeUserRoles() bool  { return r.AtLeast(RoleSuperAdmin) }
