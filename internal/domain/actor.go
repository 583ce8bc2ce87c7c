package domain

// Role represents the role of the actor making a request
type Role string

const (
	RoleTrainer      Role = "trainer"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleMember       Role = "member"
)

// IsValid returns true if the role is one of the four known roles
func (r Role) IsValid() bool {
	return r == RoleTrainer || r == RoleManager || r == RoleReceptionist || r == RoleMember
}

// IsStaff returns true for roles that see the full appointment collection
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleReceptionist
}

// Actor is the role-bearing identity making a request
type Actor struct {
	ID   string
	Role Role
}
