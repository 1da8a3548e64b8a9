package user

type Role string

const (
	RoleGuest      Role = "guest"
	RoleClient     Role = "client"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

var roleLevels = map[Role]int{
	RoleGuest:      1,
	RoleClient:     2,
	RoleManager:    3,
	RoleAdmin:      4,
	RoleSuperAdmin: 5,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	level, ok := roleLevels[r]
	minLevel, minOK := roleLevels[min]
	return ok && minOK && level >= minLevel
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
