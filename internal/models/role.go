package models

// Role is a player's secret character archetype
type Role string

const (
	RoleMilitar     Role = "Militar"
	RoleReligious   Role = "Religious"
	RoleCoward      Role = "Coward"
	RolePoliceman   Role = "Policeman"
	RoleHunter      Role = "Hunter"
	RoleGhosthunter Role = "Ghosthunter"
)

// Roles returns a fresh copy of the role set, safe to shuffle
func Roles() []Role {
	return []Role{
		RoleMilitar,
		RoleReligious,
		RoleCoward,
		RolePoliceman,
		RoleHunter,
		RoleGhosthunter,
	}
}

// StartingRun returns the initial lives counter for a role.
// The Coward starts with an extra run; everyone else gets one.
func (r Role) StartingRun() int {
	if r == RoleCoward {
		return 2
	}
	return 1
}

// Valid reports whether r is one of the defined roles
func (r Role) Valid() bool {
	switch r {
	case RoleMilitar, RoleReligious, RoleCoward, RolePoliceman, RoleHunter, RoleGhosthunter:
		return true
	}
	return false
}
