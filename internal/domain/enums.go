package domain

// Role is a customer's role in the store.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleModerator     Role = "Moderator"
	RoleEmployee      Role = "Employee"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleModerator, RoleEmployee:
		return true
	}
	return false
}

// OperationKind tells whether a balance operation adds or removes ucoins.
type OperationKind string

const (
	OperationReplenish OperationKind = "REPLENISH"
	OperationWriteOff  OperationKind = "WRITE_OFF"
)

func (k OperationKind) String() string { return string(k) }

func (k OperationKind) IsValid() bool {
	switch k {
	case OperationReplenish, OperationWriteOff:
		return true
	}
	return false
}
