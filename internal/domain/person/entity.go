package person

import (
	"strings"
	"time"
)

// Person is owned by the HR collaborator; this service only reads it.
type Person struct {
	ID             string
	FullName       string
	Role           Role
	Active         bool
	AssignedSiteID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Role string

const (
	RoleStaff      Role = "staff"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RolePromoter   Role = "promoter"
	RoleUnknown    Role = "unknown"
)

// roleLabels maps raw labels from the HR system (which is not consistent
// about casing or naming) to the closed role enumeration.
var roleLabels = map[string]Role{
	"staff":       RoleStaff,
	"employee":    RoleStaff,
	"vendedor":    RoleStaff,
	"supervisor":  RoleSupervisor,
	"manager":     RoleManager,
	"encargado":   RoleManager,
	"admin":       RoleAdmin,
	"promoter":    RolePromoter,
	"promotor":    RolePromoter,
	"impulsador":  RolePromoter,
	"impulsadora": RolePromoter,
}

// ParseRole maps a raw role label to the closed enumeration. Anything
// unrecognized becomes RoleUnknown; callers decide whether unknown is
// acceptable (check-in does not accept it).
func ParseRole(raw string) Role {
	if role, ok := roleLabels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return role
	}
	return RoleUnknown
}

// CanCheckIn reports whether this role participates in site check-in.
// Promoters have a separate workflow; unknown roles fail closed.
func (r Role) CanCheckIn() bool {
	switch r {
	case RoleStaff, RoleSupervisor, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}
