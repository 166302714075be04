package entities

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleTeam  Role = "team"
)

func (r Role) IsValid() bool { return r == RoleAdmin || r == RoleTeam }

// IsStaff reports whether the role may use the back-office at all.
func (r Role) IsStaff() bool { return r.IsValid() }

// Session is the authenticated staff session carried by the admin-auth cookie.
type Session struct {
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
