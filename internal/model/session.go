package model

import "fmt"

// Role is the screen gate selected at login. It is a cosmetic selector, not a
// security boundary.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleKasir Role = "kasir"
)

// Validate implements the enum contract used by the request validator.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleKasir:
		return nil
	default:
		return fmt.Errorf("unknown role: %s", r)
	}
}

// Session is the persisted login state.
type Session struct {
	IsLoggedIn bool `json:"isLoggedIn"`
	Role       Role `json:"role"`
}
