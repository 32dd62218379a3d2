package domain

import "time"

// Staff roles. The set is open: role is a plain string tag on the user
// record, these are just the values the guards know about.
const (
	RoleAdmin   = "admin"
	RoleFinance = "finance"
	RoleRecords = "records"
)

// User models a staff account that can authenticate against the API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Snapshot is the identity view embedded in tokens and returned by the
// verify endpoint. It is frozen at login time: role changes made after a
// token was minted are not visible until the next login.
type Snapshot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}

// Snapshot returns the identity view of the user.
func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		IsAdmin:  u.IsAdmin,
	}
}

// Satisfies reports whether the snapshot meets a role predicate. An empty
// requiredRole matches any role, so Satisfies("", true) is the generic
// "any authenticated admin" check.
func (s Snapshot) Satisfies(requiredRole string, requireAdmin bool) bool {
	if requiredRole != "" && s.Role != requiredRole {
		return false
	}
	if requireAdmin && !s.IsAdmin {
		return false
	}
	return true
}
