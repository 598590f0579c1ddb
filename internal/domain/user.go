package domain

import "time"

// Role ids follow the reference schema: 1 = user, 2 = admin.
const (
	RoleUser  = 1
	RoleAdmin = 2
)

// User is a back-office account scoped to a location and branch.
type User struct {
	ID             string
	Username       string
	Email          string
	HashedPassword string
	RoleID         int
	Localidad      string
	Sucursal       string
	CreatedAt      time.Time
}

// Principal is the authenticated actor attached to every request by the
// auth middleware. Money operations take localidad, sucursal and mutating
// user metadata from here, never from the request body.
type Principal struct {
	UserID    string
	Username  string
	RoleID    int
	Localidad string
	Sucursal  string
}

// IsAdmin reports whether the principal may use the unscoped admin reads.
func (p Principal) IsAdmin() bool {
	return p.RoleID == RoleAdmin
}
