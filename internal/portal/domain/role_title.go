package domain

import "time"

// RoleTitle is an entry in the role/position titles picklist (e.g.
// "Peer Reviewer"). Distinct from the access-control roles on User.
type RoleTitle struct {
	ID        string
	Title     string
	CreatedAt time.Time
}
