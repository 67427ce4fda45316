package domain

import "time"

// Organization is an entry in the issuing-organizations picklist.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
