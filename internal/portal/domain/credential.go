package domain

import (
	"time"

	"github.com/SPMA4P97/jess-credentials/pkg/credid"
)

// Credential is an issued digital credential. Date and Expiry are stored as
// the YYYY-MM-DD strings the issuer entered; rendering is where they get
// formatted for display.
type Credential struct {
	ID           credid.ID
	Name         string
	Organization string
	Role         string
	Date         string
	Issue        string   // optional free-form context
	Expiry       string   // optional, empty means no expiration
	Volumes      []string // normalised labels, e.g. "Volume 12"
	HideVolumes  bool     // issuer chose to keep the volumes off the certificate
	CreatedAt    time.Time
}
