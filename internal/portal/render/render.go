// Package render produces the public-facing HTML: the printable certificate
// and the verification not-found page. Templates are embedded so the binary
// stays self-contained.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// certificateData is the view model for certificate.html.
type certificateData struct {
	Organization string
	Name         string
	Role         string
	Issue        string
	Volumes      string // pre-joined, empty hides the section
	IssueDate    string
	ExpiryDate   string // empty hides the box
	CredentialID string
	VerifyURL    string
	GeneratedOn  string
}

// CertificateOptions tweak how the certificate page renders.
type CertificateOptions struct {
	// GeneratedAt stamps the footer; zero means now.
	GeneratedAt time.Time

	// PublicBaseURL, when set, adds the "Verify at" line pointing back at
	// the portal's lookup form.
	PublicBaseURL string
}

// Certificate writes the printable certificate page. Optional fields omit
// their sections; required fields render as-is even when empty so a partial
// record still produces a page.
func Certificate(w io.Writer, cred domain.Credential, opts CertificateOptions) error {
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	data := certificateData{
		Organization: cred.Organization,
		Name:         cred.Name,
		Role:         cred.Role,
		Issue:        cred.Issue,
		IssueDate:    formatDate(cred.Date),
		ExpiryDate:   formatDate(cred.Expiry),
		CredentialID: cred.ID.String(),
		GeneratedOn:  generatedAt.Format("January 02, 2006"),
	}
	// The issuer decides at creation whether volumes appear on the
	// certificate; viewers get no say.
	if !cred.HideVolumes {
		data.Volumes = strings.Join(cred.Volumes, ", ")
	}
	if opts.PublicBaseURL != "" {
		data.VerifyURL = fmt.Sprintf("%s/?credentialId=%s",
			strings.TrimSuffix(opts.PublicBaseURL, "/"), cred.ID)
	}

	return templates.ExecuteTemplate(w, "certificate.html", data)
}

// NotFound writes the verification failure page shown for unknown IDs.
func NotFound(w io.Writer) error {
	return templates.ExecuteTemplate(w, "not_found.html", nil)
}

// LookupPageData is the view model for the public landing page.
type LookupPageData struct {
	// Error is the user-facing failure message from a previous attempt.
	Error string

	// CredentialID and LastName re-fill the form after a failed attempt.
	CredentialID string
	LastName     string
}

// LookupPage writes the public landing page with the verification form.
func LookupPage(w io.Writer, data LookupPageData) error {
	return templates.ExecuteTemplate(w, "index.html", data)
}

// formatDate renders a stored YYYY-MM-DD value long-form ("January 02,
// 2006"). Anything unparseable falls back to the raw string so imported
// records with odd dates still display.
func formatDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}
