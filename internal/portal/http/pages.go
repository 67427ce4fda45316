package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/render"
	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

// PagesHandler serves the public HTML surface: the lookup landing page and
// the printable certificate.
type PagesHandler struct {
	LookupService     *service.LookupService
	CredentialService *service.CredentialService
	PublicBaseURL     string
}

// HandleCertificate renders the printable certificate for a credential ID.
// The page is public: holding the link (printed on the certificate itself or
// stored remotely as public_credential_url) is the access control.
func (h *PagesHandler) HandleCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cred, err := h.CredentialService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("certificate page fetch failed", "err", err)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_ = render.NotFound(w)
		return
	}

	opts := render.CertificateOptions{
		GeneratedAt:   time.Now(),
		PublicBaseURL: h.PublicBaseURL,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Certificate(w, cred, opts); err != nil {
		log.Error("certificate render failed", "err", err)
	}
}

// HandleHome serves the landing page. With a credentialId query parameter it
// runs the verification flow (the form posts back here via GET, and printed
// certificates link here as "{base}/?credentialId={id}").
func (h *PagesHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	credentialID := q.Get("credentialId")
	lastName := q.Get("lastName")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// Bare landing page.
	if credentialID == "" && lastName == "" {
		_ = render.LookupPage(w, render.LookupPageData{})
		return
	}

	// A certificate link carries only the ID; show the certificate itself.
	if lastName == "" {
		h.renderByID(w, r, credentialID)
		return
	}

	cred, err := h.LookupService.Search(ctx, credentialID, lastName)
	if err != nil {
		data := render.LookupPageData{CredentialID: credentialID, LastName: lastName}
		switch {
		case errors.Is(err, service.ErrMissingInput):
			data.Error = msgMissingInput
		case errors.Is(err, service.ErrCredentialNotFound):
			data.Error = msgNotFound
		case errors.Is(err, service.ErrNameMismatch):
			data.Error = msgNameMismatch
		default:
			log.Error("lookup page verification failed", "err", err)
			data.Error = "Something went wrong. Please try again."
		}
		_ = render.LookupPage(w, data)
		return
	}

	opts := render.CertificateOptions{
		GeneratedAt:   time.Now(),
		PublicBaseURL: h.PublicBaseURL,
	}
	if err := render.Certificate(w, cred, opts); err != nil {
		log.Error("certificate render failed", "err", err)
	}
}

func (h *PagesHandler) renderByID(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cred, err := h.CredentialService.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("certificate page fetch failed", "err", err)
		}
		w.WriteHeader(http.StatusNotFound)
		_ = render.NotFound(w)
		return
	}

	opts := render.CertificateOptions{
		GeneratedAt:   time.Now(),
		PublicBaseURL: h.PublicBaseURL,
	}
	if err := render.Certificate(w, cred, opts); err != nil {
		log.Error("certificate render failed", "err", err)
	}
}
