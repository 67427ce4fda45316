package http

import (
	"errors"
	"net/http"

	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/pkg/httpx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

// User-facing verification messages. These exact strings surface on the
// public lookup form, so changing them is a product decision, not a cleanup.
const (
	msgMissingInput = "Please enter both credential ID and last name."
	msgNotFound     = "Credential not found. Please check your ID and last name."
	msgNameMismatch = "Credential ID found but last name doesn't match."
)

type VerifyHandler struct {
	LookupService *service.LookupService
}

// ServeHTTP verifies a credential by ID and last name.
//
//	@Summary		Verify a credential
//	@Description	Public verification: requires the credential ID and a fragment of the holder's name (typically the last name).
//	@Tags			Verification
//	@Produce		json
//	@Param			credential_id	query		string					true	"Credential ID"
//	@Param			last_name		query		string					true	"Holder's last name"
//	@Success		200				{object}	portalapi.Credential	"The verified credential"
//	@Failure		400				{object}	portalapi.ErrorResponse	"Missing credential ID or last name"
//	@Failure		404				{object}	portalapi.ErrorResponse	"Unknown ID, or name doesn't match"
//	@Router			/v1/verify [get].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cred, err := h.LookupService.Search(ctx,
		r.URL.Query().Get("credential_id"),
		r.URL.Query().Get("last_name"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingInput):
			portalapi.NewAPIError(http.StatusBadRequest,
				portalapi.ErrorCodeInvalidRequest, msgMissingInput).WriteError(w)
		case errors.Is(err, service.ErrCredentialNotFound):
			portalapi.NewAPIError(http.StatusNotFound,
				portalapi.ErrorCodeNotFound, msgNotFound).WriteError(w)
		case errors.Is(err, service.ErrNameMismatch):
			portalapi.NewAPIError(http.StatusNotFound,
				portalapi.ErrorCodeNameMismatch, msgNameMismatch).WriteError(w)
		default:
			log.Error("verification failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPICredential(cred))
}
