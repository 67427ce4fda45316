package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/httpx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

type CredentialsHandler struct {
	CredentialService *service.CredentialService
}

func toAPICredential(c domain.Credential) portalapi.Credential {
	return portalapi.Credential{
		ID:           c.ID.String(),
		Name:         c.Name,
		Organization: c.Organization,
		Role:         c.Role,
		Date:         c.Date,
		Issue:        c.Issue,
		Expiry:       c.Expiry,
		Volumes:      c.Volumes,
		HideVolumes:  c.HideVolumes,
	}
}

// HandleCreate issues a new credential.
//
//	@Summary		Issue a credential
//	@Description	Generates a short credential ID, normalises the volumes entry, and persists the record.
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.CredentialCreateRequest	true	"Credential details"
//	@Success		201		{object}	portalapi.Credential				"Issued credential"
//	@Failure		400		{object}	portalapi.ErrorResponse				"Missing required fields"
//	@Failure		401		{object}	portalapi.ErrorResponse				"Invalid or missing access token"
//	@Failure		409		{object}	portalapi.ErrorResponse				"Credential ID collision"
//	@Router			/v1/credentials [post].
func (h *CredentialsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.CredentialCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	cred, err := h.CredentialService.Generate(ctx, service.GenerateInput{
		Name:         req.Name,
		Organization: req.Organization,
		Role:         req.Role,
		Date:         req.Date,
		Issue:        req.Issue,
		Expiry:       req.Expiry,
		Volumes:      req.Volumes,
		HideVolumes:  req.HideVolumes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			portalapi.NewAPIError(http.StatusBadRequest, portalapi.ErrorCodeInvalidRequest,
				"name, organization and role are required").WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			portalapi.NewAPIError(http.StatusConflict, portalapi.ErrorCodeAlreadyExists,
				"credential ID collision, please retry").WriteError(w)
		default:
			log.Error("credential creation failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAPICredential(cred))
}

// HandleList returns all issued credentials.
//
//	@Summary		List credentials
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		portalapi.Credential	"All issued credentials, newest first"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/credentials [get].
func (h *CredentialsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	creds, err := h.CredentialService.List(ctx)
	if err != nil {
		log.Error("credential list failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.Credential, 0, len(creds))
	for _, c := range creds {
		out = append(out, toAPICredential(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet fetches one credential by ID.
//
//	@Summary		Get a credential
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Credential ID"
//	@Success		200	{object}	portalapi.Credential	"The credential"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	portalapi.ErrorResponse	"No credential with that ID"
//	@Router			/v1/credentials/{id} [get].
func (h *CredentialsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cred, err := h.CredentialService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("credential fetch failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPICredential(cred))
}

// HandleDelete removes a credential.
//
//	@Summary		Delete a credential
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Credential ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	portalapi.ErrorResponse	"No credential with that ID"
//	@Router			/v1/credentials/{id} [delete].
func (h *CredentialsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.CredentialService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("credential delete failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
