package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/httpx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

type OrganizationsHandler struct {
	OrganizationService *service.OrganizationService
}

// HandleList returns the issuing-organizations picklist.
//
//	@Summary		List organizations
//	@Tags			Picklists
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		portalapi.Organization	"Organizations, sorted by name"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/organizations [get].
func (h *OrganizationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	orgs, err := h.OrganizationService.List(ctx)
	if err != nil {
		log.Error("organization list failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.Organization, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, portalapi.Organization{ID: o.ID, Name: o.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds an organization.
//
//	@Summary		Add an organization
//	@Tags			Picklists
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.OrganizationCreateRequest	true	"Organization name"
//	@Success		201		{object}	portalapi.Organization				"Created organization"
//	@Failure		400		{object}	portalapi.ErrorResponse				"Empty name"
//	@Failure		401		{object}	portalapi.ErrorResponse				"Invalid or missing access token"
//	@Failure		409		{object}	portalapi.ErrorResponse				"Name already exists"
//	@Router			/v1/organizations [post].
func (h *OrganizationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.OrganizationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	org, err := h.OrganizationService.Create(ctx, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			portalapi.NewAPIError(http.StatusBadRequest, portalapi.ErrorCodeInvalidRequest,
				"organization name is required").WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			portalapi.NewAPIError(http.StatusConflict, portalapi.ErrorCodeAlreadyExists,
				"organization already exists").WriteError(w)
		default:
			log.Error("organization creation failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalapi.Organization{ID: org.ID, Name: org.Name})
}

// HandleDelete removes an organization.
//
//	@Summary		Delete an organization
//	@Tags			Picklists
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Organization ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	portalapi.ErrorResponse	"No organization with that ID"
//	@Router			/v1/organizations/{id} [delete].
func (h *OrganizationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.OrganizationService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("organization delete failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type RoleTitlesHandler struct {
	RoleTitleService *service.RoleTitleService
}

// HandleList returns the role-titles picklist.
//
//	@Summary		List role titles
//	@Tags			Picklists
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		portalapi.RoleTitle		"Role titles, sorted"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/roles [get].
func (h *RoleTitlesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	titles, err := h.RoleTitleService.List(ctx)
	if err != nil {
		log.Error("role title list failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.RoleTitle, 0, len(titles))
	for _, rt := range titles {
		out = append(out, portalapi.RoleTitle{ID: rt.ID, Title: rt.Title})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a role title.
//
//	@Summary		Add a role title
//	@Tags			Picklists
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.RoleTitleCreateRequest	true	"Role title"
//	@Success		201		{object}	portalapi.RoleTitle					"Created role title"
//	@Failure		400		{object}	portalapi.ErrorResponse				"Empty title"
//	@Failure		401		{object}	portalapi.ErrorResponse				"Invalid or missing access token"
//	@Failure		409		{object}	portalapi.ErrorResponse				"Title already exists"
//	@Router			/v1/roles [post].
func (h *RoleTitlesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.RoleTitleCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	rt, err := h.RoleTitleService.Create(ctx, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			portalapi.NewAPIError(http.StatusBadRequest, portalapi.ErrorCodeInvalidRequest,
				"role title is required").WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			portalapi.NewAPIError(http.StatusConflict, portalapi.ErrorCodeAlreadyExists,
				"role title already exists").WriteError(w)
		default:
			log.Error("role title creation failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalapi.RoleTitle{ID: rt.ID, Title: rt.Title})
}

// HandleDelete removes a role title.
//
//	@Summary		Delete a role title
//	@Tags			Picklists
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Role title ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	portalapi.ErrorResponse	"No role title with that ID"
//	@Router			/v1/roles/{id} [delete].
func (h *RoleTitlesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.RoleTitleService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("role title delete failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
