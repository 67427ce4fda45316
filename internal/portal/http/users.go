package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/httpx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// toAPIUser strips the password hash; it must never reach the wire.
func toAPIUser(u domain.User) portalapi.User {
	return portalapi.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// HandleList returns all portal users.
//
//	@Summary		List users
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		portalapi.User			"All portal users"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	portalapi.ErrorResponse	"Admin role required"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.List(ctx)
	if err != nil {
		log.Error("user list failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.User, 0, len(users))
	for _, u := range users {
		out = append(out, toAPIUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a portal user.
//
//	@Summary		Create a user
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.UserCreateRequest	true	"New user"
//	@Success		201		{object}	portalapi.User				"Created user"
//	@Failure		400		{object}	portalapi.ErrorResponse		"Invalid email, short password, or unknown role"
//	@Failure		401		{object}	portalapi.ErrorResponse		"Invalid or missing access token"
//	@Failure		403		{object}	portalapi.ErrorResponse		"Admin role required"
//	@Failure		409		{object}	portalapi.ErrorResponse		"Email or username already taken"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Create(ctx, service.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserInput):
			portalapi.NewAPIError(http.StatusBadRequest, portalapi.ErrorCodeInvalidRequest,
				"a valid email, username, password (8+ chars) and role are required").WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			portalapi.NewAPIError(http.StatusConflict, portalapi.ErrorCodeAlreadyExists,
				"email or username already taken").WriteError(w)
		default:
			log.Error("user creation failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAPIUser(user))
}

// HandleUpdate modifies a portal user.
//
//	@Summary		Update a user
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		portalapi.UserUpdateRequest	true	"Fields to change (empty fields keep their value)"
//	@Success		200		{object}	portalapi.User				"Updated user"
//	@Failure		400		{object}	portalapi.ErrorResponse		"Invalid field value"
//	@Failure		401		{object}	portalapi.ErrorResponse		"Invalid or missing access token"
//	@Failure		403		{object}	portalapi.ErrorResponse		"Admin role required"
//	@Failure		404		{object}	portalapi.ErrorResponse		"No user with that ID"
//	@Failure		409		{object}	portalapi.ErrorResponse		"Email or username already taken"
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Update(ctx, r.PathValue("id"), service.UpdateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserInput):
			portalapi.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, store.ErrNotFound):
			portalapi.ErrNotFound.WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			portalapi.NewAPIError(http.StatusConflict, portalapi.ErrorCodeAlreadyExists,
				"email or username already taken").WriteError(w)
		default:
			log.Error("user update failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIUser(user))
}

// HandleDelete removes a portal user.
//
//	@Summary		Delete a user
//	@Description	Removes a user. Deleting your own account is rejected so the portal always keeps a working login.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	portalapi.ErrorResponse	"Attempted self-deletion"
//	@Failure		401	{object}	portalapi.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	portalapi.ErrorResponse	"Admin role required"
//	@Failure		404	{object}	portalapi.ErrorResponse	"No user with that ID"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		portalapi.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.UserService.Delete(ctx, actorID, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDelete):
			portalapi.NewAPIError(http.StatusBadRequest, portalapi.ErrorCodeInvalidRequest,
				"you cannot delete your own account").WriteError(w)
		case errors.Is(err, store.ErrNotFound):
			portalapi.ErrNotFound.WriteError(w)
		default:
			log.Error("user delete failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
