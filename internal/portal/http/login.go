package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/pkg/httpx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles portal login.
//
//	@Summary		Log in to the portal
//	@Description	Authenticates with an email address or username plus password and returns a Bearer session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	portalapi.LoginResponse	"Session token"
//	@Failure		400		{object}	portalapi.ErrorResponse	"Malformed request body"
//	@Failure		401		{object}	portalapi.ErrorResponse	"Invalid email/username or password"
//	@Failure		429		{object}	portalapi.ErrorResponse	"Too many attempts"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalapi.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.AuthService.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			portalapi.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, portalapi.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
	})
}
