package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/cryptox"
	"github.com/SPMA4P97/jess-credentials/pkg/jwtx"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// AuthService issues session tokens for portal users.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	AccessToken string
	ExpiresIn   int
	User        domain.User
}

// Login resolves the identifier as either an email address or a username,
// verifies the password, and mints a signed session token. Failures collapse
// into ErrInvalidCredentials so responses never reveal which part was wrong.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	if identifier == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetByEmailOrUsername(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash verification anyway so a miss costs the same as
			// a wrong password.
			_ = cryptox.VerifyPassword(password, dummyHash())
			l.Info("login failed: unknown identifier")
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed: bad password", slog.String("user_id", user.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, user.Role, s.Issuer, ttl, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return LoginResult{}, err
	}

	l.Info("login succeeded",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role),
	)

	return LoginResult{
		AccessToken: token,
		ExpiresIn:   int(ttl.Seconds()),
		User:        user,
	}, nil
}

// dummyHash lazily produces a valid argon2id encoding of a throwaway
// password, used to equalise timing between unknown-identifier and
// wrong-password failures. Lazy so the pepper path is configured first.
var dummyHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword("timing-equalisation-placeholder")
	if err != nil {
		return ""
	}
	return h
})
