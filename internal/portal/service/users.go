package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/cryptox"
	"github.com/SPMA4P97/jess-credentials/pkg/idx"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

var (
	ErrInvalidUserInput = errors.New("invalid_user_input")
	ErrSelfDelete       = errors.New("cannot_delete_own_account")
)

const minPasswordLength = 8

// UserService manages portal accounts.
type UserService struct {
	Store store.Store
}

type CreateUserInput struct {
	Email    string
	Username string
	Password string
	Role     string
}

// UpdateUserInput carries the fields to change. Empty fields keep their
// current value.
type UpdateUserInput struct {
	Email    string
	Username string
	Password string
	Role     string
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	if !validEmail(in.Email) || in.Username == "" ||
		len(in.Password) < minPasswordLength || !domain.ValidRole(in.Role) {
		return domain.User{}, ErrInvalidUserInput
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	l.Info("user created",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role),
	)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (domain.User, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if email := strings.TrimSpace(in.Email); email != "" {
		if !validEmail(email) {
			return domain.User{}, ErrInvalidUserInput
		}
		user.Email = email
	}
	if username := strings.TrimSpace(in.Username); username != "" {
		user.Username = username
	}
	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return domain.User{}, ErrInvalidUserInput
		}
		user.Role = in.Role
	}
	if in.Password != "" {
		if len(in.Password) < minPasswordLength {
			return domain.User{}, ErrInvalidUserInput
		}
		hash, err := cryptox.HashPassword(in.Password)
		if err != nil {
			return domain.User{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.Store.Users().Update(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Delete removes a user. The acting user cannot delete their own account;
// that guarantees the portal always keeps at least one working login.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return ErrSelfDelete
	}

	l := slogx.FromContext(ctx)
	if err := s.Store.Users().Delete(ctx, targetID); err != nil {
		return err
	}

	l.Info("user deleted",
		slog.String("user_id", targetID),
		slog.String("deleted_by", actorID),
	)
	return nil
}

// EnsureAdmin seeds an admin account when the user table is empty, so a
// fresh deployment has a working login.
func (s *UserService) EnsureAdmin(ctx context.Context, email, username, password string) error {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	_, err = s.Create(ctx, CreateUserInput{
		Email:    email,
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Another replica seeded first.
		return nil
	}
	return err
}

// validEmail is deliberately loose: one "@" with something on both sides.
// Real validation happens when mail actually gets sent.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
