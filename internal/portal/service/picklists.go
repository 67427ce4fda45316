package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/idx"
)

var (
	ErrEmptyName = errors.New("empty_name")
)

// OrganizationService manages the issuing-organizations picklist.
type OrganizationService struct {
	Organizations store.Organizations
}

func (s *OrganizationService) List(ctx context.Context) ([]domain.Organization, error) {
	return s.Organizations.ListAll(ctx)
}

func (s *OrganizationService) Create(ctx context.Context, name string) (domain.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Organization{}, ErrEmptyName
	}

	org := domain.Organization{
		ID:        idx.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Organizations.Create(ctx, org); err != nil {
		return domain.Organization{}, err
	}
	return org, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	return s.Organizations.Delete(ctx, id)
}

// RoleTitleService manages the role/position titles picklist.
type RoleTitleService struct {
	RoleTitles store.RoleTitles
}

func (s *RoleTitleService) List(ctx context.Context) ([]domain.RoleTitle, error) {
	return s.RoleTitles.ListAll(ctx)
}

func (s *RoleTitleService) Create(ctx context.Context, title string) (domain.RoleTitle, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.RoleTitle{}, ErrEmptyName
	}

	rt := domain.RoleTitle{
		ID:        idx.New().String(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.RoleTitles.Create(ctx, rt); err != nil {
		return domain.RoleTitle{}, err
	}
	return rt, nil
}

func (s *RoleTitleService) Delete(ctx context.Context, id string) error {
	return s.RoleTitles.Delete(ctx, id)
}
