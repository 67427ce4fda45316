package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/credid"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

var (
	// ErrMissingInput is returned when the ID or name fragment is empty.
	ErrMissingInput = errors.New("missing_lookup_input")

	// ErrCredentialNotFound is returned when no credential has the given ID.
	ErrCredentialNotFound = errors.New("credential_not_found")

	// ErrNameMismatch is returned when the ID exists but the supplied name
	// fragment does not appear in the holder's name.
	ErrNameMismatch = errors.New("credential_name_mismatch")
)

// LookupService handles public verification. It deliberately carries no
// authentication: anyone holding a certificate can check it.
type LookupService struct {
	Credentials store.Credentials
}

// Search verifies a credential by exact ID plus a case-insensitive fragment
// of the holder's name (typically the last name). The two-factor check stops
// casual ID guessing from exposing holder details.
func (s *LookupService) Search(ctx context.Context, credentialID, nameFragment string) (domain.Credential, error) {
	l := slogx.FromContext(ctx)

	credentialID = strings.TrimSpace(credentialID)
	nameFragment = strings.TrimSpace(nameFragment)
	if credentialID == "" || nameFragment == "" {
		return domain.Credential{}, ErrMissingInput
	}

	// Canonicalise the ID the same way generation does, so lowercase
	// transcriptions still match. Anything unparseable can't exist.
	if id, err := credid.Parse(credentialID); err == nil {
		credentialID = id.String()
	}

	cred, err := s.Credentials.GetByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("verification miss", slog.String("credential_id", credentialID))
			return domain.Credential{}, ErrCredentialNotFound
		}
		return domain.Credential{}, err
	}

	if !strings.Contains(strings.ToLower(cred.Name), strings.ToLower(nameFragment)) {
		l.Info("verification name mismatch", slog.String("credential_id", credentialID))
		return domain.Credential{}, ErrNameMismatch
	}

	return cred, nil
}
