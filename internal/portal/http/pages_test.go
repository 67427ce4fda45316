package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/stretchr/testify/require"
)

func (p *testPortal) getPage(t *testing.T, path string) (int, string) {
	t.Helper()

	resp, err := p.server.Client().Get(p.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	return resp.StatusCode, string(body)
}

func issueTestCredential(t *testing.T, p *testPortal) domain.Credential {
	t.Helper()

	cred, err := p.router.CredentialService.Generate(context.Background(), service.GenerateInput{
		Name:         "Jane Doe",
		Organization: "Journal of Emerging Sport Studies",
		Role:         "Peer Reviewer",
		Date:         "2026-02-01",
		Volumes:      "11, 12",
	})
	require.NoError(t, err)
	return cred
}

func TestHomePage(t *testing.T) {
	p := newTestPortal(t)
	cred := issueTestCredential(t, p)

	t.Run("bare landing page shows the form", func(t *testing.T) {
		status, body := p.getPage(t, "/")
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, body, `name="credentialId"`)
		require.Contains(t, body, `name="lastName"`)
	})

	t.Run("id-only link renders the certificate", func(t *testing.T) {
		status, body := p.getPage(t, "/?credentialId="+cred.ID.String())
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, body, "Digital Credential Certificate")
		require.Contains(t, body, "Jane Doe")
	})

	t.Run("id and last name verify and render", func(t *testing.T) {
		status, body := p.getPage(t,
			fmt.Sprintf("/?credentialId=%s&lastName=%s", cred.ID, url.QueryEscape("Doe")))
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, body, "This is to certify that")
		require.Contains(t, body, "Contributing to: Volume 11, Volume 12")
	})

	t.Run("name mismatch re-shows the form with the message", func(t *testing.T) {
		status, body := p.getPage(t,
			fmt.Sprintf("/?credentialId=%s&lastName=Smith", cred.ID))
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, body, "Credential ID found but last name doesn&#39;t match.")
		require.Contains(t, body, cred.ID.String())
		require.Contains(t, body, "Smith")
	})

	t.Run("unknown id shows the not-found message", func(t *testing.T) {
		status, body := p.getPage(t, "/?credentialId=00000000&lastName=Doe")
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, body, "Credential not found. Please check your ID and last name.")
	})

	t.Run("unknown id without name gets the 404 page", func(t *testing.T) {
		status, body := p.getPage(t, "/?credentialId=00000000")
		require.Equal(t, http.StatusNotFound, status)
		require.Contains(t, body, "Credential Not Found")
	})
}

func TestCertificatePage(t *testing.T) {
	p := newTestPortal(t)
	cred := issueTestCredential(t, p)

	t.Run("renders the printable certificate", func(t *testing.T) {
		status, body := p.getPage(t, "/credential/"+cred.ID.String())
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, body, "Digital Credential Certificate")
		require.Contains(t, body, "February 01, 2026")
		require.Contains(t, body, "This digital credential is issued by Journal of Emerging Sport Studies")
	})

	t.Run("issuer-hidden volumes stay off every view", func(t *testing.T) {
		hidden, err := p.router.CredentialService.Generate(context.Background(), service.GenerateInput{
			Name:         "John Roe",
			Organization: "Journal of Emerging Sport Studies",
			Role:         "Editor",
			Volumes:      "7, 8",
			HideVolumes:  true,
		})
		require.NoError(t, err)

		status, body := p.getPage(t, "/credential/"+hidden.ID.String())
		require.Equal(t, http.StatusOK, status)
		require.NotContains(t, body, "Contributing to:")
		require.NotContains(t, body, "Volume 7")

		status, body = p.getPage(t,
			fmt.Sprintf("/?credentialId=%s&lastName=Roe", hidden.ID))
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, body, "This is to certify that")
		require.NotContains(t, body, "Contributing to:")
	})

	t.Run("unknown id gets the 404 page", func(t *testing.T) {
		status, body := p.getPage(t, "/credential/00000000")
		require.Equal(t, http.StatusNotFound, status)
		require.Contains(t, body, "Credential Not Found")
	})
}
