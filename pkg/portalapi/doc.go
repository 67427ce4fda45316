// Package portalapi provides a Go client for the JESS credentials portal.
//
// Unauthenticated operations (public verification, health checks) hang off
// Client; admin operations require a Session obtained via Login:
//
//	client := portalapi.NewClient("https://credentials.example.org")
//
//	cred, err := client.Verify(ctx, "A1B2C3D4", "Doe")
//	if err != nil {
//		var apiErr *portalapi.APIError
//		if errors.As(err, &apiErr) {
//			fmt.Println(apiErr.Description) // user-facing message
//		}
//		return err
//	}
//
//	session, err := client.Login(ctx, "admin@example.org", "password")
//	if err != nil {
//		return err
//	}
//	created, err := session.CreateCredential(ctx, portalapi.CredentialCreateRequest{
//		Name:         "Jane Doe",
//		Organization: "Journal of Emerging Sport Studies",
//		Role:         "Peer Reviewer",
//		Volumes:      "1, 2",
//	})
//
// All errors originating from the server are *APIError values carrying the
// HTTP status, machine-readable code and human-readable description.
package portalapi
