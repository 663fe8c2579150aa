// internal/auth/firebase.go
package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Verifier wraps the Firebase Auth client behind the one capability the rest
// of the service needs: verify a bearer token into (uid, email). It is
// constructed exactly once in main and passed down; nothing else may
// re-initialize the Firebase app.
type Verifier struct {
	client *fbauth.Client
}

// Identity is the verified subject of a request.
type Identity struct {
	UserID string
	Email  string
}

func NewVerifier(ctx context.Context, credentialsJSON []byte) (*Verifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{}, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("firebase init failed: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth client init failed: %w", err)
	}

	return &Verifier{client: authClient}, nil
}

// Verify checks the ID token and extracts uid + email. A token without a uid
// is rejected; a missing email claim is allowed (the payload may supply one).
func (v *Verifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	if decoded.UID == "" {
		return nil, fmt.Errorf("token missing uid")
	}

	email := ""
	if claim, ok := decoded.Claims["email"].(string); ok {
		email = claim
	}

	return &Identity{UserID: decoded.UID, Email: email}, nil
}
