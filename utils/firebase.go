package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// ErrUnverifiedIdentity covers rejected ID tokens and accounts whose email is
// not verified by the identity provider.
var ErrUnverifiedIdentity = errors.New("identity not verified")

// FirebaseIdentityVerifier checks Firebase Authentication ID tokens.
type FirebaseIdentityVerifier struct {
	client *auth.Client
}

// NewFirebaseIdentityVerifier initializes the Firebase App and its Auth client.
// An empty credentialsFile falls back to application default credentials.
func NewFirebaseIdentityVerifier(ctx context.Context, credentialsFile, projectID string) (*FirebaseIdentityVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
	}
	return &FirebaseIdentityVerifier{client: client}, nil
}

// VerifyEmail verifies the ID token and returns its verified email address.
func (v *FirebaseIdentityVerifier) VerifyEmail(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnverifiedIdentity, err)
	}
	return verifiedEmail(token.Claims)
}

func verifiedEmail(claims map[string]interface{}) (string, error) {
	email, _ := claims["email"].(string)
	verified, _ := claims["email_verified"].(bool)
	if strings.TrimSpace(email) == "" || !verified {
		return "", fmt.Errorf("%w: email missing or unverified", ErrUnverifiedIdentity)
	}
	return email, nil
}
