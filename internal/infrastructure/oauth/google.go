package oauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Profile holds the identity claims extracted from a verified Google ID token.
type Profile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier validates Google ID tokens issued for a single OAuth client.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify checks the signature and audience of an ID token and returns the
// profile claims it carries.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Profile, error) {
	payload, err := idtoken.Validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate google id token: %v", err)
	}

	profile := &Profile{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		profile.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		profile.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		profile.Picture = picture
	}

	if profile.Email == "" {
		return nil, fmt.Errorf("google id token missing email claim")
	}

	return profile, nil
}
