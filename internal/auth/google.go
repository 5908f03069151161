package auth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

var ErrGoogleTokenInvalid = errors.New("the Google ID token could not be verified")

// GoogleProfile is the subset of the ID token payload the backend uses.
type GoogleProfile struct {
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier validates Google ID tokens for one OAuth client.
type GoogleVerifier struct {
	clientID string

	// validate is replaceable for tests.
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

// Verify checks the ID token against Google's public keys and returns the
// profile it asserts.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (GoogleProfile, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return GoogleProfile{}, ErrGoogleTokenInvalid
	}

	profile := GoogleProfile{}
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
		return GoogleProfile{}, ErrGoogleTokenInvalid
	}

	return profile, nil
}
