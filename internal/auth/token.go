package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenLifetime  = 15 * time.Minute
	refreshTokenLifetime = 7 * 24 * time.Hour

	issuer = "cashpilot"
)

var ErrTokenInvalid = errors.New("the token is invalid or expired")

// Claims are the JWT claims for both access and refresh tokens.
//
// AccountID scopes every API call to the financial data of one account,
// UserID identifies the person acting on it.
type Claims struct {
	UserID    uuid.UUID `json:"userId"`
	AccountID uuid.UUID `json:"accountId"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair is an access token with its refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Issuer signs and validates token pairs.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewIssuer(accessSecret, refreshSecret string) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

// Issue returns a new token pair for the user.
func (i *Issuer) Issue(userID, accountID uuid.UUID, role string) (TokenPair, error) {
	access, err := i.sign(userID, accountID, role, i.accessSecret, accessTokenLifetime)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := i.sign(userID, accountID, role, i.refreshSecret, refreshTokenLifetime)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ValidateAccess parses and validates an access token.
func (i *Issuer) ValidateAccess(token string) (*Claims, error) {
	return i.validate(token, i.accessSecret)
}

// ValidateRefresh parses and validates a refresh token.
func (i *Issuer) ValidateRefresh(token string) (*Claims, error) {
	return i.validate(token, i.refreshSecret)
}

func (i *Issuer) sign(userID, accountID uuid.UUID, role string, secret []byte, lifetime time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (i *Issuer) validate(token string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
