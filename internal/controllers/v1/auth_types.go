package v1

import (
	"github.com/cashpilot/backend/internal/auth"
	"github.com/cashpilot/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterEditable represents all parameters of a registration request
type RegisterEditable struct {
	AccountName    string             `json:"accountName" example:"Household"`                             // Name of the account, defaults to the user's name
	AccountType    models.AccountType `json:"accountType" example:"PERSONAL" default:"PERSONAL"`           // PERSONAL or BUSINESS
	Currency       string             `json:"currency" example:"EUR" default:"EUR"`                        // Display currency
	OpeningBalance decimal.Decimal    `json:"openingBalance" example:"5000" default:"0"`                   // Starting balance, the carry-forward of the first planned month
	Name           string             `json:"name" binding:"required" example:"Jane Doe"`                  // Name of the user
	Email          string             `json:"email" binding:"required,email" example:"jane@example.com"`   // Email address, unique across all users
	Password       string             `json:"password" binding:"required,min=8" example:"correct-horse-1"` // Password, at least 8 characters
	Country        string             `json:"country" example:"DE"`                                        // Country code
	Mobile         string             `json:"mobile" example:"+4915123456789"`                             // Mobile number
}

type LoginEditable struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required"`
}

type RefreshEditable struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type GoogleLoginEditable struct {
	IDToken string `json:"idToken" binding:"required"` // ID token issued by Google sign-in
}

type SessionUser struct {
	ID        uuid.UUID          `json:"id"`
	AccountID uuid.UUID          `json:"accountId"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      models.Role        `json:"role"`
	Picture   string             `json:"picture"`
	Currency  string             `json:"currency"`
	Type      models.AccountType `json:"accountType"`
}

type Session struct {
	User   SessionUser    `json:"user"`
	Tokens auth.TokenPair `json:"tokens"`
}

type SessionResponse struct {
	Data  *Session `json:"data"`  // The session and its tokens
	Error *string  `json:"error"` // The error, if any occurred
}

func newSession(user models.User, account models.Account, tokens auth.TokenPair) Session {
	return Session{
		User: SessionUser{
			ID:        user.ID,
			AccountID: account.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			Picture:   user.Picture,
			Currency:  account.Currency,
			Type:      account.AccountType,
		},
		Tokens: tokens,
	}
}
