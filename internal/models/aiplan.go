package models

import (
	"github.com/google/uuid"
)

// AIPlan records one AI suggestion call for an account.
type AIPlan struct {
	DefaultModel
	User      User `json:"-"`
	UserID    uuid.UUID
	Account   Account `json:"-"`
	AccountID uuid.UUID
	PlanType  string
	Prompt    string
}
