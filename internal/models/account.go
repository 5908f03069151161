package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType determines whether an account is used by a single person or
// shared within a business.
type AccountType string

const (
	AccountTypePersonal AccountType = "PERSONAL"
	AccountTypeBusiness AccountType = "BUSINESS"
)

// Account groups all financial data of one household or business.
type Account struct {
	DefaultModel
	Name           string
	AccountType    AccountType
	Currency       string
	OpeningBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Seed carry-forward for the first budgeted month
	CurrentBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Currency = strings.TrimSpace(a.Currency)

	return nil
}
