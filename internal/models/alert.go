package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OverSpendingAlert is an append-only notification that an envelope's
// spend exceeded its budget. Alerts are never mutated or deleted, they are
// consumed externally for display.
type OverSpendingAlert struct {
	DefaultModel
	User                User `json:"-"`
	UserID              uuid.UUID
	Account             Account `json:"-"`
	AccountID           uuid.UUID
	MonthlyAllocation   MonthlyAllocation `json:"-"`
	MonthlyAllocationID uuid.UUID
	Category            Category `json:"-"`
	CategoryID          uuid.UUID
	AllocatedAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SpentAmount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Overamount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Message             string
	AlertDate           time.Time
}

// BeforeSave defaults the alert date.
func (a *OverSpendingAlert) BeforeSave(_ *gorm.DB) error {
	if a.AlertDate.IsZero() {
		a.AlertDate = time.Now().In(time.UTC)
	} else {
		a.AlertDate = a.AlertDate.In(time.UTC)
	}

	return nil
}

// raiseOverspendingAlert appends the alert record for an envelope whose
// spent counter ended up above its budget.
func raiseOverspendingAlert(db *gorm.DB, envelope Envelope, userID uuid.UUID) (OverSpendingAlert, error) {
	var allocation MonthlyAllocation
	if err := db.First(&allocation, envelope.MonthlyAllocationID).Error; err != nil {
		return OverSpendingAlert{}, err
	}

	var category Category
	if err := db.First(&category, envelope.CategoryID).Error; err != nil {
		return OverSpendingAlert{}, err
	}

	overamount := envelope.Spent.Sub(envelope.Budget)

	alert := OverSpendingAlert{
		UserID:              userID,
		AccountID:           allocation.AccountID,
		MonthlyAllocationID: allocation.ID,
		CategoryID:          category.ID,
		AllocatedAmount:     envelope.Budget,
		SpentAmount:         envelope.Spent,
		Overamount:          overamount,
		Message:             fmt.Sprintf("Warning: you have exceeded your budget for %s by %s", category.Name, overamount),
	}

	if err := db.Create(&alert).Error; err != nil {
		return OverSpendingAlert{}, err
	}

	return alert, nil
}
