package models

import (
	"errors"
	"strings"

	"github.com/cashpilot/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyAllocation is the ledger record of one account for one calendar
// month: the total pool of funds available and the savings carried over
// from the month before.
type MonthlyAllocation struct {
	DefaultModel
	Account   Account     `json:"-"`
	AccountID uuid.UUID   `gorm:"uniqueIndex:allocation_account_month"`
	User      User        `json:"-"`
	UserID    uuid.UUID   // last writer
	Month     types.Month `gorm:"uniqueIndex:allocation_account_month"`

	// TotalAllocated is the carry-forward plus the income entered for the
	// month. Resubmitting a plan replaces the income part.
	TotalAllocated decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	// CarryForwardSavings is computed once when the allocation is first
	// created and never recomputed afterwards.
	CarryForwardSavings decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// PlanCategory is one entry of a submitted monthly plan.
type PlanCategory struct {
	Name   string
	Budget decimal.Decimal
}

// SubmitPlan upserts the ledger record for the month and syncs its
// envelopes to the submitted category list.
//
// The carry-forward is frozen on first creation: for an existing
// allocation only the total pool and the last writer change. The call is
// not atomic across the ledger and its envelopes, a failure during the
// envelope sync leaves the already upserted ledger in place.
func SubmitPlan(db *gorm.DB, accountID, userID uuid.UUID, month types.Month, income decimal.Decimal, categories []PlanCategory) (MonthlyAllocation, error) {
	if month.IsZero() {
		return MonthlyAllocation{}, ErrMonthInvalid
	}

	if income.IsNegative() {
		return MonthlyAllocation{}, ErrIncomeNegative
	}

	for _, category := range categories {
		if strings.TrimSpace(category.Name) == "" {
			return MonthlyAllocation{}, ErrCategoryNameMissing
		}

		if category.Budget.IsNegative() {
			return MonthlyAllocation{}, ErrBudgetNegative
		}
	}

	var allocation MonthlyAllocation
	err := db.Where("account_id = ? AND month = ?", accountID, month).First(&allocation).Error

	switch {
	case err == nil:
		// Resubmission: the new income replaces the old one on top of
		// the frozen carry-forward.
		total := allocation.CarryForwardSavings.Add(income)
		err = db.Model(&allocation).Updates(map[string]any{
			"total_allocated": total,
			"user_id":         userID,
		}).Error
		if err != nil {
			return MonthlyAllocation{}, err
		}

		allocation.TotalAllocated = total
		allocation.UserID = userID

	case errors.Is(err, ErrResourceNotFound):
		carry, cErr := carryForward(db, accountID, month)
		if cErr != nil {
			return MonthlyAllocation{}, cErr
		}

		allocation = MonthlyAllocation{
			AccountID:           accountID,
			UserID:              userID,
			Month:               month,
			CarryForwardSavings: carry,
			TotalAllocated:      carry.Add(income),
		}
		if err := db.Create(&allocation).Error; err != nil {
			return MonthlyAllocation{}, err
		}

	default:
		return MonthlyAllocation{}, err
	}

	if err := syncEnvelopes(db, allocation, categories); err != nil {
		return MonthlyAllocation{}, err
	}

	return allocation, nil
}

// carryForward computes the savings rolled into a month that is budgeted
// for the first time: the previous month's pool minus everything spent
// from it, or the account's opening balance when no previous month exists.
// The result may be negative.
func carryForward(db *gorm.DB, accountID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var previous MonthlyAllocation
	err := db.Where("account_id = ? AND month = ?", accountID, month.AddDate(0, -1)).First(&previous).Error

	if errors.Is(err, ErrResourceNotFound) {
		var account Account
		if err := db.First(&account, accountID).Error; err != nil {
			return decimal.Zero, err
		}

		return account.OpeningBalance, nil
	}

	if err != nil {
		return decimal.Zero, err
	}

	spent, err := previous.SpentSum(db)
	if err != nil {
		return decimal.Zero, err
	}

	return previous.TotalAllocated.Sub(spent), nil
}

// SpentSum returns the sum of all envelope spend counters of the allocation.
func (m MonthlyAllocation) SpentSum(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Envelope{}).
		Where("monthly_allocation_id = ?", m.ID).
		Select("SUM(spent)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}

// Envelopes returns all envelopes of the allocation.
func (m MonthlyAllocation) Envelopes(db *gorm.DB) ([]Envelope, error) {
	var envelopes []Envelope
	err := db.Where(&Envelope{MonthlyAllocationID: m.ID}).Find(&envelopes).Error
	return envelopes, err
}

// AllocationForMonth returns the ledger record of the account for the month.
func AllocationForMonth(db *gorm.DB, accountID uuid.UUID, month types.Month) (MonthlyAllocation, error) {
	var allocation MonthlyAllocation
	err := db.Where("account_id = ? AND month = ?", accountID, month).First(&allocation).Error
	return allocation, err
}

// EarliestAllocationMonth returns the first budgeted month of the account.
// ok is false when the account has no allocations yet.
func EarliestAllocationMonth(db *gorm.DB, accountID uuid.UUID) (month types.Month, ok bool, err error) {
	var allocation MonthlyAllocation
	err = db.Where("account_id = ?", accountID).Order("month ASC").First(&allocation).Error

	if errors.Is(err, ErrResourceNotFound) {
		return types.Month{}, false, nil
	}

	if err != nil {
		return types.Month{}, false, err
	}

	return allocation.Month, true, nil
}
