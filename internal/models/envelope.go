package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Envelope is the budget cap and running spend of one category within one
// monthly allocation.
type Envelope struct {
	DefaultModel
	MonthlyAllocation   MonthlyAllocation `json:"-"`
	MonthlyAllocationID uuid.UUID         `gorm:"uniqueIndex:envelope_allocation_category"`
	Category            Category          `json:"-"`
	CategoryID          uuid.UUID         `gorm:"uniqueIndex:envelope_allocation_category"`

	// Budget is the planned cap. It is overwritten on every plan
	// resubmission.
	Budget decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	// Spent is the running actual. It starts at zero when the envelope is
	// first created, survives resubmissions and is only changed by the
	// transaction lifecycle or a direct spend update. It never goes
	// negative.
	Spent decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// EnvelopeForAccount loads an envelope and verifies through its allocation
// that it belongs to the account. Envelopes of other accounts are reported
// as not found.
func EnvelopeForAccount(db *gorm.DB, accountID uuid.UUID, id uuid.UUID) (Envelope, error) {
	var envelope Envelope
	err := db.
		Joins("JOIN monthly_allocations ON monthly_allocations.id = envelopes.monthly_allocation_id").
		Where("envelopes.id = ? AND monthly_allocations.account_id = ?", id, accountID).
		First(&envelope).Error

	return envelope, err
}

// syncEnvelopes reconciles the envelopes of an allocation with the
// submitted plan: one batch upsert that overwrites budgets but initializes
// spent only on insert, then a cleanup delete of every envelope whose
// category is no longer part of the plan. Removing a category from a plan
// discards its spend history for that month for good.
func syncEnvelopes(db *gorm.DB, allocation MonthlyAllocation, categories []PlanCategory) error {
	envelopes := make([]Envelope, 0, len(categories))
	active := make([]uuid.UUID, 0, len(categories))

	for _, planCategory := range categories {
		category, err := ResolveCategory(db, allocation.AccountID, planCategory.Name)
		if err != nil {
			return err
		}

		envelopes = append(envelopes, Envelope{
			MonthlyAllocationID: allocation.ID,
			CategoryID:          category.ID,
			Budget:              planCategory.Budget,
		})
		active = append(active, category.ID)
	}

	if len(envelopes) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "monthly_allocation_id"}, {Name: "category_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"budget", "updated_at"}),
		}).Create(&envelopes).Error
		if err != nil {
			return err
		}
	}

	cleanup := db.Unscoped().Where("monthly_allocation_id = ?", allocation.ID)
	if len(active) > 0 {
		cleanup = cleanup.Where("category_id NOT IN ?", active)
	}

	return cleanup.Delete(&Envelope{}).Error
}

// AddSpend atomically adds the amount to the envelope's spent counter and
// reloads the envelope. When the new total exceeds the budget, an alert is
// appended and returned. Every increment that ends above the cap raises
// its own alert, there is no deduplication.
func (e *Envelope) AddSpend(db *gorm.DB, userID uuid.UUID, amount decimal.Decimal) (*OverSpendingAlert, error) {
	err := db.Model(&Envelope{}).
		Where("id = ?", e.ID).
		UpdateColumn("spent", gorm.Expr("spent + ?", amount)).Error
	if err != nil {
		return nil, err
	}

	if err := db.First(e, e.ID).Error; err != nil {
		return nil, err
	}

	return e.checkOverspend(db, userID)
}

// ReleaseSpend atomically subtracts the amount from the envelope's spent
// counter. A result below zero is clamped to zero afterwards, absorbing
// any inconsistency instead of rejecting it.
func (e *Envelope) ReleaseSpend(db *gorm.DB, amount decimal.Decimal) error {
	err := db.Model(&Envelope{}).
		Where("id = ?", e.ID).
		UpdateColumn("spent", gorm.Expr("spent - ?", amount)).Error
	if err != nil {
		return err
	}

	if err := db.First(e, e.ID).Error; err != nil {
		return err
	}

	if e.Spent.IsNegative() {
		err = db.Model(&Envelope{}).
			Where("id = ?", e.ID).
			UpdateColumn("spent", decimal.Zero).Error
		if err != nil {
			return err
		}

		e.Spent = decimal.Zero
	}

	return nil
}

// SetSpent overwrites the envelope's spent counter and raises an alert
// when the new value exceeds the budget.
func (e *Envelope) SetSpent(db *gorm.DB, userID uuid.UUID, amount decimal.Decimal) (*OverSpendingAlert, error) {
	if amount.IsNegative() {
		return nil, ErrSpentNegative
	}

	err := db.Model(&Envelope{}).
		Where("id = ?", e.ID).
		UpdateColumn("spent", amount).Error
	if err != nil {
		return nil, err
	}

	e.Spent = amount

	return e.checkOverspend(db, userID)
}

func (e *Envelope) checkOverspend(db *gorm.DB, userID uuid.UUID) (*OverSpendingAlert, error) {
	if !e.Spent.GreaterThan(e.Budget) {
		return nil, nil
	}

	alert, err := raiseOverspendingAlert(db, *e, userID)
	if err != nil {
		return nil, err
	}

	return &alert, nil
}
