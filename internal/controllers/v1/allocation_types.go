package v1

import (
	"github.com/cashpilot/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanCategoryEditable is one category line of a submitted plan
type PlanCategoryEditable struct {
	Name   string          `json:"name" binding:"required" example:"Groceries"` // Name of the category
	Budget decimal.Decimal `json:"budget" example:"450"`                        // Planned cap for the month
}

// PlanEditable represents all user configurable parameters of a monthly plan
type PlanEditable struct {
	Month      int                    `json:"month" binding:"required" example:"4"`   // Month, 1 to 12
	Year       int                    `json:"year" binding:"required" example:"2026"` // Four digit year
	Income     decimal.Decimal        `json:"income" example:"2800"`                  // Income for the month, must not be negative
	Categories []PlanCategoryEditable `json:"categories"`                             // The category envelopes of the plan
}

type AllocationEnvelope struct {
	ID           uuid.UUID       `json:"id"`
	CategoryID   uuid.UUID       `json:"categoryId"`
	CategoryName string          `json:"categoryName" example:"Groceries"`
	Budget       decimal.Decimal `json:"budget" example:"450"`
	Spent        decimal.Decimal `json:"spent" example:"121.37"`
}

type Allocation struct {
	ID                  uuid.UUID            `json:"id"`
	Month               int                  `json:"month" example:"4"`
	Year                int                  `json:"year" example:"2026"`
	TotalAllocated      decimal.Decimal      `json:"totalAllocated" example:"7000"`      // Frozen carry-forward plus the income of the last submission
	CarryForwardSavings decimal.Decimal      `json:"carryForwardSavings" example:"5000"` // Savings rolled over from the previous month, frozen on first submission
	AllocatedSum        decimal.Decimal      `json:"allocatedSum" example:"1650"`        // Sum of all envelope budgets
	ActualSpent         decimal.Decimal      `json:"actualSpent" example:"121.37"`       // Sum of all envelope spent counters
	Remaining           decimal.Decimal      `json:"remaining" example:"6878.63"`        // TotalAllocated minus ActualSpent
	Envelopes           []AllocationEnvelope `json:"envelopes"`
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`  // Data for the monthly allocation
	Error *string     `json:"error"` // The error, if any occurred
}

type FirstMonth struct {
	Month int `json:"month" example:"1"`
	Year  int `json:"year" example:"2025"`
}

type FirstMonthResponse struct {
	Data  *FirstMonth `json:"data"`  // The earliest month with an allocation, null when none exists
	Error *string     `json:"error"` // The error, if any occurred
}

func (p PlanEditable) planCategories() []models.PlanCategory {
	categories := make([]models.PlanCategory, 0, len(p.Categories))
	for _, category := range p.Categories {
		categories = append(categories, models.PlanCategory{
			Name:   category.Name,
			Budget: category.Budget,
		})
	}

	return categories
}

func newAllocation(allocation models.MonthlyAllocation, envelopes []AllocationEnvelope) Allocation {
	allocatedSum := decimal.Zero
	actualSpent := decimal.Zero
	for _, envelope := range envelopes {
		allocatedSum = allocatedSum.Add(envelope.Budget)
		actualSpent = actualSpent.Add(envelope.Spent)
	}

	return Allocation{
		ID:                  allocation.ID,
		Month:               int(allocation.Month.Month()),
		Year:                allocation.Month.Year(),
		TotalAllocated:      allocation.TotalAllocated,
		CarryForwardSavings: allocation.CarryForwardSavings,
		AllocatedSum:        allocatedSum,
		ActualSpent:         actualSpent,
		Remaining:           allocation.TotalAllocated.Sub(actualSpent),
		Envelopes:           envelopes,
	}
}
