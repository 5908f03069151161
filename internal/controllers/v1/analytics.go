package v1

import (
	"net/http"

	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterAnalyticsRoutes registers the routes for analytics with the
// RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", GetAnalyticsSummary)
}

// AnalyticsQueryFilter contains the supported query parameters
type AnalyticsQueryFilter struct {
	Months int `form:"months"` // Number of most recent months to include, defaults to 6
}

type MonthTrend struct {
	Month    int             `json:"month" example:"4"`
	Year     int             `json:"year" example:"2026"`
	Income   decimal.Decimal `json:"income" example:"2800"`
	Expenses decimal.Decimal `json:"expenses" example:"1922.51"`
	Net      decimal.Decimal `json:"net" example:"877.49"`
}

type CategorySpend struct {
	CategoryName string          `json:"categoryName" example:"Groceries"`
	Total        decimal.Decimal `json:"total" example:"452.13"`
}

type AnalyticsSummary struct {
	Trends             []MonthTrend    `json:"trends"`                      // Per month income, expenses and net, oldest first
	CategoryBreakdown  []CategorySpend `json:"categoryBreakdown"`           // Total expenses per category, largest first
	TopExpenseCategory *CategorySpend  `json:"topExpenseCategory"`          // The category with the highest total, null without expenses
	SavingsRate        decimal.Decimal `json:"savingsRate" example:"31.34"` // Percentage of income not spent across the window
}

type AnalyticsSummaryResponse struct {
	Data  *AnalyticsSummary `json:"data"`  // The analytics summary
	Error *string           `json:"error"` // The error, if any occurred
}

// @Summary		Analytics summary
// @Description	Returns income and expense trends, the expense breakdown by category and the savings rate over the most recent months
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	AnalyticsSummaryResponse
// @Failure		400		{object}	AnalyticsSummaryResponse
// @Failure		500		{object}	AnalyticsSummaryResponse
// @Param			months	query		int	false	"Number of most recent months to include, defaults to 6"
// @Router			/v1/analytics/summary [get]
func GetAnalyticsSummary(c *gin.Context) {
	actor := requestActor(c)

	var filter AnalyticsQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsSummaryResponse{Error: &e})
		return
	}

	months := filter.Months
	if months <= 0 {
		months = 6
	}

	trends, totalIncome, totalExpenses, err := monthTrends(actor, months)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsSummaryResponse{Error: &e})
		return
	}

	breakdown, err := categoryBreakdown(actor)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsSummaryResponse{Error: &e})
		return
	}

	summary := AnalyticsSummary{
		Trends:            trends,
		CategoryBreakdown: breakdown,
		SavingsRate:       savingsRate(totalIncome, totalExpenses),
	}

	if len(breakdown) > 0 {
		summary.TopExpenseCategory = &breakdown[0]
	}

	c.JSON(http.StatusOK, AnalyticsSummaryResponse{Data: &summary})
}

// monthTrends derives income, expenses and net for the most recent months
// from the allocations. The income of a month is the difference between
// its total and the frozen carry-forward, the expenses are the sum of its
// envelope spends.
func monthTrends(actor actor, months int) ([]MonthTrend, decimal.Decimal, decimal.Decimal, error) {
	var allocations []models.MonthlyAllocation
	err := models.DB.
		Where("account_id = ?", actor.AccountID).
		Order("month DESC").
		Limit(months).
		Find(&allocations).Error
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	trends := make([]MonthTrend, 0, len(allocations))
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	// Walk backwards so the result is oldest first
	for i := len(allocations) - 1; i >= 0; i-- {
		allocation := allocations[i]

		income := allocation.TotalAllocated.Sub(allocation.CarryForwardSavings)
		expenses, err := allocation.SpentSum(models.DB)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}

		trends = append(trends, MonthTrend{
			Month:    int(allocation.Month.Month()),
			Year:     allocation.Month.Year(),
			Income:   income,
			Expenses: expenses,
			Net:      income.Sub(expenses),
		})

		totalIncome = totalIncome.Add(income)
		totalExpenses = totalExpenses.Add(expenses)
	}

	return trends, totalIncome, totalExpenses, nil
}

// categoryBreakdown sums the journaled expenses per category, largest
// total first.
func categoryBreakdown(actor actor) ([]CategorySpend, error) {
	rows, err := models.DB.
		Model(&models.Transaction{}).
		Select("categories.name, SUM(transactions.amount) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.account_id = ?", actor.AccountID).
		Where("transactions.type = ?", models.TransactionExpense).
		Group("categories.name").
		Order("total DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breakdown := make([]CategorySpend, 0)
	for rows.Next() {
		var spend CategorySpend
		if err := rows.Scan(&spend.CategoryName, &spend.Total); err != nil {
			return nil, err
		}

		breakdown = append(breakdown, spend)
	}

	return breakdown, rows.Err()
}

// savingsRate is the percentage of income that was not spent. Without
// income it is zero.
func savingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	return income.Sub(expenses).
		Div(income).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
