package v1

import (
	"net/http"

	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAllocationRoutes registers the routes for monthly allocations
// with the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetAllocation)
		r.POST("", SubmitPlan)
	}

	{
		r.OPTIONS("/first-month", httputil.OptionsGet)
		r.GET("/first-month", GetFirstMonth)
	}
}

// QueryMonth addresses a monthly allocation by calendar month in the query
// string.
type QueryMonth struct {
	Month int `form:"month" binding:"required" example:"4"`   // Month, 1 to 12
	Year  int `form:"year" binding:"required" example:"2026"` // Four digit year
}

// @Summary		Submit plan
// @Description	Creates or replaces the monthly allocation for a calendar month. The carry-forward is frozen on first submission, envelope budgets are overwritten, spent counters survive. Categories missing from a resubmitted plan lose their envelope and its spend history for that month.
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationResponse
// @Failure		400		{object}	AllocationResponse
// @Failure		500		{object}	AllocationResponse
// @Param			request	body		PlanEditable	true	"Plan"
// @Router			/v1/allocations [post]
func SubmitPlan(c *gin.Context) {
	actor := requestActor(c)

	var editable PlanEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	month, err := planMonth(editable.Month, editable.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	allocation, err := models.SubmitPlan(models.DB, actor.AccountID, actor.UserID, month, editable.Income, editable.planCategories())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	data, err := loadAllocation(allocation)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Get allocation
// @Description	Returns the monthly allocation for a calendar month with its envelopes and totals
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationResponse
// @Failure		400		{object}	AllocationResponse
// @Failure		404		{object}	AllocationResponse
// @Param			month	query		int	true	"Month, 1 to 12"
// @Param			year	query		int	true	"Four digit year"
// @Router			/v1/allocations [get]
func GetAllocation(c *gin.Context) {
	actor := requestActor(c)

	var query QueryMonth
	if err := httputil.BindQuery(c, &query); err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	month, err := planMonth(query.Month, query.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	allocation, err := models.AllocationForMonth(models.DB, actor.AccountID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	data, err := loadAllocation(allocation)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Get first month
// @Description	Returns the earliest calendar month that has an allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	FirstMonthResponse
// @Failure		500	{object}	FirstMonthResponse
// @Router			/v1/allocations/first-month [get]
func GetFirstMonth(c *gin.Context) {
	actor := requestActor(c)

	month, ok, err := models.EarliestAllocationMonth(models.DB, actor.AccountID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FirstMonthResponse{Error: &e})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, FirstMonthResponse{})
		return
	}

	c.JSON(http.StatusOK, FirstMonthResponse{Data: &FirstMonth{
		Month: int(month.Month()),
		Year:  month.Year(),
	}})
}

// loadAllocation assembles the API representation of an allocation with
// its envelopes and category names.
func loadAllocation(allocation models.MonthlyAllocation) (Allocation, error) {
	envelopes, err := allocation.Envelopes(models.DB)
	if err != nil {
		return Allocation{}, err
	}

	data := make([]AllocationEnvelope, 0, len(envelopes))
	for _, envelope := range envelopes {
		var category models.Category
		if err := models.DB.First(&category, envelope.CategoryID).Error; err != nil {
			return Allocation{}, err
		}

		data = append(data, AllocationEnvelope{
			ID:           envelope.ID,
			CategoryID:   envelope.CategoryID,
			CategoryName: category.Name,
			Budget:       envelope.Budget,
			Spent:        envelope.Spent,
		})
	}

	return newAllocation(allocation, data), nil
}
