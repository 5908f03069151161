package v1

import (
	"net/http"
	"time"

	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterAlertRoutes registers the routes for overspending alerts with
// the RouterGroup that is passed.
func RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetAlerts)
}

type Alert struct {
	ID              uuid.UUID       `json:"id"`
	CategoryID      uuid.UUID       `json:"categoryId"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"500"`
	SpentAmount     decimal.Decimal `json:"spentAmount" example:"620"`
	Overamount      decimal.Decimal `json:"overamount" example:"120"`
	Message         string          `json:"msg" example:"Warning: you have exceeded your budget for Groceries by 120"`
	AlertDate       time.Time       `json:"alertDate"`
}

type AlertListResponse struct {
	Data  []Alert `json:"data"`  // List of alerts, newest first
	Error *string `json:"error"` // The error, if any occurred
}

func newAlert(model models.OverSpendingAlert) Alert {
	return Alert{
		ID:              model.ID,
		CategoryID:      model.CategoryID,
		AllocatedAmount: model.AllocatedAmount,
		SpentAmount:     model.SpentAmount,
		Overamount:      model.Overamount,
		Message:         model.Message,
		AlertDate:       model.AlertDate,
	}
}

// @Summary		List alerts
// @Description	Returns the overspending alerts of the account, newest first
// @Tags			Alerts
// @Produce		json
// @Success		200	{object}	AlertListResponse
// @Failure		500	{object}	AlertListResponse
// @Router			/v1/alerts [get]
func GetAlerts(c *gin.Context) {
	actor := requestActor(c)

	var alerts []models.OverSpendingAlert
	err := models.DB.
		Where("account_id = ?", actor.AccountID).
		Order("alert_date DESC").
		Find(&alerts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertListResponse{Error: &e})
		return
	}

	data := make([]Alert, 0, len(alerts))
	for _, alert := range alerts {
		data = append(data, newAlert(alert))
	}

	c.JSON(http.StatusOK, AlertListResponse{Data: data})
}
