package v1

import (
	"net/http"

	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with the
// RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetEnvelopes)
	}

	{
		r.OPTIONS("/:id/spent", httputil.OptionsPatch)
		r.PATCH("/:id/spent", UpdateEnvelopeSpent)
	}
}

// SpentEditable is the payload for a direct spend update
type SpentEditable struct {
	Spent decimal.Decimal `json:"spent" example:"520"` // New value of the spent counter, must not be negative
}

type EnvelopeListResponse struct {
	Data  []AllocationEnvelope `json:"data"`  // List of envelopes
	Error *string              `json:"error"` // The error, if any occurred
}

type SpentUpdateResponse struct {
	Data  *AllocationEnvelope `json:"data"`  // The updated envelope
	Alert *Alert              `json:"alert"` // The overspending alert raised by this update, if any
	Error *string             `json:"error"` // The error, if any occurred
}

// @Summary		List envelopes
// @Description	Returns the envelopes of the allocation for a calendar month
// @Tags			Envelopes
// @Produce		json
// @Success		200		{object}	EnvelopeListResponse
// @Failure		400		{object}	EnvelopeListResponse
// @Failure		404		{object}	EnvelopeListResponse
// @Param			month	query		int	true	"Month, 1 to 12"
// @Param			year	query		int	true	"Four digit year"
// @Router			/v1/envelopes [get]
func GetEnvelopes(c *gin.Context) {
	actor := requestActor(c)

	var query QueryMonth
	if err := httputil.BindQuery(c, &query); err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{Error: &e})
		return
	}

	month, err := planMonth(query.Month, query.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{Error: &e})
		return
	}

	allocation, err := models.AllocationForMonth(models.DB, actor.AccountID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{Error: &e})
		return
	}

	data, err := loadAllocation(allocation)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{Data: data.Envelopes})
}

// @Summary		Update spent
// @Description	Overwrites the spent counter of an envelope. A value above the budget raises an overspending alert.
// @Tags			Envelopes
// @Produce		json
// @Success		200		{object}	SpentUpdateResponse
// @Failure		400		{object}	SpentUpdateResponse
// @Failure		404		{object}	SpentUpdateResponse
// @Param			id		path		URIID			true	"ID of the envelope"
// @Param			request	body		SpentEditable	true	"New spent value"
// @Router			/v1/envelopes/{id}/spent [patch]
func UpdateEnvelopeSpent(c *gin.Context) {
	actor := requestActor(c)

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), SpentUpdateResponse{Error: &e})
		return
	}

	var editable SpentEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SpentUpdateResponse{Error: &e})
		return
	}

	envelope, err := models.EnvelopeForAccount(models.DB, actor.AccountID, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpentUpdateResponse{Error: &e})
		return
	}

	alert, err := envelope.SetSpent(models.DB, actor.UserID, editable.Spent)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpentUpdateResponse{Error: &e})
		return
	}

	var category models.Category
	if err := models.DB.First(&category, envelope.CategoryID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), SpentUpdateResponse{Error: &e})
		return
	}

	data := AllocationEnvelope{
		ID:           envelope.ID,
		CategoryID:   envelope.CategoryID,
		CategoryName: category.Name,
		Budget:       envelope.Budget,
		Spent:        envelope.Spent,
	}

	response := SpentUpdateResponse{Data: &data}
	if alert != nil {
		a := newAlert(*alert)
		response.Alert = &a
	}

	c.JSON(http.StatusOK, response)
}
