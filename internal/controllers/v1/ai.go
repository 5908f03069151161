package v1

import (
	"net/http"

	"github.com/cashpilot/backend/internal/ai"
	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type aiController struct {
	client *ai.Client
}

// RegisterAIRoutes registers the routes for AI budget suggestions with
// the RouterGroup that is passed.
func RegisterAIRoutes(r *gin.RouterGroup, client *ai.Client) {
	controller := aiController{client: client}

	r.OPTIONS("/suggestions", httputil.OptionsPost)
	r.POST("/suggestions", controller.Suggest)
}

// SuggestionEditable represents all parameters of a suggestion request
type SuggestionEditable struct {
	PlanType string `json:"planType" example:"monthly" default:"monthly"` // Kind of plan the suggestion is for
	Prompt   string `json:"prompt" binding:"required"`                    // Free text description of the budgeting situation
}

type Suggestion struct {
	Suggestion string `json:"suggestion"` // The generated suggestion
}

type SuggestionResponse struct {
	Data  *Suggestion `json:"data"`  // The suggestion
	Error *string     `json:"error"` // The error, if any occurred
}

// @Summary		Budget suggestion
// @Description	Generates a budget suggestion for the prompt and stores the request for later reference
// @Tags			AI
// @Produce		json
// @Success		200		{object}	SuggestionResponse
// @Failure		400		{object}	SuggestionResponse
// @Failure		502		{object}	SuggestionResponse
// @Param			request	body		SuggestionEditable	true	"Suggestion request"
// @Router			/v1/ai/suggestions [post]
func (a aiController) Suggest(c *gin.Context) {
	actor := requestActor(c)

	var editable SuggestionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionResponse{Error: &e})
		return
	}

	planType := editable.PlanType
	if planType == "" {
		planType = "monthly"
	}

	suggestion, err := a.client.SuggestBudget(c.Request.Context(), editable.Prompt)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadGateway, SuggestionResponse{Error: &e})
		return
	}

	// The request is journaled, failures to do so do not fail the response
	plan := models.AIPlan{
		UserID:    actor.UserID,
		AccountID: actor.AccountID,
		PlanType:  planType,
		Prompt:    editable.Prompt,
	}
	_ = models.DB.Create(&plan).Error

	c.JSON(http.StatusOK, SuggestionResponse{Data: &Suggestion{Suggestion: suggestion}})
}
