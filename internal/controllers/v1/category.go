package v1

import (
	"net/http"

	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
}

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Groceries"` // Name of the category, unique per account
}

type CategoryData struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" example:"Groceries"`
}

type CategoryResponse struct {
	Data  *CategoryData `json:"data"`  // Data for the category
	Error *string       `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []CategoryData `json:"data"`  // List of categories
	Error *string        `json:"error"` // The error, if any occurred
}

// @Summary		List categories
// @Description	Returns the categories of the account
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	actor := requestActor(c)

	var categories []models.Category
	err := models.DB.
		Where("account_id = ?", actor.AccountID).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]CategoryData, 0, len(categories))
	for _, category := range categories {
		data = append(data, CategoryData{ID: category.ID, Name: category.Name})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Create category
// @Description	Creates a new category or returns the existing one with the same name. Matching is case-insensitive.
// @Tags			Categories
// @Produce		json
// @Success		201		{object}	CategoryResponse
// @Failure		400		{object}	CategoryResponse
// @Failure		500		{object}	CategoryResponse
// @Param			request	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	actor := requestActor(c)

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, err := models.ResolveCategory(models.DB, actor.AccountID, editable.Name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &CategoryData{
		ID:   category.ID,
		Name: category.Name,
	}})
}
