package v1

import (
	"time"

	"github.com/cashpilot/backend/internal/models"
	"github.com/cashpilot/backend/internal/types"
	internal_uuid "github.com/cashpilot/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys under which the authentication middleware stores the
// request actor.
const (
	ContextKeyUserID    = "cashpilot.userID"
	ContextKeyAccountID = "cashpilot.accountID"
	ContextKeyRole      = "cashpilot.role"
)

type URIID struct {
	ID internal_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// URIMonth addresses a monthly allocation by calendar month.
type URIMonth struct {
	Month int `uri:"month" binding:"required" example:"4"`   // Month, 1 to 12
	Year  int `uri:"year" binding:"required" example:"2026"` // Four digit year
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// actor is the authenticated caller of a request.
type actor struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Role      models.Role
}

// requestActor reads the actor the authentication middleware stored on the
// context. Routes behind the middleware can rely on it being present.
func requestActor(c *gin.Context) actor {
	return actor{
		UserID:    c.MustGet(ContextKeyUserID).(uuid.UUID),
		AccountID: c.MustGet(ContextKeyAccountID).(uuid.UUID),
		Role:      models.Role(c.GetString(ContextKeyRole)),
	}
}

// planMonth validates the calendar month and converts it.
func planMonth(month, year int) (types.Month, error) {
	if month < 1 || month > 12 {
		return types.Month{}, errMonthOutOfRange
	}

	if year < 1970 || year > 9999 {
		return types.Month{}, errYearOutOfRange
	}

	return types.NewMonth(year, time.Month(month)), nil
}
