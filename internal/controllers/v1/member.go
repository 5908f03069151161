package v1

import (
	"errors"
	"net/http"

	"github.com/cashpilot/backend/internal/auth"
	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterMemberRoutes registers the routes for business account members
// with the RouterGroup that is passed.
func RegisterMemberRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetMembers)
	r.POST("", InviteMember)
}

// MemberEditable represents all parameters of a member invitation
type MemberEditable struct {
	Name     string      `json:"name" binding:"required" example:"John Doe"`                // Name of the member
	Email    string      `json:"email" binding:"required,email" example:"john@example.com"` // Email address
	Password string      `json:"password" binding:"required,min=8"`                         // Initial password
	Role     models.Role `json:"role" example:"USER" default:"USER"`                        // USER or VIEWER
}

type Member struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name" example:"John Doe"`
	Email string      `json:"email" example:"john@example.com"`
	Role  models.Role `json:"role" example:"USER"`
}

type MemberResponse struct {
	Data  *Member `json:"data"`  // Data for the member
	Error *string `json:"error"` // The error, if any occurred
}

type MemberListResponse struct {
	Data  []Member `json:"data"`  // List of members
	Error *string  `json:"error"` // The error, if any occurred
}

// @Summary		List members
// @Description	Returns the members of the business account
// @Tags			Members
// @Produce		json
// @Success		200	{object}	MemberListResponse
// @Failure		400	{object}	MemberListResponse
// @Failure		500	{object}	MemberListResponse
// @Router			/v1/members [get]
func GetMembers(c *gin.Context) {
	actor := requestActor(c)

	if err := businessAccount(actor); err != nil {
		e := err.Error()
		c.JSON(status(err), MemberListResponse{Error: &e})
		return
	}

	var users []models.User
	err := models.DB.
		Where("account_id = ?", actor.AccountID).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberListResponse{Error: &e})
		return
	}

	data := make([]Member, 0, len(users))
	for _, user := range users {
		data = append(data, Member{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
	}

	c.JSON(http.StatusOK, MemberListResponse{Data: data})
}

// @Summary		Invite member
// @Description	Creates a new member of the business account. Only the account owner can invite members.
// @Tags			Members
// @Produce		json
// @Success		201		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		403		{object}	MemberResponse
// @Param			request	body		MemberEditable	true	"Member"
// @Router			/v1/members [post]
func InviteMember(c *gin.Context) {
	actor := requestActor(c)

	if err := businessAccount(actor); err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	if actor.Role != models.RoleOwner {
		e := errForbidden.Error()
		c.JSON(http.StatusForbidden, MemberResponse{Error: &e})
		return
	}

	var editable MemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	role := editable.Role
	if role == "" {
		role = models.RoleUser
	}

	if !slices.Contains([]models.Role{models.RoleUser, models.RoleViewer}, role) {
		e := errMemberRoleInvalid.Error()
		c.JSON(http.StatusBadRequest, MemberResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	user := models.User{
		AccountID: actor.AccountID,
		Name:      editable.Name,
		Email:     editable.Email,
		Password:  hash,
		Role:      role,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	membership := models.AccountUser{
		AccountID: actor.AccountID,
		UserID:    user.ID,
		Role:      role,
	}
	if err := models.DB.Create(&membership).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, MemberResponse{Data: &Member{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}})
}

var errMemberRoleInvalid = errors.New("the role of a member must be USER or VIEWER")

// businessAccount verifies that the actor's account is a business
// account.
func businessAccount(actor actor) error {
	var account models.Account
	if err := models.DB.First(&account, actor.AccountID).Error; err != nil {
		return err
	}

	if account.AccountType != models.AccountTypeBusiness {
		return errMembersBusinessOnly
	}

	return nil
}
