package v1

import (
	"errors"
	"net/http"

	"github.com/cashpilot/backend/internal/auth"
	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type authController struct {
	issuer *auth.Issuer
	google *auth.GoogleVerifier
}

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, issuer *auth.Issuer, google *auth.GoogleVerifier) {
	controller := authController{issuer: issuer, google: google}

	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", controller.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", controller.Login)

	r.OPTIONS("/refresh", httputil.OptionsPost)
	r.POST("/refresh", controller.Refresh)

	r.OPTIONS("/google", httputil.OptionsPost)
	r.POST("/google", controller.Google)
}

// @Summary		Register
// @Description	Creates a new account with its owner and returns a session
// @Tags			Auth
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			request	body		RegisterEditable	true	"Registration"
// @Router			/v1/auth/register [post]
func (a authController) Register(c *gin.Context) {
	var editable RegisterEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	user, account, err := a.register(editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	tokens, err := a.issuer.Issue(user.ID, account.ID, string(user.Role))
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	session := newSession(user, account, tokens)
	c.JSON(http.StatusCreated, SessionResponse{Data: &session})
}

func (a authController) register(editable RegisterEditable) (models.User, models.Account, error) {
	accountType := editable.AccountType
	if accountType == "" {
		accountType = models.AccountTypePersonal
	}

	currency := editable.Currency
	if currency == "" {
		currency = "EUR"
	}

	accountName := editable.AccountName
	if accountName == "" {
		accountName = editable.Name
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		return models.User{}, models.Account{}, err
	}

	account := models.Account{
		Name:           accountName,
		AccountType:    accountType,
		Currency:       currency,
		OpeningBalance: editable.OpeningBalance,
		CurrentBalance: editable.OpeningBalance,
	}
	if err := models.DB.Create(&account).Error; err != nil {
		return models.User{}, models.Account{}, err
	}

	user := models.User{
		AccountID: account.ID,
		Name:      editable.Name,
		Email:     editable.Email,
		Password:  hash,
		Country:   editable.Country,
		Mobile:    editable.Mobile,
		Role:      models.RoleOwner,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		return models.User{}, models.Account{}, err
	}

	return user, account, nil
}

// @Summary		Login
// @Description	Verifies the credentials and returns a session
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		401		{object}	SessionResponse
// @Param			request	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func (a authController) Login(c *gin.Context) {
	var editable LoginEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	user, err := models.UserByEmail(models.DB, editable.Email)
	if err != nil {
		// Do not leak whether the email exists
		if errors.Is(err, models.ErrResourceNotFound) {
			err = errCredentialsInvalid
		}

		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	if err := auth.VerifyPassword(user.Password, editable.Password); err != nil {
		e := errCredentialsInvalid.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{Error: &e})
		return
	}

	a.respondWithSession(c, http.StatusOK, user)
}

// @Summary		Refresh session
// @Description	Exchanges a valid refresh token for a new token pair
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		401		{object}	SessionResponse
// @Param			request	body		RefreshEditable	true	"Refresh token"
// @Router			/v1/auth/refresh [post]
func (a authController) Refresh(c *gin.Context) {
	var editable RefreshEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	claims, err := a.issuer.ValidateRefresh(editable.RefreshToken)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	var user models.User
	if err := models.DB.First(&user, claims.UserID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	a.respondWithSession(c, http.StatusOK, user)
}

// @Summary		Google login
// @Description	Verifies a Google ID token, creates the user on first login and returns a session
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		401		{object}	SessionResponse
// @Param			request	body		GoogleLoginEditable	true	"Google ID token"
// @Router			/v1/auth/google [post]
func (a authController) Google(c *gin.Context) {
	var editable GoogleLoginEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	profile, err := a.google.Verify(c.Request.Context(), editable.IDToken)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	user, err := models.UserByEmail(models.DB, profile.Email)
	if errors.Is(err, models.ErrResourceNotFound) {
		user, _, err = a.register(RegisterEditable{
			Name:     profile.Name,
			Email:    profile.Email,
			Password: uuid.NewString(),
		})
		if err == nil {
			err = models.DB.Model(&user).Updates(map[string]any{
				"google_user": true,
				"picture":     profile.Picture,
			}).Error
		}
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	a.respondWithSession(c, http.StatusOK, user)
}

func (a authController) respondWithSession(c *gin.Context, httpStatus int, user models.User) {
	var account models.Account
	if err := models.DB.First(&account, user.AccountID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	tokens, err := a.issuer.Issue(user.ID, account.ID, string(user.Role))
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	session := newSession(user, account, tokens)
	c.JSON(httpStatus, SessionResponse{Data: &session})
}
