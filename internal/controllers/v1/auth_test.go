package v1_test

import (
	"net/http"

	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	"github.com/cashpilot/backend/internal/models"
	"github.com/cashpilot/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	session := suite.register(v1.RegisterEditable{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct-horse-1",
		Currency: "USD",
	})

	suite.Assert().Equal("jane@example.com", session.User.Email)
	suite.Assert().Equal(models.RoleOwner, session.User.Role)
	suite.Assert().Equal("USD", session.User.Currency)
	suite.Assert().Equal(models.AccountTypePersonal, session.User.Type)
	suite.Assert().NotEmpty(session.Tokens.AccessToken)
	suite.Assert().NotEmpty(session.Tokens.RefreshToken)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	suite.register(v1.RegisterEditable{Email: "jane@example.com"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterEditable{
		Name:     "Jane Again",
		Email:    "jane@example.com",
		Password: "correct-horse-1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRegisterEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	suite.register(v1.RegisterEditable{Email: "jane@example.com", Password: "correct-horse-1"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginEditable{
		Email:    "jane@example.com",
		Password: "correct-horse-1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.Tokens.AccessToken)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	suite.register(v1.RegisterEditable{Email: "jane@example.com", Password: "correct-horse-1"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginEditable{
		Email:    "jane@example.com",
		Password: "wrong-horse",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginEditable{
		Email:    "nobody@example.com",
		Password: "correct-horse-1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestRefresh() {
	session := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/refresh", v1.RefreshEditable{
		RefreshToken: session.Tokens.RefreshToken,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(session.User.ID, response.Data.User.ID)
}

func (suite *TestSuiteStandard) TestRefreshWithAccessToken() {
	session := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/refresh", v1.RefreshEditable{
		RefreshToken: session.Tokens.AccessToken,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestProtectedRoutesRequireToken() {
	for _, path := range []string{
		"/v1/categories",
		"/v1/allocations",
		"/v1/alerts",
		"/v1/transactions",
		"/v1/analytics/summary",
		"/v1/members",
	} {
		recorder := test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	}
}
