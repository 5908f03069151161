package v1_test

import (
	"net/http"

	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	"github.com/cashpilot/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	session := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Food"}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Food", response.Data.Name)

	// The same name resolves to the same category, case-insensitively
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "fOOD"}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var second v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &second)
	suite.Require().NotNil(second.Data)
	suite.Assert().Equal(response.Data.ID, second.Data.ID)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	session := suite.register(v1.RegisterEditable{})

	suite.submitPlan(session, v1.PlanEditable{
		Month:  4,
		Year:   2026,
		Income: decimal.NewFromInt(1000),
		Categories: []v1.PlanCategoryEditable{
			{Name: "Rent", Budget: decimal.NewFromInt(400)},
			{Name: "Food", Budget: decimal.NewFromInt(500)},
		},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Food", response.Data[0].Name, "categories are sorted by name")
}

func (suite *TestSuiteStandard) TestCreateCategoryEmptyName() {
	session := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", map[string]string{"name": "   "}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
