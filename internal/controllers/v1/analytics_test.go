package v1_test

import (
	"net/http"

	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	internal_uuid "github.com/cashpilot/backend/internal/uuid"
	"github.com/cashpilot/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetAnalyticsSummary() {
	session := suite.register(v1.RegisterEditable{})

	allocation := suite.submitPlan(session, v1.PlanEditable{
		Month:  3,
		Year:   2026,
		Income: decimal.NewFromInt(1000),
		Categories: []v1.PlanCategoryEditable{
			{Name: "Food", Budget: decimal.NewFromInt(500)},
			{Name: "Rent", Budget: decimal.NewFromInt(400)},
		},
	})

	suite.recordExpense(session, v1.TransactionEditable{
		EnvelopeID: internal_uuid.UUID{UUID: allocation.Envelopes[0].ID},
		Amount:     decimal.NewFromInt(300),
	})
	suite.recordExpense(session, v1.TransactionEditable{
		EnvelopeID: internal_uuid.UUID{UUID: allocation.Envelopes[1].ID},
		Amount:     decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analytics/summary", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalyticsSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Require().Len(response.Data.Trends, 1)
	trend := response.Data.Trends[0]
	suite.Assert().Equal(3, trend.Month)
	suite.Assert().True(trend.Income.Equal(decimal.NewFromInt(1000)), "income is %s, expected 1000", trend.Income)
	suite.Assert().True(trend.Expenses.Equal(decimal.NewFromInt(400)), "expenses are %s, expected 400", trend.Expenses)
	suite.Assert().True(trend.Net.Equal(decimal.NewFromInt(600)), "net is %s, expected 600", trend.Net)

	suite.Require().Len(response.Data.CategoryBreakdown, 2)
	suite.Require().NotNil(response.Data.TopExpenseCategory)
	suite.Assert().Equal("Food", response.Data.TopExpenseCategory.CategoryName)
	suite.Assert().True(response.Data.TopExpenseCategory.Total.Equal(decimal.NewFromInt(300)))

	// 600 of 1000 not spent
	suite.Assert().True(response.Data.SavingsRate.Equal(decimal.NewFromInt(60)), "savings rate is %s, expected 60", response.Data.SavingsRate)
}

func (suite *TestSuiteStandard) TestGetAnalyticsSummaryEmpty() {
	session := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analytics/summary", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalyticsSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Trends, 0)
	suite.Assert().Nil(response.Data.TopExpenseCategory)
	suite.Assert().True(response.Data.SavingsRate.IsZero())
}

func (suite *TestSuiteStandard) TestGetAnalyticsSummaryWindow() {
	session := suite.register(v1.RegisterEditable{})

	for month := 1; month <= 8; month++ {
		suite.submitPlan(session, v1.PlanEditable{
			Month:  month,
			Year:   2026,
			Income: decimal.NewFromInt(100),
		})
	}

	// Defaults to the six most recent months, oldest first
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analytics/summary", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalyticsSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data.Trends, 6)
	suite.Assert().Equal(3, response.Data.Trends[0].Month)
	suite.Assert().Equal(8, response.Data.Trends[5].Month)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/analytics/summary?months=2", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data.Trends, 2)
	suite.Assert().Equal(7, response.Data.Trends[0].Month)
}
