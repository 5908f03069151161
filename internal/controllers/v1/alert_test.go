package v1_test

import (
	"net/http"

	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	internal_uuid "github.com/cashpilot/backend/internal/uuid"
	"github.com/cashpilot/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetAlerts() {
	session := suite.register(v1.RegisterEditable{})
	allocation := suite.planWithFood(session, 100)
	envelopeID := allocation.Envelopes[0].ID

	// Two breaches, two alerts
	suite.recordExpense(session, v1.TransactionEditable{
		EnvelopeID: internal_uuid.UUID{UUID: envelopeID},
		Amount:     decimal.NewFromInt(130),
	})
	suite.recordExpense(session, v1.TransactionEditable{
		EnvelopeID: internal_uuid.UUID{UUID: envelopeID},
		Amount:     decimal.NewFromInt(20),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/alerts", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AlertListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].SpentAmount.Equal(decimal.NewFromInt(150)) || response.Data[1].SpentAmount.Equal(decimal.NewFromInt(150)))
}

func (suite *TestSuiteStandard) TestGetAlertsEmpty() {
	session := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/alerts", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AlertListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestAlertsAreScopedToAccount() {
	one := suite.register(v1.RegisterEditable{})
	two := suite.register(v1.RegisterEditable{})

	allocation := suite.planWithFood(one, 100)
	suite.recordExpense(one, v1.TransactionEditable{
		EnvelopeID: internal_uuid.UUID{UUID: allocation.Envelopes[0].ID},
		Amount:     decimal.NewFromInt(130),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/alerts", "", suite.authHeaders(two))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AlertListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}
