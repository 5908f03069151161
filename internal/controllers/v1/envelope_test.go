package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	"github.com/cashpilot/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetEnvelopes() {
	session := suite.register(v1.RegisterEditable{})

	suite.submitPlan(session, v1.PlanEditable{
		Month:  5,
		Year:   2026,
		Income: decimal.NewFromInt(1000),
		Categories: []v1.PlanCategoryEditable{
			{Name: "Food", Budget: decimal.NewFromInt(500)},
			{Name: "Rent", Budget: decimal.NewFromInt(400)},
		},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/envelopes?month=5&year=2026", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeSpent() {
	session := suite.register(v1.RegisterEditable{})

	allocation := suite.submitPlan(session, v1.PlanEditable{
		Month:  5,
		Year:   2026,
		Income: decimal.NewFromInt(1000),
		Categories: []v1.PlanCategoryEditable{
			{Name: "Food", Budget: decimal.NewFromInt(500)},
		},
	})
	envelope := allocation.Envelopes[0]

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/envelopes/%s/spent", envelope.ID), v1.SpentEditable{
		Spent: decimal.NewFromInt(200),
	}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SpentUpdateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Spent.Equal(decimal.NewFromInt(200)))
	suite.Assert().Nil(response.Alert)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeSpentOverBudget() {
	session := suite.register(v1.RegisterEditable{})

	allocation := suite.submitPlan(session, v1.PlanEditable{
		Month:  5,
		Year:   2026,
		Income: decimal.NewFromInt(1000),
		Categories: []v1.PlanCategoryEditable{
			{Name: "Food", Budget: decimal.NewFromInt(500)},
		},
	})
	envelope := allocation.Envelopes[0]

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/envelopes/%s/spent", envelope.ID), v1.SpentEditable{
		Spent: decimal.NewFromInt(510),
	}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SpentUpdateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Alert)
	suite.Assert().True(response.Alert.Overamount.Equal(decimal.NewFromInt(10)), "overamount is %s, expected 10", response.Alert.Overamount)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeSpentOtherAccount() {
	session := suite.register(v1.RegisterEditable{})

	allocation := suite.submitPlan(session, v1.PlanEditable{
		Month:  5,
		Year:   2026,
		Income: decimal.NewFromInt(1000),
		Categories: []v1.PlanCategoryEditable{
			{Name: "Food", Budget: decimal.NewFromInt(500)},
		},
	})
	envelope := allocation.Envelopes[0]

	other := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/envelopes/%s/spent", envelope.ID), v1.SpentEditable{
		Spent: decimal.NewFromInt(200),
	}, suite.authHeaders(other))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// The envelope is untouched
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/envelopes?month=5&year=2026", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Spent.IsZero(), "spent is %s, expected 0", response.Data[0].Spent)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeSpentErrors() {
	session := suite.register(v1.RegisterEditable{})

	allocation := suite.submitPlan(session, v1.PlanEditable{
		Month:  5,
		Year:   2026,
		Income: decimal.NewFromInt(1000),
		Categories: []v1.PlanCategoryEditable{
			{Name: "Food", Budget: decimal.NewFromInt(500)},
		},
	})
	envelope := allocation.Envelopes[0]

	// Negative spent is rejected
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/envelopes/%s/spent", envelope.ID), v1.SpentEditable{
		Spent: decimal.NewFromInt(-1),
	}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// Unknown envelope
	recorder = test.Request(suite.T(), http.MethodPatch, "/v1/envelopes/b2709ae0-7b02-4b01-bd3e-0a1a0e0a3c2b/spent", v1.SpentEditable{
		Spent: decimal.NewFromInt(1),
	}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// Invalid UUID
	recorder = test.Request(suite.T(), http.MethodPatch, "/v1/envelopes/not-a-uuid/spent", v1.SpentEditable{
		Spent: decimal.NewFromInt(1),
	}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
