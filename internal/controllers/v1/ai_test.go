package v1_test

import (
	"net/http"

	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	"github.com/cashpilot/backend/test"
)

func (suite *TestSuiteStandard) TestSuggestWithoutAPIKey() {
	session := suite.register(v1.RegisterEditable{})

	// No GEMINI_API_KEY is configured in tests
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/ai/suggestions", v1.SuggestionEditable{
		Prompt: "suggest a budget for a family of four",
	}, suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestSuggestEmptyBody() {
	session := suite.register(v1.RegisterEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/ai/suggestions", "", suite.authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
