package v1_test

import (
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/envelopes", response.Links.Envelopes)
	suite.Assert().Equal("http://example.com/v1/transactions", response.Links.Transactions)
	suite.Assert().Equal("http://example.com/v1/funding", response.Links.Funding)
}

func (suite *TestSuiteStandard) TestOptionsRoot() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}
