package v1_test

import (
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsFunding() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/funding", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "/v1/funding/sync", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetFundingFresh() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/funding", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FundingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Data.LastFundedMonth, "the watermark must be null before the first sync")
}

func (suite *TestSuiteStandard) TestSyncFunding() {
	_ = suite.createTestEnvelope(models.Envelope{
		Balance:    amount(suite.T(), "10.00"),
		BaseAmount: amount(suite.T(), "100.00"),
	})

	// The first sync only establishes the watermark
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/funding/sync", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var syncResponse v1.SyncResponse
	test.DecodeResponse(suite.T(), &recorder, &syncResponse)

	suite.Require().NotNil(syncResponse.Data)
	suite.Assert().True(syncResponse.Data.FirstRun)
	suite.Assert().Equal(0, syncResponse.Data.Periods)

	// Afterwards the watermark is set
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/funding", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FundingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().NotNil(response.Data.LastFundedMonth)
	suite.Assert().True(syncResponse.Data.Month.Equal(*response.Data.LastFundedMonth))

	// Syncing again within the same month is a no-op
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/funding/sync", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &syncResponse)

	suite.Require().NotNil(syncResponse.Data)
	suite.Assert().False(syncResponse.Data.FirstRun)
	suite.Assert().Equal(0, syncResponse.Data.Periods)
	suite.Assert().Equal(0, syncResponse.Data.Funded)
}
