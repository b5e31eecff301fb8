package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsTransactionList() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/transactions", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

// Transactions are append only, they cannot be created or deleted
// directly.
func (suite *TestSuiteStandard) TestTransactionsReadOnly() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", map[string]any{"amount": "1.00"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)

	envelope := suite.createTestEnvelope(models.Envelope{})
	transaction := suite.createTestTransaction(models.Transaction{
		EnvelopeID: envelope.ID,
		Amount:     amount(suite.T(), "1.00"),
		Kind:       models.KindSpend,
	})

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	envelope := suite.createTestEnvelope(models.Envelope{Balance: amount(suite.T(), "100.00")})
	other := suite.createTestEnvelope(models.Envelope{})

	_ = suite.createTestTransaction(models.Transaction{
		EnvelopeID: envelope.ID,
		Amount:     amount(suite.T(), "10.00"),
		Kind:       models.KindSpend,
		Note:       "groceries run",
	})
	_ = suite.createTestTransaction(models.Transaction{
		EnvelopeID: envelope.ID,
		Amount:     amount(suite.T(), "20.00"),
		Kind:       models.KindDeposit,
		Note:       "payday",
	})
	_ = suite.createTestTransaction(models.Transaction{
		EnvelopeID: other.ID,
		Amount:     amount(suite.T(), "5.00"),
		Kind:       models.KindSpend,
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"kind=spend", 2},
		{"kind=deposit", 1},
		{fmt.Sprintf("envelope=%s", envelope.ID), 2},
		{"note=payday", 1},
		{"search=roceries", 1},
		{"limit=1", 1},
		{"offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "/v1/transactions?"+tt.query, nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidKind() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?kind=transfer", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	envelope := suite.createTestEnvelope(models.Envelope{})
	transaction := suite.createTestTransaction(models.Transaction{
		EnvelopeID: envelope.ID,
		Amount:     amount(suite.T(), "12.34"),
		Kind:       models.KindSpend,
		Note:       "lunch",
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
	suite.Assert().Equal("12.34", response.Data.Amount.String())
	suite.Assert().Equal(envelope.ID, response.Data.EnvelopeID)
	suite.Assert().Contains(response.Data.Links.Envelope, fmt.Sprintf("/v1/envelopes/%s", envelope.ID))
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions/048b061f-3b6b-45ab-b0e9-0f38d2fff0c8", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetTransactionInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
