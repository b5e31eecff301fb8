package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/money"
	ledger_uuid "github.com/pocketledger/backend/internal/uuid"
)

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`  // The transaction itself
	Envelope string `json:"envelope" example:"https://example.com/api/v1/envelopes/3b1ea324-d438-4419-882a-2fc91d71772f"` // The envelope the transaction belongs to
}

type Transaction struct {
	models.DefaultModel
	EnvelopeID uuid.UUID              `json:"envelopeId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the envelope
	Amount     money.Amount           `json:"amount" example:"12.34"`                                    // Amount of the transaction, always positive
	Kind       models.TransactionKind `json:"kind" example:"spend"`                                      // spend or deposit
	Note       string                 `json:"note" example:"Lunch"`                                      // Note for the transaction
	Links      TransactionLinks       `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		EnvelopeID:   model.EnvelopeID,
		Amount:       model.Amount,
		Kind:         model.Kind,
		Note:         model.Note,
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Envelope: fmt.Sprintf("%s/v1/envelopes/%s", url, model.EnvelopeID),
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionQueryFilter struct {
	EnvelopeID ledger_uuid.UUID `form:"envelope"`                   // By ID of the envelope
	Kind       string           `form:"kind"`                       // By transaction kind
	Note       string           `form:"note" filterField:"false"`   // By note
	Search     string           `form:"search" filterField:"false"` // Search for this text in the note
	Offset     uint             `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit      int              `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	kind := models.TransactionKind(f.Kind)
	if f.Kind != "" && !kind.Valid() {
		return models.Transaction{}, models.ErrTransactionKindInvalid
	}

	return models.Transaction{
		EnvelopeID: f.EnvelopeID.UUID,
		Kind:       kind,
	}, nil
}
