package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/money"
)

// EnvelopeEditable represents all user configurable parameters of an envelope
type EnvelopeEditable struct {
	Name       string              `json:"name" example:"Dining" default:""`     // Name of the envelope
	BaseAmount money.Amount        `json:"baseAmount" example:"50.00"`           // The amount the envelope is funded with per month
	Mode       models.EnvelopeMode `json:"mode" example:"reset" default:"reset"` // Funding mode, reset or rollover
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/3b1ea324-d438-4419-882a-2fc91d71772f"`                      // The envelope itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/envelopes/3b1ea324-d438-4419-882a-2fc91d71772f/transactions"` // Transactions of this envelope
	Spend        string `json:"spend" example:"https://example.com/api/v1/envelopes/3b1ea324-d438-4419-882a-2fc91d71772f/spend"`               // Endpoint to record a spend
	Deposit      string `json:"deposit" example:"https://example.com/api/v1/envelopes/3b1ea324-d438-4419-882a-2fc91d71772f/deposit"`           // Endpoint to record a deposit
}

type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Balance    money.Amount  `json:"balance" example:"37.66"`  // Current spendable amount
	Archived   bool          `json:"archived" example:"false"` // Is the envelope archived?
	ArchivedAt *time.Time    `json:"archivedAt"`               // Time the envelope was archived, if it is
	Links      EnvelopeLinks `json:"links"`
}

func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			Name:       model.Name,
			BaseAmount: model.BaseAmount,
			Mode:       model.Mode,
		},
		Balance:    model.Balance,
		Archived:   model.Archived,
		ArchivedAt: model.ArchivedAt,
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/envelopes/%s/transactions", url, model.ID),
			Spend:        fmt.Sprintf("%s/v1/envelopes/%s/spend", url, model.ID),
			Deposit:      fmt.Sprintf("%s/v1/envelopes/%s/deposit", url, model.ID),
		},
	}
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // Data for the envelope
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

// RecordEditable is the request body for spend and deposit operations.
type RecordEditable struct {
	Amount money.Amount `json:"amount" example:"12.34"`          // The amount to move, must be positive
	Note   string       `json:"note" example:"Lunch" default:""` // Optional note for the transaction
}

// Record is the result of a spend or deposit operation.
type Record struct {
	Envelope    Envelope    `json:"envelope"`    // The envelope after the operation
	Transaction Transaction `json:"transaction"` // The transaction that was recorded
}

type RecordResponse struct {
	Data  *Record `json:"data"`                                                          // The result of the operation
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Mode     string `form:"mode"`                       // By funding mode
	Archived bool   `form:"archived"`                   // Is the envelope archived?
	Search   string `form:"search" filterField:"false"` // Search for this text in the name
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first envelope returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of envelopes to return. Defaults to 50.
}

func (f EnvelopeQueryFilter) model() (models.Envelope, error) {
	mode := models.EnvelopeMode(f.Mode)
	if f.Mode != "" && !mode.Valid() {
		return models.Envelope{}, models.ErrEnvelopeModeInvalid
	}

	return models.Envelope{
		Mode:     mode,
		Archived: f.Archived,
	}, nil
}
