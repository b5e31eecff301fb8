package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelope)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.DELETE("/:id", ArchiveEnvelope)
		r.POST("/:id/spend", Spend)
		r.POST("/:id/deposit", Deposit)
		r.GET("/:id/transactions", GetEnvelopeTransactions)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Envelope{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create envelope
// @Description	Creates a new envelope. The balance starts out at the base amount.
// @Tags			Envelopes
// @Produce		json
// @Success		201			{object}	EnvelopeResponse
// @Failure		400			{object}	EnvelopeResponse
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes [post]
func CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	envelope, err := ledger.CreateEnvelope(models.DB, editable.Name, editable.BaseAmount, editable.Mode)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusCreated, EnvelopeResponse{Data: &data})
}

// @Summary		Get envelopes
// @Description	Returns a list of envelopes. Archived envelopes are only returned when the archived parameter is set.
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		400	{object}	EnvelopeListResponse
// @Router			/v1/envelopes [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			mode		query	string	false	"Filter by funding mode"
// @Param			archived	query	bool	false	"Is the envelope archived?"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first envelope returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of envelopes to return. Defaults to 50."
func GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	// Without an explicit archived parameter, only active envelopes
	// are listed
	if !slices.Contains(setFields, "Archived") {
		q = q.Where("archived = ?", false)
	}

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 envelopes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var envelopes []models.Envelope
	err = q.Find(&envelopes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Envelope, 0, len(envelopes))
	for _, envelope := range envelopes {
		data = append(data, newEnvelope(c, envelope))
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	EnvelopeResponse
// @Failure		404	{object}	EnvelopeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// @Summary		Archive envelope
// @Description	Archives an envelope. The envelope and its history are kept. Archiving an archived envelope is a no-op.
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [delete]
func ArchiveEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = ledger.ArchiveEnvelope(models.DB, uri.ID.UUID, time.Now())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Record spend
// @Description	Takes the amount out of the envelope and records a spend transaction. Overdrafts are allowed.
// @Tags			Envelopes
// @Produce		json
// @Success		201		{object}	RecordResponse
// @Failure		400		{object}	RecordResponse
// @Failure		404		{object}	RecordResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			record	body		RecordEditable	true	"Amount and optional note"
// @Router			/v1/envelopes/{id}/spend [post]
func Spend(c *gin.Context) {
	recordOperation(c, ledger.RecordSpend)
}

// @Summary		Record deposit
// @Description	Puts the amount into the envelope and records a deposit transaction
// @Tags			Envelopes
// @Produce		json
// @Success		201		{object}	RecordResponse
// @Failure		400		{object}	RecordResponse
// @Failure		404		{object}	RecordResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			record	body		RecordEditable	true	"Amount and optional note"
// @Router			/v1/envelopes/{id}/deposit [post]
func Deposit(c *gin.Context) {
	recordOperation(c, ledger.RecordDeposit)
}

func recordOperation(c *gin.Context, op ledger.RecordFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &e,
		})
		return
	}

	var editable RecordEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &e,
		})
		return
	}

	envelope, transaction, err := op(models.DB, uri.ID.UUID, editable.Amount, editable.Note)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &e,
		})
		return
	}

	data := Record{
		Envelope:    newEnvelope(c, envelope),
		Transaction: newTransaction(c, transaction),
	}
	c.JSON(http.StatusCreated, RecordResponse{Data: &data})
}

// @Summary		Get envelope transactions
// @Description	Returns the transactions of the envelope in chronological order
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		404	{object}	TransactionListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id}/transactions [get]
func GetEnvelopeTransactions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	transactions, err := envelope.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(len(data)),
			Offset: 0,
			Limit:  -1,
		},
	})
}
