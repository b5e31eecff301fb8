package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
)

// RegisterFundingRoutes registers the routes for funding with
// the RouterGroup that is passed.
func RegisterFundingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsFunding)
	r.GET("", GetFunding)
	r.OPTIONS("/sync", OptionsFundingSync)
	r.POST("/sync", SyncFunding)
}

type FundingState struct {
	LastFundedMonth *types.Month `json:"lastFundedMonth" example:"2025-03"` // The funding watermark, null before the first sync
}

type FundingResponse struct {
	Data  *FundingState `json:"data"`  // The funding state
	Error *string       `json:"error"` // The error, if any occurred
}

type SyncResponse struct {
	Data  *ledger.SyncResult `json:"data"`  // The result of the funding pass
	Error *string            `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funding
// @Success		204
// @Router			/v1/funding [options]
func OptionsFunding(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funding
// @Success		204
// @Router			/v1/funding/sync [options]
func OptionsFundingSync(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get funding state
// @Description	Returns the current funding watermark
// @Tags			Funding
// @Produce		json
// @Success		200	{object}	FundingResponse
// @Failure		500	{object}	FundingResponse
// @Router			/v1/funding [get]
func GetFunding(c *gin.Context) {
	month, exists, err := ledger.LastFundedMonth(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FundingResponse{
			Error: &e,
		})
		return
	}

	data := FundingState{}
	if exists {
		data.LastFundedMonth = &month
	}

	c.JSON(http.StatusOK, FundingResponse{Data: &data})
}

// @Summary		Sync funding
// @Description	Applies funding for all elapsed months and advances the watermark. Safe to call on a schedule, repeated calls within the same month are no-ops.
// @Tags			Funding
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		500	{object}	SyncResponse
// @Router			/v1/funding/sync [post]
func SyncFunding(c *gin.Context) {
	result, err := ledger.SyncFunding(models.DB, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SyncResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SyncResponse{Data: &result})
}
