package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterRootRoutes registers the routes for the v1 API root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Envelopes    string `json:"envelopes" example:"https://example.com/api/v1/envelopes"`       // URL of the envelope collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of the transaction collection endpoint
	Funding      string `json:"funding" example:"https://example.com/api/v1/funding"`           // URL of the funding state endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Envelopes:    url + "/v1/envelopes",
			Transactions: url + "/v1/transactions",
			Funding:      url + "/v1/funding",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
