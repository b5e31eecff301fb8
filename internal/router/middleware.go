package router

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
)

// URLMiddleware adds the base URL the API is served from to the
// context so that handlers can construct absolute links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}
