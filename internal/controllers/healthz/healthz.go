package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
