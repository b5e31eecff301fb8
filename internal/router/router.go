// Package router sets up the gin engine and attaches the API routes.
package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/controllers/healthz"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router with all middlewares.
func Config(url *url.URL) (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "This HTTP method is not allowed for the endpoint you called"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is
// passed in. Separating this from Config allows to attach them to
// different paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// API v1 setup
	v1Group := group.Group("/v1")
	v1.RegisterRootRoutes(v1Group)
	v1.RegisterEnvelopeRoutes(v1Group.Group("/envelopes"))
	v1.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	v1.RegisterFundingRoutes(v1Group.Group("/funding"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"` // Application health endpoint
	Version string `json:"version" example:"https://example.com/api/version"` // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`           // List endpoint for all v1 endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}
