// Package router sets up the gin engine with its middlewares and wires
// the controllers to their routes.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/cashpilot/backend/internal/ai"
	"github.com/cashpilot/backend/internal/auth"
	"github.com/cashpilot/backend/internal/config"
	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	"github.com/cashpilot/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// New sets up the router with its middlewares and all routes.
func New(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(&r.RouterGroup, "debug/pprof")
	}

	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/healthz", GetHealth)
	r.OPTIONS("/healthz", OptionsHealth)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTRefreshSecret)
	google := auth.NewGoogleVerifier(cfg.GoogleClientID)
	aiClient := ai.New(cfg.GeminiAPIKey)

	group := r.Group("/v1")
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
	}

	v1.RegisterAuthRoutes(group.Group("/auth"), issuer, google)

	protected := group.Group("")
	protected.Use(Authenticate(issuer))

	v1.RegisterCategoryRoutes(protected.Group("/categories"))
	v1.RegisterAllocationRoutes(protected.Group("/allocations"))
	v1.RegisterEnvelopeRoutes(protected.Group("/envelopes"))
	v1.RegisterTransactionRoutes(protected.Group("/transactions"))
	v1.RegisterAlertRoutes(protected.Group("/alerts"))
	v1.RegisterAnalyticsRoutes(protected.Group("/analytics"))
	v1.RegisterMemberRoutes(protected.Group("/members"))
	v1.RegisterAIRoutes(protected.Group("/ai"), aiClient)

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/healthz"`
	Version string `json:"version" example:"https://example.com/version"`
	V1      string `json:"v1" example:"https://example.com/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing the top level endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "/healthz",
			Version: "/version",
			V1:      "/v1",
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

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// @Summary		Health
// @Description	Returns the health of the backend, including its database connection
// @Tags			General
// @Success		200	{object}	HealthResponse
// @Failure		500	{object}	HealthResponse
// @Router			/healthz [get]
func GetHealth(c *gin.Context) {
	if err := health(); err != nil {
		c.JSON(http.StatusInternalServerError, HealthResponse{Status: err.Error()})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func OptionsHealth(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

func health() error {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.0.0"`
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

func OptionsVersion(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Auth         string `json:"auth" example:"https://example.com/v1/auth"`
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`
	Allocations  string `json:"allocations" example:"https://example.com/v1/allocations"`
	Envelopes    string `json:"envelopes" example:"https://example.com/v1/envelopes"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"`
	Alerts       string `json:"alerts" example:"https://example.com/v1/alerts"`
	Analytics    string `json:"analytics" example:"https://example.com/v1/analytics/summary"`
	Members      string `json:"members" example:"https://example.com/v1/members"`
	AI           string `json:"ai" example:"https://example.com/v1/ai/suggestions"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Auth:         "/v1/auth",
			Categories:   "/v1/categories",
			Allocations:  "/v1/allocations",
			Envelopes:    "/v1/envelopes",
			Transactions: "/v1/transactions",
			Alerts:       "/v1/alerts",
			Analytics:    "/v1/analytics/summary",
			Members:      "/v1/members",
			AI:           "/v1/ai/suggestions",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}
