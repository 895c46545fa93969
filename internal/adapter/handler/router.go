package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/transcript-assistant/pkg/config"
	"github.com/johnquangdev/transcript-assistant/pkg/jwt"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	transcriptHandler *Transcript
	analysisHandler   *Analysis
	webhookHandler    *AIWebhookHandler
	authMW            echo.MiddlewareFunc
	scopeMW           func(scope string) echo.MiddlewareFunc
	checks            map[string]HealthCheck
}

// RouterDeps groups the handlers and middleware of the router. AuthMW and
// ScopeMW may be nil, in which case the API is served without authentication.
type RouterDeps struct {
	Transcript *Transcript
	Analysis   *Analysis
	Webhook    *AIWebhookHandler
	AuthMW     echo.MiddlewareFunc
	ScopeMW    func(scope string) echo.MiddlewareFunc
	Checks     map[string]HealthCheck
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, deps RouterDeps) *Router {
	return &Router{
		cfg:               cfg,
		transcriptHandler: deps.Transcript,
		analysisHandler:   deps.Analysis,
		webhookHandler:    deps.Webhook,
		authMW:            deps.AuthMW,
		scopeMW:           deps.ScopeMW,
		checks:            deps.Checks,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")
	rt.setupWebhookRoutes(v1)

	api := v1.Group("")
	if rt.authMW != nil {
		api.Use(rt.authMW)
	}
	rt.setupTranscriptRoutes(api)
	rt.setupAnalysisRoutes(api)
}

// setupTranscriptRoutes configures transcript routes
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcripts := g.Group("/transcripts")
	if rt.transcriptHandler == nil {
		transcripts.Any("*", rt.notImplemented)
		return
	}
	transcripts.POST("", rt.transcriptHandler.Create, rt.scope(jwt.ScopeTranscriptsWrite))
	transcripts.POST("/document", rt.transcriptHandler.CreateFromDocument, rt.scope(jwt.ScopeTranscriptsWrite))
	transcripts.GET("/:id", rt.transcriptHandler.Get, rt.scope(jwt.ScopeTranscriptsRead))
	transcripts.DELETE("/:id", rt.transcriptHandler.Delete, rt.scope(jwt.ScopeTranscriptsWrite))
}

// setupAnalysisRoutes configures analysis and pricing routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	if rt.analysisHandler == nil {
		g.Any("/cost", rt.notImplemented)
		return
	}
	g.POST("/transcripts/:id/analysis", rt.analysisHandler.Analyze, rt.scope(jwt.ScopeAnalysesWrite))
	g.GET("/transcripts/:id/analysis", rt.analysisHandler.Latest, rt.scope(jwt.ScopeTranscriptsRead))
	g.GET("/transcripts/:id/analyses", rt.analysisHandler.List, rt.scope(jwt.ScopeTranscriptsRead))
	g.POST("/cost", rt.analysisHandler.Cost)
}

// setupWebhookRoutes configures provider callbacks; they authenticate
// with their own shared secret
func (rt *Router) setupWebhookRoutes(g *echo.Group) {
	if rt.webhookHandler == nil {
		return
	}
	g.POST("/webhooks/assemblyai", rt.webhookHandler.HandleAssemblyAIWebhook)
}

func (rt *Router) scope(scope string) echo.MiddlewareFunc {
	if rt.authMW == nil || rt.scopeMW == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return rt.scopeMW(scope)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not configured",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status of the server and its dependencies
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(rt.checks))
	for name, check := range rt.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	environment := ""
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	return c.JSON(status, map[string]interface{}{
		"status":       overall,
		"environment":  environment,
		"dependencies": deps,
		"time":         time.Now().UTC().Format(time.RFC3339),
	})
}
