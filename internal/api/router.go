package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/csecompass/catalog/docs"
	"github.com/csecompass/catalog/internal/api/handler"
	appmiddleware "github.com/csecompass/catalog/internal/api/middleware"
	"github.com/csecompass/catalog/internal/api/web"
	"github.com/csecompass/catalog/internal/core/ports"
)

// readMethods are the only methods the catalog serves. Every route is
// registered for all of them.
var readMethods = []string{http.MethodGet, http.MethodHead}

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Resources ports.ResourceService
	Roadmaps  ports.RoadmapService
	// Pingers are checked by the readiness check, keyed by dependency name.
	// A failing optional pinger reports degraded but keeps the service ready.
	Pingers         map[string]ports.Pinger
	OptionalPingers map[string]ports.Pinger
	Renderer        *web.Renderer
	Logger          zerolog.Logger
	// Registry receives the HTTP metrics. Nil uses the Prometheus default
	// registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	if d.Renderer != nil {
		e.Renderer = d.Renderer
	}

	promCfg := echoprometheus.MiddlewareConfig{
		Namespace: "compass",
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	handlerCfg := echoprometheus.HandlerConfig{}
	if d.Registry != nil {
		promCfg.Registerer = d.Registry
		handlerCfg.Gatherer = d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))
	e.Use(appmiddleware.AllowMethods(readMethods...))

	resourceHandler := handler.NewResourceHandler(d.Resources)
	roadmapHandler := handler.NewRoadmapHandler(d.Roadmaps)

	// --- Pages ---
	// Every page view fetches fresh content; only the assets are cacheable.
	noCache := appmiddleware.CacheControl("no-cache")
	e.Match(readMethods, "/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/resources")
	})
	e.Match(readMethods, "/resources", resourceHandler.Page, noCache)
	e.Match(readMethods, "/resources/:id", resourceHandler.DetailPage, noCache)
	e.Match(readMethods, "/roadmaps", roadmapHandler.Page, noCache)
	e.Match(readMethods, "/roadmaps/:id", roadmapHandler.DetailPage, noCache)
	e.Match(readMethods, "/static/*", echo.StaticDirectoryHandler(web.StaticFS(), false),
		appmiddleware.CacheControl("public, max-age=86400"))

	// --- JSON API ---
	v1 := e.Group("/api/v1")
	v1.Match(readMethods, "/resources", resourceHandler.List)
	v1.Match(readMethods, "/resources/:id", resourceHandler.Get)
	v1.Match(readMethods, "/categories", resourceHandler.Categories)
	v1.Match(readMethods, "/roadmaps", roadmapHandler.List)
	v1.Match(readMethods, "/roadmaps/:id", roadmapHandler.Get)

	// --- Health checks ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Pingers, d.OptionalPingers)

	e.Match(readMethods, "/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.Match(readMethods, "/health/ready", healthDepsHandler.Readiness) // readiness – is the record source up?

	// --- Ops ---
	e.Match(readMethods, "/metrics", echoprometheus.NewHandlerWithConfig(handlerCfg))
	e.Match(readMethods, "/swagger/*", echoSwagger.WrapHandler)

	return e
}
