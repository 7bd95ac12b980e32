package server

import (
	"io"
	"os"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nobelproxy/docs"
	"nobelproxy/internal/config"
	handlers "nobelproxy/internal/http/handler"
	"nobelproxy/internal/http/middleware"
	"nobelproxy/internal/service"
)

// Options wires a Fiber app. Registry may be nil when metrics are disabled.
type Options struct {
	Config    *config.AppConfig
	Service   service.NobelService
	Registry  *prometheus.Registry
	AccessLog io.Writer
}

// New builds the HTTP app: global error handler, middleware chain, proxy
// routes under the configured prefix, Swagger UI and, optionally, /metrics.
func New(opts Options) (*fiber.App, error) {
	cfg := opts.Config

	app := fiber.New(fiber.Config{
		AppName:               "nobelproxy",
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimitBytes,
		DisableStartupMessage: true,
	})

	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(accessLog, cfg.Location()))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.CORS())
	app.Use(middleware.JSONBody())

	if cfg.MetricsEnabled && opts.Registry != nil {
		prom, err := middleware.NewPrometheusMiddleware(opts.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	handlers.RegisterRoutes(app, cfg.APIPrefix, opts.Service)

	// SwaggerInfo is package-global; it is written once here and only read by handlers.
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, nil
}
