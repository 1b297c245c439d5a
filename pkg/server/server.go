package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ImageGuard/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	HealthPath  = "/health"
	MetricsPath = "/metrics"
)

type Server interface {
	Run() error
	Shutdown() error
}

type BaseServer struct {
	config     config.Config
	logger     *logrus.Logger
	router     *fiber.App
	metricsApp *fiber.App
}

func NewBaseServer(cfg config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReduceMemoryUsage:     true,
		Network:               fiber.NetworkTCP,
		BodyLimit:             4 * 1024 * 1024,
		ReadTimeout:           60 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
	})
	r.Use(recover.New())

	r.Server().NoDefaultServerHeader = true

	return &BaseServer{
		config: cfg,
		logger: logger,
		router: r,
	}
}

func (s *BaseServer) Router() *fiber.App {
	return s.router
}

func (s *BaseServer) setupHealthCheck() {
	s.router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}

// newMetricsApp serves the default prometheus gatherer on its own port.
func (s *BaseServer) newMetricsApp() *fiber.App {
	metricsApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	metricsApp.Use(recover.New())

	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	metricsApp.Get(MetricsPath, func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	})
	return metricsApp
}

// RunMetrics blocks serving /metrics until ShutdownMetrics is called. It
// returns nil right away when metrics are disabled.
func (s *BaseServer) RunMetrics() error {
	if !s.config.Metrics.Enabled {
		s.logger.Info("prometheus metrics are disabled by configuration")
		return nil
	}
	if s.metricsApp == nil {
		s.metricsApp = s.newMetricsApp()
	}
	addr := fmt.Sprintf(":%d", s.config.Server.MetricsPort)
	s.logger.WithField("addr", addr).Info("starting metrics server")
	return s.metricsApp.Listen(addr)
}

func (s *BaseServer) ShutdownMetrics() error {
	if s.metricsApp == nil {
		return nil
	}
	return s.metricsApp.Shutdown()
}

func (s *BaseServer) Shutdown() error {
	return errors.Join(s.router.Shutdown(), s.ShutdownMetrics())
}
