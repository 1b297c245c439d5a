package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	appModeration "github.com/NeuralTrust/ImageGuard/pkg/app/moderation"
	"github.com/NeuralTrust/ImageGuard/pkg/config"
	handlers "github.com/NeuralTrust/ImageGuard/pkg/handlers/http"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/aliyun"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/auditlogs"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/httpx"
	infraLogger "github.com/NeuralTrust/ImageGuard/pkg/infra/logger"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ImageGuard/pkg/server"
	"github.com/NeuralTrust/ImageGuard/pkg/server/middleware"
	"github.com/NeuralTrust/ImageGuard/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	cfg, err := config.Load(configPath)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, logCloser, logErr := infraLogger.NewLogger(infraLogger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if logErr != nil {
		log.Fatalf("failed to initialize logger: %v", logErr)
	}
	defer logCloser.Close() //nolint:errcheck

	if err != nil {
		logger.WithError(err).Warn("config file not loaded")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	logger.WithField("version", version.GetInfo().String()).Info("starting")

	prometheus.Initialize()

	audit := newAuditService(cfg, logger)
	defer audit.Close() //nolint:errcheck

	breaker := httpx.NewCircuitBreaker("aliyun-green", cfg.Aliyun.Breaker.Timeout, cfg.Aliyun.Breaker.MaxFailures, logger)
	greenClient := aliyun.NewClient(aliyun.Config{
		AccessKeyID:     cfg.Aliyun.AccessKeyID,
		AccessKeySecret: cfg.Aliyun.AccessKeySecret,
		Region:          cfg.Aliyun.Region,
		Endpoint:        cfg.Aliyun.Endpoint,
		Service:         cfg.Aliyun.Service,
		Timeout:         cfg.Aliyun.Timeout,
	}, httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Aliyun.Timeout)), logger, aliyun.WithCircuitBreaker(breaker))

	allowList := appModeration.ParseAllowList(cfg.Aliyun.AllowListCSV())
	checkers := []appModeration.Checker{
		appModeration.NewImageChecker(greenClient, allowList, logger),
	}
	if cfg.Moderation.TextEnabled {
		checkers = append(checkers, appModeration.NewTextChecker())
	}
	moderationService := appModeration.NewService(
		cfg.Moderation.BaseURL,
		checkers,
		logger,
		appModeration.WithAudit(audit),
	)

	srv := server.NewModerationServer(server.ModerationServerDI{
		MiddlewareTransport: middleware.NewTransport(
			middleware.NewRequestContextMiddleware(logger, cfg.Server.RequestTimeout),
		),
		HandlerTransport: handlers.HandlerTransport{
			ModerateHandler:   handlers.NewModerateHandler(logger, moderationService),
			GetVersionHandler: handlers.NewGetVersionHandler(logger),
		},
		Config: cfg,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(srv.RunMetrics)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("server stopped with error")
		return
	}
	logger.Info("server gracefully stopped")
}

func newAuditService(cfg config.Config, logger *logrus.Logger) auditlogs.Service {
	if !cfg.Kafka.Enabled {
		return auditlogs.NewService(auditlogs.NewLogSink(logger), logger, true)
	}
	kafkaCfg, err := auditlogs.DecodeKafkaConfig(cfg.Kafka.KafkaSettings())
	if err != nil {
		logger.Fatalf("invalid kafka audit config: %v", err)
	}
	sink, err := auditlogs.NewKafkaSink(kafkaCfg, logger)
	if err != nil {
		logger.Fatalf("failed to initialize kafka audit sink: %v", err)
	}
	return auditlogs.NewService(sink, logger, true)
}
