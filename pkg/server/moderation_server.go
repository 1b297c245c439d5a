package server

import (
	"fmt"

	"github.com/NeuralTrust/ImageGuard/pkg/config"
	handlers "github.com/NeuralTrust/ImageGuard/pkg/handlers/http"
	"github.com/NeuralTrust/ImageGuard/pkg/server/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ModerationServerDI struct {
		MiddlewareTransport *middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              config.Config
		Logger              *logrus.Logger
	}
	ModerationServer struct {
		*BaseServer
		middlewareTransport *middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewModerationServer(di ModerationServerDI) *ModerationServer {
	s := &ModerationServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
	s.setupHealthCheck()
	s.setupRoutes()
	return s
}

func (s *ModerationServer) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting moderation server")
	return s.router.Listen(addr)
}

func (s *ModerationServer) setupRoutes() {
	baseRouter := s.router.Group("")
	if s.middlewareTransport != nil {
		if mws := s.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
			baseRouter.Use(mws...)
		}
	}
	s.addRoutes(baseRouter)
}

func (s *ModerationServer) addRoutes(router fiber.Router) {
	v1 := router.Group("/v1")
	{
		v1.Post("/moderate", s.handlerTransport.ModerateHandler.Handle)
	}

	api := router.Group("/api/v1")
	{
		api.Get("/version", s.handlerTransport.GetVersionHandler.Handle)
	}
}
