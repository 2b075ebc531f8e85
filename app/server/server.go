package server

import (
	"context"
	"errors"
	"time"

	"meditrack/app/config"
	"meditrack/app/service/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

var _ do.Shutdownable = (*Server)(nil)

// Server is the host surface of the assistant: it forwards raw user text in
// and returns the styled replies out. All conversation logic lives behind the
// registry.
type Server struct {
	cfg         *config.Config
	registrySvc *registry.Service

	appCtx context.Context
	app    *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:         do.MustInvoke[*config.Config](di),
		registrySvc: do.MustInvoke[*registry.Service](di),
		appCtx:      do.MustInvoke[context.Context](di),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "meditrack",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	api := s.app.Group("/api")
	api.Post("/sessions", s.handleCreateSession)
	api.Get("/sessions/:id/transcript", s.handleTranscript)
	api.Post("/sessions/:id/messages", s.handleMessage)
	api.Post("/sessions/:id/reset", s.handleReset)

	return s, nil
}

func (s *Server) Run() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(10 * time.Second)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if errors.Is(err, registry.ErrSessionNotFound) {
		code = fiber.StatusNotFound
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
