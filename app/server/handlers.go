package server

import (
	"strings"

	"meditrack/app/service/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Disclaimer is shown by hosts above the chat. Not part of the conversation
// itself.
const Disclaimer = "I am an AI assistant, not a medical professional. " +
	"This tool is for logging symptoms only. If you are experiencing a medical emergency, " +
	"call your local emergency number immediately."

type messageRequest struct {
	Text string `json:"text"`
}

type sessionResponse struct {
	SessionID  string                 `json:"session_id"`
	Disclaimer string                 `json:"disclaimer"`
	Messages   []registry.ChatMessage `json:"messages"`
}

type messagesResponse struct {
	Messages []registry.ChatMessage `json:"messages"`
}

func (s *Server) handleCreateSession(c *fiber.Ctx) error {
	id, greeting := s.registrySvc.Create()

	return c.JSON(sessionResponse{
		SessionID:  id.String(),
		Disclaimer: Disclaimer,
		Messages:   []registry.ChatMessage{greeting},
	})
}

func (s *Server) handleMessage(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Text) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	messages, err := s.registrySvc.HandleTurn(s.appCtx, id, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(messagesResponse{Messages: messages})
}

func (s *Server) handleReset(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	greeting, err := s.registrySvc.Reset(id)
	if err != nil {
		return err
	}

	return c.JSON(messagesResponse{Messages: []registry.ChatMessage{greeting}})
}

func (s *Server) handleTranscript(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return err
	}

	transcript, err := s.registrySvc.Transcript(id)
	if err != nil {
		return err
	}

	return c.JSON(messagesResponse{Messages: transcript})
}

func parseSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	return id, nil
}
