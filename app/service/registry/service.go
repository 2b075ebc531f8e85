package registry

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"meditrack/app/service/intake"

	"github.com/google/uuid"
	"github.com/samber/do"
)

var ErrSessionNotFound = errors.New("session not found")

// entry owns the state of one session. Turns within a session are strictly
// sequential, the per-entry mutex serializes them; the registry lock only
// guards the map itself.
type entry struct {
	mu         sync.Mutex
	sess       *intake.Session
	transcript []ChatMessage
}

// Service keeps every live session in memory, keyed by id. Nothing is
// persisted: a restart, like a reset, starts everyone from a clean greeting.
type Service struct {
	intakeSvc *intake.Service

	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		intakeSvc: do.MustInvoke[*intake.Service](di),
		sessions:  make(map[uuid.UUID]*entry),
	}, nil
}

func NewService(intakeSvc *intake.Service) *Service {
	return &Service{
		intakeSvc: intakeSvc,
		sessions:  make(map[uuid.UUID]*entry),
	}
}

// Create starts a new session at the greeting stage and seeds its transcript
// with the opening assistant message.
func (s *Service) Create() (uuid.UUID, ChatMessage) {
	id := uuid.New()
	greeting := assistantMessage(intake.Reply{Text: intake.GreetingMessage, Style: intake.StylePlain})

	s.mu.Lock()
	s.sessions[id] = &entry{
		sess:       intake.NewSession(),
		transcript: []ChatMessage{greeting},
	}
	s.mu.Unlock()

	slog.Info("Session created", "session_id", id)

	return id, greeting
}

// HandleTurn feeds one user message through the state machine and returns the
// assistant replies for that turn. Both sides of the exchange are appended to
// the transcript.
func (s *Service) HandleTurn(ctx context.Context, id uuid.UUID, text string) ([]ChatMessage, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.transcript = append(e.transcript, userMessage(text))

	replies := s.intakeSvc.Advance(ctx, e.sess, text)

	messages := make([]ChatMessage, 0, len(replies))
	for _, reply := range replies {
		msg := assistantMessage(reply)
		messages = append(messages, msg)
		e.transcript = append(e.transcript, msg)
	}

	return messages, nil
}

// Reset wipes the session completely: queue, log, stage and transcript. The
// session restarts at the greeting stage under the same id.
func (s *Service) Reset(id uuid.UUID) (ChatMessage, error) {
	e, err := s.lookup(id)
	if err != nil {
		return ChatMessage{}, err
	}

	greeting := assistantMessage(intake.Reply{Text: intake.GreetingMessage, Style: intake.StylePlain})

	e.mu.Lock()
	e.sess = intake.NewSession()
	e.transcript = []ChatMessage{greeting}
	e.mu.Unlock()

	slog.Info("Session reset", "session_id", id)

	return greeting, nil
}

// Stage reports the current stage of a session.
func (s *Service) Stage(id uuid.UUID) (intake.Stage, error) {
	e, err := s.lookup(id)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sess.Stage, nil
}

// Transcript returns a copy of the full conversation so far.
func (s *Service) Transcript(id uuid.UUID) ([]ChatMessage, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]ChatMessage, len(e.transcript))
	copy(result, e.transcript)

	return result, nil
}

func (s *Service) lookup(id uuid.UUID) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return e, nil
}
