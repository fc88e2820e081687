package chat

import (
	"context"
	"strings"
	"time"

	"journeo/llm/agent"
	"journeo/llm/booking"
	"journeo/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Greeting opens every chat.
	Greeting = "Hello, how can I help you today?"
	// Fallback is shown when a run fails or produces no message.
	Fallback = "Sorry, I couldn't process your request."
)

// Runner runs one prompt through the agents.
type Runner interface {
	Run(ctx context.Context, prompt string) (*agent.Reply, error)
}

// Answer is what a chat turn produced.
type Answer struct {
	Text         string                       `json:"reply"`
	Confirmation *booking.BookingConfirmation `json:"confirmation,omitempty"`
	Fallback     bool                         `json:"fallback"`
}

// Service is the front-end contract shared by the TUI and the HTTP API.
type Service struct {
	runner  Runner
	store   ConversationStore
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService creates a Service. store and m may be nil.
func NewService(runner Runner, store ConversationStore, log *zap.Logger, m *metrics.Metrics) *Service {
	if store == nil {
		store = NewMemoryStore(DefaultHistoryLimit)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{runner: runner, store: store, log: log, metrics: m, now: time.Now}
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// Greeting returns the opening line of a chat.
func (s *Service) Greeting() string {
	return Greeting
}

// Handle runs text through the agents and returns the reply to display.
func (s *Service) Handle(ctx context.Context, sessionID, text string) string {
	return s.Ask(ctx, sessionID, text).Text
}

// Ask is Handle with the parsed booking confirmation, if any. A failed or
// empty run yields the Fallback text. Both turns are recorded for sessionID.
func (s *Service) Ask(ctx context.Context, sessionID, text string) Answer {
	log := s.log.With(zap.String("session", sessionID))
	s.record(ctx, log, sessionID, RoleUser, text)

	reply, err := s.runner.Run(ctx, text)
	answer := Answer{Text: Fallback, Fallback: true}
	switch {
	case err != nil:
		log.Error("run failed", zap.Error(err))
	case reply == nil || strings.TrimSpace(reply.Text) == "":
		log.Warn("run returned no message")
	default:
		answer = Answer{Text: reply.Text, Confirmation: reply.Confirmation}
	}

	if answer.Fallback {
		s.metrics.Chat("fallback")
	} else {
		s.metrics.Chat("reply")
	}
	s.record(ctx, log, sessionID, RoleAssistant, answer.Text)
	return answer
}

// History returns the transcript of sessionID.
func (s *Service) History(ctx context.Context, sessionID string) ([]Entry, error) {
	return s.store.List(ctx, sessionID)
}

// Reset clears the transcript of sessionID.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

func (s *Service) record(ctx context.Context, log *zap.Logger, sessionID string, role Role, content string) {
	e := Entry{Role: role, Content: content, At: s.now()}
	if err := s.store.Add(ctx, sessionID, e); err != nil {
		log.Warn("store transcript entry", zap.String("role", string(role)), zap.Error(err))
	}
}
