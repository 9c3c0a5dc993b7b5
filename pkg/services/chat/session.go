package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fixed assistant texts. Transport errors are never surfaced beyond the
// connectivity string.
const (
	GreetingText = "Hi! I'm your AI Financial Analyst. Ask me anything about your uploaded data. " +
		"e.g., 'Why did my score drop?' or 'What is my highest expense?'"
	FallbackText     = "Sorry, I couldn't analyze that."
	ConnectivityText = "Error connecting to the AI Analyst. Please ensure the backend is running."
)

// ErrBusy is returned when Send is called while a round is awaiting a
// response.
var ErrBusy = errors.New("a chat round is already awaiting a response")

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one transcript entry. Messages are never edited or removed
// once appended.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Assistant answers one chat message.
type Assistant interface {
	Ask(ctx context.Context, message string) (string, error)
}

// Session is the overlay conversation. It lives independently of the
// dashboard: language toggles and analyze-new resets never clear it.
type Session struct {
	assistant Assistant
	log       zerolog.Logger
	now       func() time.Time

	mu       sync.Mutex
	messages []Message
	sending  bool
}

func NewSession(assistant Assistant, log zerolog.Logger) *Session {
	s := &Session{
		assistant: assistant,
		log:       log.With().Str("component", "chat").Logger(),
		now:       time.Now,
	}
	s.messages = []Message{{
		ID:        uuid.NewString(),
		Text:      GreetingText,
		Sender:    SenderBot,
		Timestamp: s.now(),
	}}
	return s
}

// Send runs one message round: the user turn is appended immediately,
// then a single request is issued and the assistant turn appended from
// its outcome. Empty or whitespace-only text is a no-op; a round
// already in flight is rejected with ErrBusy.
func (s *Session) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return ErrBusy
	}
	s.sending = true
	s.append(Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: s.now(),
	})
	s.mu.Unlock()

	answer, err := s.assistant.Ask(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false

	reply := answer
	if err != nil {
		s.log.Warn().Err(err).Msg("chat request failed")
		reply = ConnectivityText
	} else if reply == "" {
		reply = FallbackText
	}
	s.append(Message{
		ID:        uuid.NewString(),
		Text:      reply,
		Sender:    SenderBot,
		Timestamp: s.now(),
	})
	return nil
}

// Messages returns a copy of the transcript in append order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

func (s *Session) append(msg Message) {
	s.messages = append(s.messages, msg)
}
