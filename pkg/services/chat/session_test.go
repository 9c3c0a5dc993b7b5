package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAssistant struct {
	mock.Mock
}

func (m *mockAssistant) Ask(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func TestNewSessionSeedsGreeting(t *testing.T) {
	s := NewSession(&mockAssistant{}, zerolog.Nop())

	messages := s.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, GreetingText, messages[0].Text)
	assert.Equal(t, SenderBot, messages[0].Sender)
	assert.NotEmpty(t, messages[0].ID)
}

func TestSendAppendsBothTurns(t *testing.T) {
	assistant := &mockAssistant{}
	assistant.On("Ask", mock.Anything, "Why did my score drop?").
		Return("Your expense ratio rose sharply in May.", nil)
	s := NewSession(assistant, zerolog.Nop())

	require.NoError(t, s.Send(context.Background(), "Why did my score drop?"))

	messages := s.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, SenderUser, messages[1].Sender)
	assert.Equal(t, "Why did my score drop?", messages[1].Text)
	assert.Equal(t, SenderBot, messages[2].Sender)
	assert.Equal(t, "Your expense ratio rose sharply in May.", messages[2].Text)
	assert.False(t, s.Sending())
}

func TestSendBlankIsNoOp(t *testing.T) {
	assistant := &mockAssistant{}
	s := NewSession(assistant, zerolog.Nop())

	require.NoError(t, s.Send(context.Background(), ""))
	require.NoError(t, s.Send(context.Background(), "   \t"))

	assert.Len(t, s.Messages(), 1)
	assistant.AssertNotCalled(t, "Ask")
}

func TestSendFailureAppendsConnectivityText(t *testing.T) {
	assistant := &mockAssistant{}
	assistant.On("Ask", mock.Anything, "hello").
		Return("", errors.New("dial tcp: connection refused"))
	s := NewSession(assistant, zerolog.Nop())

	require.NoError(t, s.Send(context.Background(), "hello"))

	messages := s.Messages()
	require.Len(t, messages, 3)
	// The user turn stays even though the round failed.
	assert.Equal(t, "hello", messages[1].Text)
	assert.Equal(t, ConnectivityText, messages[2].Text)
	assert.Equal(t, SenderBot, messages[2].Sender)
}

func TestSendEmptyAnswerUsesFallback(t *testing.T) {
	assistant := &mockAssistant{}
	assistant.On("Ask", mock.Anything, "hello").Return("", nil)
	s := NewSession(assistant, zerolog.Nop())

	require.NoError(t, s.Send(context.Background(), "hello"))

	messages := s.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, FallbackText, messages[2].Text)
}

type blockingAssistant struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingAssistant) Ask(context.Context, string) (string, error) {
	close(b.started)
	<-b.release
	return "done", nil
}

func TestSendWhileBusyReturnsErrBusy(t *testing.T) {
	assistant := &blockingAssistant{started: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(assistant, zerolog.Nop())

	done := make(chan error, 1)
	go func() { done <- s.Send(context.Background(), "first") }()
	<-assistant.started

	assert.True(t, s.Sending())
	assert.ErrorIs(t, s.Send(context.Background(), "second"), ErrBusy)

	close(assistant.release)
	require.NoError(t, <-done)

	messages := s.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[1].Text)
	assert.Equal(t, "done", messages[2].Text)
}

func TestMessagesReturnsCopy(t *testing.T) {
	assistant := &mockAssistant{}
	s := NewSession(assistant, zerolog.Nop())

	messages := s.Messages()
	messages[0].Text = "mutated"

	assert.Equal(t, GreetingText, s.Messages()[0].Text)
}
