package chat

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) RecognizeText(ctx context.Context, sessionID, text string) ([]string, error) {
	args := m.Called(ctx, sessionID, text)
	messages, _ := args.Get(0).([]string)
	return messages, args.Error(1)
}

func TestService_Send_NewSession(t *testing.T) {
	rec := &MockRecognizer{}
	rec.On("RecognizeText", mock.Anything, mock.AnythingOfType("string"), "What is the weather?").
		Return([]string{"Which city would you like the weather for?"}, nil)
	svc := NewService(rec, logger.NewTestLogger(t))

	reply, err := svc.Send(context.Background(), Request{Text: "What is the weather?"})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(reply.SessionID)
	assert.NoError(t, parseErr)
	assert.Equal(t, []string{"Which city would you like the weather for?"}, reply.Messages)
	rec.AssertCalled(t, "RecognizeText", mock.Anything, reply.SessionID, "What is the weather?")
}

func TestService_Send_KeepsSession(t *testing.T) {
	rec := &MockRecognizer{}
	rec.On("RecognizeText", mock.Anything, "session-42", "Lund").
		Return([]string{"What date?"}, nil).Once()
	svc := NewService(rec, logger.NewTestLogger(t))

	reply, err := svc.Send(context.Background(), Request{SessionID: "session-42", Text: "Lund"})

	require.NoError(t, err)
	assert.Equal(t, "session-42", reply.SessionID)
	rec.AssertExpectations(t)
}

func TestService_Send_NoMessages(t *testing.T) {
	rec := &MockRecognizer{}
	rec.On("RecognizeText", mock.Anything, "s", "hi").Return([]string{}, nil)
	svc := NewService(rec, logger.NewTestLogger(t))

	reply, err := svc.Send(context.Background(), Request{SessionID: "s", Text: "hi"})

	require.NoError(t, err)
	assert.Equal(t, []string{NoResponse}, reply.Messages)
}

func TestService_Send_Errors(t *testing.T) {
	rec := &MockRecognizer{}
	rec.On("RecognizeText", mock.Anything, "s", "hi").
		Return(nil, apperrors.NewChatError(errors.New("ThrottlingException")))
	svc := NewService(rec, logger.NewTestLogger(t))

	_, err := svc.Send(context.Background(), Request{SessionID: "s", Text: "hi"})
	assert.Equal(t, apperrors.ErrCodeChatFailed, apperrors.CodeOf(err))

	_, err = svc.Send(context.Background(), Request{SessionID: "s", Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyText)
	rec.AssertNumberOfCalls(t, "RecognizeText", 1)
}
