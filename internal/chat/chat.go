package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"

	"github.com/google/uuid"
)

// NoResponse is shown when the bot answers with no messages.
const NoResponse = "(No response from Lex)"

var ErrEmptyText = errors.New("EMPTY_TEXT")

// Recognizer sends one utterance to the bot and returns its replies.
type Recognizer interface {
	RecognizeText(ctx context.Context, sessionID, text string) ([]string, error)
}

type Request struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text" binding:"required"`
}

type Reply struct {
	SessionID string   `json:"sessionId"`
	Messages  []string `json:"messages"`
}

// Service relays chat turns to the bot, keeping one session per caller.
type Service struct {
	recognizer   Recognizer
	logger       logger.Logger
	newSessionID func() string
}

func NewService(recognizer Recognizer, log logger.Logger) *Service {
	return &Service{
		recognizer:   recognizer,
		logger:       log.WithFields(map[string]interface{}{"component": "chat"}),
		newSessionID: func() string { return uuid.New().String() },
	}
}

// Send starts a new session when req.SessionID is empty. The reply always
// carries the session id the caller should send next time.
func (s *Service) Send(ctx context.Context, req Request) (*Reply, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = s.newSessionID()
		s.logger.Info("started chat session", map[string]interface{}{"sessionId": sessionID})
	}

	messages, err := s.recognizer.RecognizeText(ctx, sessionID, req.Text)
	if err != nil {
		s.logger.Error("bot request failed", map[string]interface{}{"sessionId": sessionID, "error": err})
		return nil, err
	}
	if len(messages) == 0 {
		messages = []string{NoResponse}
	}
	return &Reply{SessionID: sessionID, Messages: messages}, nil
}
