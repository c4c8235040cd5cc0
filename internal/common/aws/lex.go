// internal/common/aws/lex.go
package aws

import (
	"context"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/metrics"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// LexRuntimeAPI is the slice of the Lex V2 runtime client used here.
type LexRuntimeAPI interface {
	RecognizeText(ctx context.Context, params *lexruntimev2.RecognizeTextInput, optFns ...func(*lexruntimev2.Options)) (*lexruntimev2.RecognizeTextOutput, error)
}

// LexClient sends user utterances to one bot alias.
type LexClient struct {
	client     LexRuntimeAPI
	botID      string
	botAliasID string
	localeID   string
}

func NewLexClient(cfg awssdk.Config, botID, botAliasID, localeID string) *LexClient {
	return NewLexClientWith(lexruntimev2.NewFromConfig(cfg), botID, botAliasID, localeID)
}

func NewLexClientWith(api LexRuntimeAPI, botID, botAliasID, localeID string) *LexClient {
	return &LexClient{
		client:     api,
		botID:      botID,
		botAliasID: botAliasID,
		localeID:   localeID,
	}
}

// RecognizeText returns the plain contents of the bot's reply messages.
func (l *LexClient) RecognizeText(ctx context.Context, sessionID, text string) ([]string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "lex.RecognizeText")
	defer span.End()
	span.SetAttributes(attribute.String("lex.session_id", sessionID))

	out, err := l.client.RecognizeText(ctx, &lexruntimev2.RecognizeTextInput{
		BotId:      awssdk.String(l.botID),
		BotAliasId: awssdk.String(l.botAliasID),
		LocaleId:   awssdk.String(l.localeID),
		SessionId:  awssdk.String(sessionID),
		Text:       awssdk.String(text),
	})
	metrics.ObserveUpstream("lex", err)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.NewChatError(err)
	}

	messages := make([]string, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, awssdk.ToString(m.Content))
	}
	return messages, nil
}
