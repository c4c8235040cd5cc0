package carcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	awsclient "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/aws"
	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"
)

const (
	IntentName = dialog.IntentCarCheck

	DefaultSlot          = "imguri"
	DefaultMinConfidence = 50.0

	locatorScheme = "s3://"
)

const (
	promptImage          = "Which image should I check? Give me an S3 URL like s3://bucket/key."
	messageLowConfidence = "Please check the car manually, my confidence level is too low."
)

var ErrInvalidLocator = errors.New("INVALID_LOCATOR")

// Classifier runs the car cleanliness model on one stored image.
type Classifier interface {
	DetectCustomLabels(ctx context.Context, bucket, key string, minConfidence float64) ([]awsclient.CustomLabel, error)
}

type Handler struct {
	config     *Config
	classifier Classifier
	logger     logger.Logger
	errors     *apperrors.ErrorHandler
}

func NewHandler(config *Config, classifier Classifier, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		classifier: classifier,
		logger:     log.WithFields(map[string]interface{}{"intent": IntentName.String()}),
		errors:     apperrors.NewErrorHandler(log),
	}
}

// Handle never returns nil and never panics on classifier failures; those
// become a Failed close.
func (h *Handler) Handle(ctx context.Context, event *dialog.Event) *dialog.Response {
	intent := event.IntentName()

	raw, ok := event.Slot(h.config.Slot)
	if !ok {
		h.logger.Info("image slot missing, eliciting", map[string]interface{}{"slot": h.config.Slot})
		return dialog.Elicit(event.SessionState.Intent, h.config.Slot, promptImage)
	}

	start := time.Now()
	resp, err := h.Execute(ctx, intent, raw)
	if err != nil {
		return h.errors.HandleIntentError(intent, err)
	}

	h.logger.Info("car check completed", map[string]interface{}{
		"imguri":   raw,
		"outcome":  resp.Outcome(),
		"duration": time.Since(start).Milliseconds(),
	})
	return resp
}

// Execute classifies the image at raw. An unparseable locator is a Failed
// close, not an error, and the classifier is not called.
func (h *Handler) Execute(ctx context.Context, intent, raw string) (*dialog.Response, error) {
	loc, err := ParseLocator(raw)
	if err != nil {
		h.logger.Warn("invalid image locator", map[string]interface{}{"imguri": raw})
		return dialog.Failed(intent, "Invalid S3 URL: "+raw), nil
	}

	labels, err := h.classifier.DetectCustomLabels(ctx, loc.Bucket, loc.Key, h.config.MinConfidence)
	if err != nil {
		return nil, err
	}

	verdict, ok := TopLabel(labels)
	if !ok {
		return dialog.Fulfilled(intent, messageLowConfidence), nil
	}
	return dialog.Fulfilled(intent, FormatVerdict(verdict)), nil
}

// ParseLocator splits s3://bucket/key at the first slash after the scheme.
// The scheme is matched case-insensitively; bucket and key must both be
// non-empty.
func ParseLocator(raw string) (Locator, error) {
	if len(raw) < len(locatorScheme) || !strings.EqualFold(raw[:len(locatorScheme)], locatorScheme) {
		return Locator{}, fmt.Errorf("%w: %q", ErrInvalidLocator, raw)
	}
	bucket, key, found := strings.Cut(raw[len(locatorScheme):], "/")
	if !found || bucket == "" || key == "" {
		return Locator{}, fmt.Errorf("%w: %q", ErrInvalidLocator, raw)
	}
	return Locator{Bucket: bucket, Key: key}, nil
}

// TopLabel picks the most confident label. Ties keep the earlier label.
func TopLabel(labels []awsclient.CustomLabel) (Verdict, bool) {
	if len(labels) == 0 {
		return Verdict{}, false
	}
	best := labels[0]
	for _, l := range labels[1:] {
		if l.Confidence > best.Confidence {
			best = l
		}
	}
	return Verdict{Label: best.Name, Confidence: best.Confidence}, true
}

func FormatVerdict(v Verdict) string {
	return fmt.Sprintf("The car is %s (with a confidence of %.1f%%).", v.Label, v.Confidence)
}
