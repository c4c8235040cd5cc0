// internal/common/aws/rekognition.go
package aws

import (
	"context"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/metrics"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/aws"

// CustomLabel is one Rekognition Custom Labels prediction; Confidence is a
// percentage.
type CustomLabel struct {
	Name       string
	Confidence float64
}

// RekognitionAPI is the slice of the SDK client used here.
type RekognitionAPI interface {
	DetectCustomLabels(ctx context.Context, params *rekognition.DetectCustomLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectCustomLabelsOutput, error)
}

// RekognitionClient runs a trained Custom Labels model version against S3
// images.
type RekognitionClient struct {
	client            RekognitionAPI
	projectVersionARN string
}

func NewRekognitionClient(cfg awssdk.Config, projectVersionARN string) *RekognitionClient {
	return &RekognitionClient{
		client:            rekognition.NewFromConfig(cfg),
		projectVersionARN: projectVersionARN,
	}
}

// NewRekognitionClientWith is used by tests to inject a fake API.
func NewRekognitionClientWith(api RekognitionAPI, projectVersionARN string) *RekognitionClient {
	return &RekognitionClient{client: api, projectVersionARN: projectVersionARN}
}

// DetectCustomLabels returns the labels at or above minConfidence in the
// order Rekognition ranks them. An empty slice is a valid answer.
func (r *RekognitionClient) DetectCustomLabels(ctx context.Context, bucket, key string, minConfidence float64) ([]CustomLabel, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "rekognition.DetectCustomLabels")
	defer span.End()
	span.SetAttributes(
		attribute.String("s3.bucket", bucket),
		attribute.String("s3.key", key),
	)

	out, err := r.client.DetectCustomLabels(ctx, &rekognition.DetectCustomLabelsInput{
		ProjectVersionArn: awssdk.String(r.projectVersionARN),
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: awssdk.String(bucket),
				Name:   awssdk.String(key),
			},
		},
		MinConfidence: awssdk.Float32(float32(minConfidence)),
	})
	metrics.ObserveUpstream("rekognition", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, apperrors.NewClassifierError(err)
	}

	labels := make([]CustomLabel, 0, len(out.CustomLabels))
	for _, l := range out.CustomLabels {
		labels = append(labels, CustomLabel{
			Name:       awssdk.ToString(l.Name),
			Confidence: float64(awssdk.ToFloat32(l.Confidence)),
		})
	}
	span.SetAttributes(attribute.Int("rekognition.labels", len(labels)))
	return labels, nil
}
