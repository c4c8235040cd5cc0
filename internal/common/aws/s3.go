// internal/common/aws/s3.go
package aws

import (
	"context"
	"time"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/metrics"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// ObjectSummary is what the gallery needs from a listed object.
type ObjectSummary struct {
	Key          string
	LastModified time.Time
}

// PresignAPI is the slice of *s3.PresignClient used here.
type PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3Client struct {
	client    s3.ListObjectsV2APIClient
	presigner PresignAPI
}

func NewS3Client(cfg awssdk.Config) *S3Client {
	client := s3.NewFromConfig(cfg)
	return &S3Client{
		client:    client,
		presigner: s3.NewPresignClient(client),
	}
}

// NewS3ClientWith is used by tests to inject fakes.
func NewS3ClientWith(list s3.ListObjectsV2APIClient, presigner PresignAPI) *S3Client {
	return &S3Client{client: list, presigner: presigner}
}

// ListObjects returns every object under prefix, following continuation
// tokens.
func (s *S3Client) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectSummary, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "s3.ListObjectsV2")
	defer span.End()
	span.SetAttributes(attribute.String("s3.bucket", bucket), attribute.String("s3.prefix", prefix))

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: awssdk.String(bucket),
		Prefix: awssdk.String(prefix),
	})

	var objects []ObjectSummary
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		metrics.ObserveUpstream("s3", err)
		if err != nil {
			span.RecordError(err)
			return nil, apperrors.NewStorageListError(prefix, err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, ObjectSummary{
				Key:          awssdk.ToString(obj.Key),
				LastModified: awssdk.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

// PresignGetObject returns a time-limited GET link for one object.
func (s *S3Client) PresignGetObject(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: awssdk.String(bucket),
		Key:    awssdk.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", apperrors.NewPresignError(key, err)
	}
	return req.URL, nil
}
