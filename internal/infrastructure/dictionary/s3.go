package dictionary

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"pwstrength/pkg/logx"
)

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// OpenS3 streams the word list object. The caller closes the reader.
func OpenS3(ctx context.Context, client objectGetter, bucket, key string) (io.ReadCloser, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3.GetObject(%s/%s): %w", bucket, key, err)
	}

	return out.Body, nil
}

func LoadS3(ctx context.Context, client objectGetter, bucket, key string) (*Memory, error) {
	body, err := OpenS3(ctx, client, bucket, key)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := body.Close(); err != nil {
			logger(ctx).Error("body.Close", logx.Error(err))
		}
	}()

	m, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	logger(ctx).Info(
		"dictionary loaded",
		slog.String("bucket", bucket),
		slog.String("key", key),
		slog.Int(logx.FieldWords, m.Len()),
	)

	return m, nil
}
