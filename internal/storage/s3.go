package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"lanes/internal/board"
	"lanes/internal/config"
)

// S3Store keeps the board as an object on an S3-compatible service.
// MinIO and other path-style endpoints work through the UsePathStyle
// setting.
type S3Store struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Store returns a store for s3://bucket/key using the given
// settings. Static credentials from the config take precedence; with
// none set, the default AWS credential chain applies.
func NewS3Store(bucket, key string, cfg config.S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	if cfg.Endpoint != "" {
		if _, err := url.Parse(cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("invalid S3 endpoint: %w", err)
		}
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3Store{client: client, bucket: bucket, key: key}, nil
}

// Load fetches and parses the board object.
func (s *S3Store) Load(ctx context.Context) (*board.Kanban, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Location())
		}
		return nil, fmt.Errorf("get board object: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read board object: %w", err)
	}
	k, err := board.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Location(), err)
	}
	return k, nil
}

// Save renders the board and writes it back to the object.
func (s *S3Store) Save(ctx context.Context, k *board.Kanban) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Body:   bytes.NewReader([]byte(k.Render())),
	})
	if err != nil {
		return fmt.Errorf("put board object: %w", err)
	}
	return nil
}

// Location returns the s3://bucket/key URL.
func (s *S3Store) Location() string {
	return s3Scheme + strings.Join([]string{s.bucket, s.key}, "/")
}
