package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/fixora/adminapi/internal/config"
)

// S3API is the slice of the S3 client the storage layer uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Client uploads named blobs to an S3-compatible bucket and hands back
// durable public URLs.
type Client struct {
	s3            S3API
	bucket        string
	publicBaseURL string
}

func New(cfg *config.Config) (*Client, error) {
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, errors.New("missing object storage credentials (set S3_ACCESS_KEY and S3_SECRET_KEY)")
	}
	if cfg.S3Endpoint == "" {
		return nil, errors.New("missing object storage endpoint (set S3_ENDPOINT)")
	}
	if cfg.S3Bucket == "" {
		return nil, errors.New("object storage bucket is required")
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
	})

	base := cfg.S3PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.S3Endpoint, "/"), cfg.S3Bucket)
	}

	return &Client{s3: client, bucket: cfg.S3Bucket, publicBaseURL: strings.TrimRight(base, "/")}, nil
}

// NewWithAPI wires a prebuilt API client; tests use it with a fake.
func NewWithAPI(api S3API, bucket, publicBaseURL string) *Client {
	return &Client{s3: api, bucket: bucket, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return c.publicBaseURL + "/" + key, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	return err
}
