package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/OFFIS-RIT/carekg/pkg/store"
)

// ObjectClient is the subset of the S3 API used by S3GraphStorage.
type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3GraphStorage stores encoded graphs as objects in an S3 bucket.
type S3GraphStorage struct {
	client ObjectClient
	bucket string
	prefix string
}

// NewS3GraphStorageParams defines the parameters for connecting to S3.
// Endpoint is optional and enables path-style addressing for S3 compatible
// stores such as MinIO.
type NewS3GraphStorageParams struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3GraphStorage creates a storage backed by a new S3 client.
func NewS3GraphStorage(ctx context.Context, params NewS3GraphStorageParams) (*S3GraphStorage, error) {
	if params.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(params.Region)}
	if params.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(params.AccessKeyID, params.SecretAccessKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if params.Endpoint != "" {
			o.BaseEndpoint = aws.String(params.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3GraphStorageWithClient(client, params.Bucket, params.Prefix), nil
}

// NewS3GraphStorageWithClient creates a storage using an existing client.
func NewS3GraphStorageWithClient(client ObjectClient, bucket, prefix string) *S3GraphStorage {
	return &S3GraphStorage{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3GraphStorage) objectKey(key string) string {
	return path.Join(s.prefix, key+".kg")
}

func (s *S3GraphStorage) SaveGraph(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, s.objectKey(key), err)
	}
	return nil
}

func (s *S3GraphStorage) LoadGraph(ctx context.Context, key string) ([]byte, error) {
	objKey := s.objectKey(key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%w: s3://%s/%s", store.ErrGraphNotFound, s.bucket, objKey)
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, objKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, objKey, err)
	}
	return data, nil
}
