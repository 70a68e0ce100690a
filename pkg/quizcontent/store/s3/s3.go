// Package s3 persists the category collection as a single JSON object in an
// S3 (or S3-compatible) bucket.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/quizdeck/quiz-content/pkg/quizcontent"
)

// Config options for the S3 document store
type Config struct {
	Region          string // AWS region
	Bucket          string // S3 bucket name
	Key             string // Object key of the backing document
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	Endpoint        string // Optional custom endpoint for S3-compatible services
	UsePathStyle    bool   // Use path-style addressing (MinIO compatibility)
}

// Store is an S3-compatible implementation of the quizcontent.DocumentStore
// interface.
type Store struct {
	client *s3.Client
	bucket string
	key    string
}

// New creates a new S3 document store
func New(config Config) (*Store, error) {
	if config.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}
	if config.Key == "" {
		return nil, errors.New("document key is required")
	}
	if config.Region == "" {
		config.Region = "us-east-1"
	}

	var awsCfg aws.Config
	var err error

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			)),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
		)
	}
	if err != nil {
		return nil, err
	}

	var s3Options []func(*s3.Options)
	if config.Endpoint != "" {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = config.UsePathStyle
		})
	}

	return &Store{
		client: s3.NewFromConfig(awsCfg, s3Options...),
		bucket: config.Bucket,
		key:    config.Key,
	}, nil
}

// Load fetches and parses the backing document object
func (s *Store) Load(ctx context.Context) ([]quizcontent.Category, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: s.objectPath(), Err: quizcontent.ErrDocumentMissing}
		}
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: s.objectPath(), Err: err}
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: s.objectPath(), Err: err}
	}

	var categories []quizcontent.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: s.objectPath(), Err: err}
	}
	return categories, nil
}

// Save serializes the full collection and overwrites the document object
func (s *Store) Save(ctx context.Context, categories []quizcontent.Category) error {
	if categories == nil {
		categories = []quizcontent.Category{}
	}

	data, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return &quizcontent.StoreError{Op: quizcontent.StoreOpSave, Path: s.objectPath(), Err: err}
	}

	uploader := manager.NewUploader(s.client)
	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return &quizcontent.StoreError{Op: quizcontent.StoreOpSave, Path: s.objectPath(), Err: err}
	}
	return nil
}

func (s *Store) objectPath() string {
	return s.bucket + "/" + s.key
}

// isNoSuchKey matches both the typed NoSuchKey error and the generic API
// error code some S3-compatible services (MinIO) return instead.
func isNoSuchKey(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey"
}
