// Package s3store implements storage.ObjectStore on Amazon S3 and
// S3-compatible services.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/grafana/s3remote/log"
	"github.com/grafana/s3remote/retry"
	"github.com/grafana/s3remote/storage"
)

const (
	// DefaultTimeout bounds every store operation, retries included.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxAttempts is the number of attempts per operation.
	DefaultMaxAttempts = 3
)

// API is the subset of the S3 client the store uses. *s3.Client implements it.
type API interface {
	manager.UploadAPIClient
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// Store is an S3-backed storage.ObjectStore.
type Store struct {
	api      API
	uploader *manager.Uploader
	timeout  time.Duration
	retrier  retry.Retrier
	logger   log.Logger
}

var _ storage.ObjectStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithTimeout bounds each operation, retries included.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		s.timeout = timeout
	}
}

// WithRetrier replaces the default retrier. A retrier injected into the
// context of a call with retry.ToContext takes precedence.
func WithRetrier(retrier retry.Retrier) Option {
	return func(s *Store) {
		s.retrier = retrier
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New returns a Store using api.
func New(api API, opts ...Option) *Store {
	s := &Store{
		api:     api,
		timeout: DefaultTimeout,
		retrier: NewRetrier(retry.NewExponentialBackoffRetrier().WithMaxAttempts(DefaultMaxAttempts)),
		logger:  log.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.uploader = manager.NewUploader(api)

	return s
}

// Config selects the S3 endpoint and credentials.
type Config struct {
	Region   string
	Endpoint string
	Profile  string
	// PathStyle forces bucket-in-path addressing. It is implied by Endpoint.
	PathStyle bool
	// Credentials overrides the default credential chain when set.
	Credentials aws.CredentialsProvider
}

// NewFromConfig loads AWS configuration from the environment and shared
// config files and builds a Store. The SDK's own retries are disabled;
// retries are handled by the store's retrier.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Credentials != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(cfg.Credentials))
	}
	loadOpts = append(loadOpts, config.WithRetryer(func() aws.Retryer {
		return aws.NopRetryer{}
	}))

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
	})

	return New(client, opts...), nil
}

// do runs fn with the store timeout and retry policy.
func (s *Store) do(ctx context.Context, op string, key storage.Key, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if retry.FromContext(ctx) == nil {
		ctx = retry.ToContext(ctx, s.retrier)
	}

	start := time.Now()
	attempts := 0
	err := retry.DoVoid(ctx, func() error {
		attempts++
		return fn(ctx)
	})

	s.logger.Debug("S3 request", "op", op, "key", key.String(), "attempts", attempts, "duration", time.Since(start), "error", err)
	return err
}

func (s *Store) Get(ctx context.Context, key storage.Key) ([]byte, error) {
	var data []byte
	err := s.do(ctx, "get", key, func(ctx context.Context) error {
		out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(key.Bucket),
			Key:    aws.String(key.Path),
		})
		if err != nil {
			return err
		}
		defer out.Body.Close()

		data, err = io.ReadAll(out.Body)
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return nil, storage.NewObjectNotFoundError(key)
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	return data, nil
}

func (s *Store) Put(ctx context.Context, key storage.Key, data []byte) error {
	err := s.do(ctx, "put", key, func(ctx context.Context) error {
		_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(key.Bucket),
			Key:    aws.String(key.Path),
			Body:   bytes.NewReader(data),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key storage.Key) error {
	err := s.do(ctx, "delete", key, func(ctx context.Context) error {
		_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(key.Bucket),
			Key:    aws.String(key.Path),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, prefix storage.Key) ([]storage.Object, error) {
	var objects []storage.Object
	err := s.do(ctx, "list", prefix, func(ctx context.Context) error {
		// A retried listing starts over so that callers never see a partial one.
		objects = nil

		p := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
			Bucket: aws.String(prefix.Bucket),
			Prefix: aws.String(prefix.Path),
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return err
			}
			for _, obj := range page.Contents {
				objects = append(objects, storage.Object{
					Key:          storage.Key{Bucket: prefix.Bucket, Path: aws.ToString(obj.Key)},
					LastModified: aws.ToTime(obj.LastModified),
					Size:         aws.ToInt64(obj.Size),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}

	return objects, nil
}

// Rename copies from to to with a server-side copy, then deletes from.
func (s *Store) Rename(ctx context.Context, from, to storage.Key) error {
	err := s.do(ctx, "copy", from, func(ctx context.Context) error {
		_, err := s.api.CopyObject(ctx, &s3.CopyObjectInput{
			Bucket:     aws.String(to.Bucket),
			Key:        aws.String(to.Path),
			CopySource: aws.String(copySource(from)),
		})
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return storage.NewObjectNotFoundError(from)
		}
		return fmt.Errorf("copy %s to %s: %w", from, to, err)
	}

	return s.Delete(ctx, from)
}

// copySource formats a key as the URL-encoded bucket/key pair CopyObject expects.
func copySource(key storage.Key) string {
	segments := strings.Split(key.Path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return key.Bucket + "/" + strings.Join(segments, "/")
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	return false
}
