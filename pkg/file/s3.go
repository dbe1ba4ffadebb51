package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the slice of the AWS SDK client used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// S3Storage implements Storage on an S3 bucket. Objects have no filesystem
// location, so File.AbsolutePath stays empty. Safe for concurrent use.
type S3Storage struct {
	client        S3Client
	bucket        string
	baseURL       string
	uploadTimeout time.Duration
}

// S3Config connects the archive to a bucket. Endpoint and ForcePathStyle
// target S3-compatible services such as MinIO; BaseURL overrides the
// derived public URL base.
type S3Config struct {
	Bucket         string
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string
	BaseURL        string
	ForcePathStyle bool
}

// S3Option overrides parts of the storage at construction.
type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	uploadTimeout time.Duration
}

// WithS3Client substitutes a pre-built client, bypassing AWS config loading.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// WithS3UploadTimeout bounds a single Save call. Zero leaves the caller's
// context deadline in charge.
func WithS3UploadTimeout(d time.Duration) S3Option {
	return func(o *s3Options) { o.uploadTimeout = d }
}

// NewS3Storage connects the archive to an S3 bucket.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", ErrInvalidConfig)
	}

	var o s3Options
	for _, opt := range opts {
		opt(&o)
	}

	client := o.client
	if client == nil {
		var err error
		if client, err = newS3Client(ctx, cfg); err != nil {
			return nil, err
		}
	}

	return &S3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		baseURL:       publicBaseURL(cfg),
		uploadTimeout: o.uploadTimeout,
	}, nil
}

func newS3Client(ctx context.Context, cfg S3Config) (S3Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		provider := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	}), nil
}

// publicBaseURL picks the serving URL base: the explicit override first,
// then the custom endpoint, then the virtual-hosted AWS form.
func publicBaseURL(cfg S3Config) string {
	base := cfg.BaseURL
	switch {
	case base != "":
	case cfg.Endpoint != "":
		base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		base = "https://" + cfg.Bucket + ".s3." + cfg.Region + ".amazonaws.com"
	}
	return strings.TrimSuffix(base, "/") + "/"
}

// objectKey normalizes path into an S3 key. Keys never start with "/" and
// must not contain traversal segments.
func objectKey(path string) (string, error) {
	key := strings.TrimPrefix(path, "/")
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return key, nil
}

// mapS3Error folds SDK failures into the package's sentinels where a caller
// can act on them. HeadObject reports missing keys as NotFound rather than
// NoSuchKey, so both codes are covered.
func mapS3Error(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrFileNotFound, op)
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", ErrBucketNotFound, op)
		case "AccessDenied":
			return fmt.Errorf("%w: %s", ErrAccessDenied, op)
		case "SlowDown", "ServiceUnavailable", "RequestTimeout":
			return fmt.Errorf("%w: %s", ErrStorageUnavailable, op)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Save uploads the reader's content at path. The document is buffered in
// memory to detect its MIME type before the upload; intake bounds upload
// sizes long before they reach the archive.
func (s *S3Storage) Save(ctx context.Context, r io.Reader, path string) (*File, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	key, err := objectKey(path)
	if err != nil {
		return nil, err
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	mime := DetectMIMEType(body)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(mime),
	})
	if err != nil {
		return nil, mapS3Error("upload "+key, err)
	}

	name := filepath.Base(key)
	return &File{
		Filename:     name,
		Size:         int64(len(body)),
		MIMEType:     mime,
		Extension:    Extension(name),
		RelativePath: key,
	}, nil
}

// Delete removes the object at path. Missing objects report ErrFileNotFound.
func (s *S3Storage) Delete(ctx context.Context, path string) error {
	key, err := objectKey(path)
	if err != nil {
		return err
	}

	head := &s3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)}
	if _, err := s.client.HeadObject(ctx, head); err != nil {
		return mapS3Error("head "+key, err)
	}

	del := &s3.DeleteObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)}
	if _, err := s.client.DeleteObject(ctx, del); err != nil {
		return mapS3Error("delete "+key, err)
	}
	return nil
}

// DeleteDir removes every object under the prefix. S3 has no directories,
// so an empty listing reports ErrDirectoryNotFound.
func (s *S3Storage) DeleteDir(ctx context.Context, dir string) error {
	prefix, err := objectKey(dir)
	if err != nil {
		return err
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	keys, err := s.listKeys(ctx, prefix)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	// DeleteObjects caps a single request at 1000 keys.
	for batch := range slices.Chunk(keys, 1000) {
		in := &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: batch},
		}
		if _, err := s.client.DeleteObjects(ctx, in); err != nil {
			return mapS3Error("delete under "+prefix, err)
		}
	}
	return nil
}

func (s *S3Storage) listKeys(ctx context.Context, prefix string) ([]types.ObjectIdentifier, error) {
	var keys []types.ObjectIdentifier
	var token *string
	for {
		page, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, mapS3Error("list "+prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, types.ObjectIdentifier{Key: obj.Key})
		}
		if !aws.ToBool(page.IsTruncated) {
			return keys, nil
		}
		token = page.NextContinuationToken
	}
}

// Exists reports whether an object is stored at path.
func (s *S3Storage) Exists(ctx context.Context, path string) bool {
	key, err := objectKey(path)
	if err != nil {
		return false
	}

	in := &s3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)}
	_, err = s.client.HeadObject(ctx, in)
	return err == nil
}

// URL returns the public URL for the object at path.
func (s *S3Storage) URL(path string) string {
	return s.baseURL + strings.TrimPrefix(path, "/")
}
