package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"product_slider_app_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// XLSXContentType is the MIME type of category exports
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ArchiveStorage stores exported files
type ArchiveStorage interface {
	Put(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (*StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	URL(ctx context.Context, key string) (string, error)
	Name() string
}

// StoredObject describes a file written to archive storage
type StoredObject struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

// NewArchiveStorage picks R2 when it is configured and reachable, local disk otherwise
func NewArchiveStorage(cfg *config.Config, log *zap.Logger) ArchiveStorage {
	if !cfg.R2Configured() {
		log.Info("Archive storage ready", zap.String("provider", "local"), zap.String("path", cfg.ArchiveDir))
		return NewLocalStorage(cfg.ArchiveDir)
	}

	r2, err := NewR2Storage(cfg)
	if err != nil {
		log.Warn("Failed to initialize R2 storage, falling back to local storage", zap.Error(err))
		return NewLocalStorage(cfg.ArchiveDir)
	}

	// Test R2 connection (HeadBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r2.bucket)}); err != nil {
		log.Warn("R2 bucket connection test failed, falling back to local storage", zap.Error(err))
		return NewLocalStorage(cfg.ArchiveDir)
	}

	log.Info("Archive storage ready", zap.String("provider", "r2"), zap.String("bucket", r2.bucket))
	return r2
}

// R2Storage implements ArchiveStorage for Cloudflare R2
type R2Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
}

// NewR2Storage creates a new R2 storage provider
func NewR2Storage(cfg *config.Config) (*R2Storage, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.R2BucketName,
		publicURL: cfg.R2PublicURL,
	}, nil
}

// Name identifies the provider in logs and responses
func (r *R2Storage) Name() string {
	return "r2"
}

// Put uploads content to the bucket
func (r *R2Storage) Put(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (*StoredObject, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to R2: %w", err)
	}

	url, err := r.URL(ctx, key)
	if err != nil {
		return nil, err
	}
	return &StoredObject{Key: key, Size: size, ContentType: contentType, URL: url}, nil
}

// Get opens an object for reading
func (r *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from R2: %w", err)
	}
	return result.Body, nil
}

// URL returns the public URL when configured, otherwise a presigned URL valid for one hour
func (r *R2Storage) URL(ctx context.Context, key string) (string, error) {
	if r.publicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.publicURL, "/"), key), nil
	}

	presigned, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return presigned.URL, nil
}

// LocalStorage implements ArchiveStorage on the local filesystem
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a new local storage provider
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

// Name identifies the provider in logs and responses
func (l *LocalStorage) Name() string {
	return "local"
}

// Put writes content below the base directory
func (l *LocalStorage) Put(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (*StoredObject, error) {
	fullPath := filepath.Join(l.baseDir, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	url, _ := l.URL(ctx, key)
	return &StoredObject{Key: key, Size: written, ContentType: contentType, URL: url}, nil
}

// Get opens a stored file
func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(l.baseDir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// URL returns the path the static file server exposes
func (l *LocalStorage) URL(ctx context.Context, key string) (string, error) {
	return "/" + filepath.ToSlash(filepath.Join(l.baseDir, key)), nil
}

// GenerateArchiveKey creates a unique storage key below prefix
func GenerateArchiveKey(prefix, originalFilename string, now time.Time) string {
	ext := filepath.Ext(originalFilename)
	base := strings.TrimSuffix(filepath.Base(originalFilename), ext)
	filename := fmt.Sprintf("%s_%s_%s%s", base, now.UTC().Format("20060102T150405"), uuid.New().String()[:8], ext)
	return prefix + "/" + filename
}
