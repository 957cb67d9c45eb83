// Package storage wraps the MinIO/S3 client used for photo thumbnails. The
// rest of the app only ever sees opaque URLs; bytes are written here once at
// upload time and never read back.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/iamsonghee/photo-selection/internal/config"
)

type Storage struct {
	client        *minio.Client
	bucket        string
	region        string
	publicBaseURL string
}

func New(cfg *config.Config) (*Storage, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	base := cfg.S3PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.S3UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, cfg.S3Endpoint)
	}

	return &Storage{
		client:        client,
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// EnsureBucket makes sure the thumbnail bucket exists before use.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// UploadThumb stores one photo's bytes and returns the stable public URL the
// photos row will reference.
func (s *Storage) UploadThumb(ctx context.Context, projectID string, orderIndex int, reader io.Reader, size int64, contentType string) (string, error) {
	objectKey := fmt.Sprintf("%s/%04d", projectID, orderIndex)
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size, opts); err != nil {
		return "", fmt.Errorf("upload thumb: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, objectKey), nil
}
