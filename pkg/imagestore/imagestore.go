package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries the object storage connection settings
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// Store uploads blog cover images to S3-compatible object storage
type Store struct {
	cfg    Config
	client *minio.Client
}

// New creates a Store for the configured bucket
func New(cfg Config) (*Store, error) {
	cl, err := minio.New(strings.TrimPrefix(cfg.Endpoint, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &Store{cfg: cfg, client: cl}, nil
}

// EnsureBucket creates the bucket if it does not exist yet
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// Upload stores an image under a fresh uuid key, keeping the original file
// extension, and returns the public URL of the object.
func (s *Store) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := "blogs/" + uuid.New().String() + filepath.Ext(filename)

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	return s.PublicURL(key), nil
}

// Remove deletes an object by key
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{})
}

// PublicURL builds the object URL served by the storage endpoint
func (s *Store) PublicURL(key string) string {
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, strings.TrimPrefix(s.cfg.Endpoint, "http://"), s.cfg.Bucket, key)
}
