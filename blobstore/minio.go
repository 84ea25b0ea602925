// Package blobstore provides the MinIO-backed storage gateway for the
// gallery service. It implements gallery.BlobStore against any
// S3-compatible object store: container bootstrap with a public-read
// policy, create-or-replace object writes, and full listing.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lanternfly/gallery"
)

// Config holds the gateway connection settings.
type Config struct {
	// Endpoint is the S3 host:port the client connects to.
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool

	// Container is the bucket holding uploaded images.
	Container string

	// RequestTimeout bounds each outbound gateway call. Zero disables the
	// bound.
	RequestTimeout time.Duration
}

// Store is a gallery.BlobStore backed by an S3-compatible object store.
// The underlying client is safe for concurrent use.
type Store struct {
	client    *minio.Client
	container string
	timeout   time.Duration
}

// New creates a Store. It does not contact the gateway; call Ensure at
// startup to bootstrap the container.
func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}

	return &Store{
		client:    client,
		container: cfg.Container,
		timeout:   cfg.RequestTimeout,
	}, nil
}

// Ensure creates the container and applies a policy granting anonymous read
// on its objects. Returns gallery.ErrContainerExists when the container is
// already present; any other failure (auth, transport) is returned as-is so
// startup can distinguish it.
func (s *Store) Ensure(ctx context.Context) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.MakeBucket(ctx, s.container, minio.MakeBucketOptions{}); err != nil {
		if isAlreadyExists(err) {
			return gallery.ErrContainerExists
		}
		return fmt.Errorf("create container %s: %w", s.container, err)
	}

	if err := s.client.SetBucketPolicy(ctx, s.container, publicReadPolicy(s.container)); err != nil {
		return fmt.Errorf("set public-read policy on %s: %w", s.container, err)
	}

	return nil
}

// Put writes an object with the declared content type preserved as object
// metadata. PutObject is create-or-replace: an existing object under the
// same key is overwritten.
func (s *Store) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.container, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// List returns every object key in the container, in the order the gateway
// yields them.
func (s *Store) List(ctx context.Context) ([]string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.container, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list container %s: %w", s.container, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func isAlreadyExists(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "BucketAlreadyOwnedByYou", "BucketAlreadyExists":
		return true
	}
	return false
}

// publicReadPolicy grants anonymous GetObject on every object in the
// container, the S3 equivalent of public blob access: objects are
// world-readable while listing stays private.
func publicReadPolicy(container string) string {
	return fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`, container)
}
