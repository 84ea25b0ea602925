package gallery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// BlobStore is the storage gateway consumed by the service. Implementations
// must be safe for concurrent use by simultaneous requests.
type BlobStore interface {
	// Ensure creates the backing container if it does not already exist,
	// returning ErrContainerExists when it does.
	Ensure(ctx context.Context) error

	// Put writes an object under key, replacing any existing object with
	// the same key. contentType is preserved as object metadata.
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) error

	// List returns every object key in the container, in gateway order.
	List(ctx context.Context) ([]string, error)
}

// Service implements the upload and gallery operations on top of a
// BlobStore. It holds no mutable state and is safe for concurrent use.
type Service struct {
	store     BlobStore
	baseURL   string
	container string
	now       func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the clock used for object key derivation.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. baseURL is the public base under which
// stored objects are reachable; it and the container name are normalized so
// that object URLs carry exactly one slash between each component.
func NewService(store BlobStore, baseURL, container string, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		baseURL:   strings.TrimRight(baseURL, "/"),
		container: strings.Trim(container, "/"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateUpload checks an incoming upload against the acceptance rules:
// a file part must be present, the filename non-empty, and the declared
// content type one of AllowedContentTypes. Size is checked separately
// during Upload, after the content has been measured.
func ValidateUpload(u Upload) error {
	if u.Content == nil {
		return ErrMissingFile
	}
	if u.Filename == "" {
		return ErrEmptyFilename
	}
	if !AllowedContentTypes[u.ContentType] {
		return fmt.Errorf("%w: %s", ErrUnsupportedContentType, u.ContentType)
	}
	return nil
}

// Upload validates u, derives its storage key, writes it to the blob store
// with overwrite semantics, and returns the public URL of the stored
// object. Validation failures wrap ErrInvalidUpload; anything else is a
// storage failure.
func (s *Service) Upload(ctx context.Context, u Upload) (string, error) {
	if err := ValidateUpload(u); err != nil {
		return "", err
	}

	size, err := contentSize(u.Content)
	if err != nil {
		return "", fmt.Errorf("upload %s: measure size: %w", u.Filename, err)
	}
	if size > MaxUploadBytes {
		return "", ErrFileTooLarge
	}

	key := ObjectKey(s.now(), u.Filename)
	if err := s.store.Put(ctx, key, u.Content, size, u.ContentType); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	url := s.ObjectURL(key)
	slog.Info("uploaded image", "url", url, "size", size)
	return url, nil
}

// Gallery returns the public URL of every object in the container, in the
// order the gateway lists them.
func (s *Service) Gallery(ctx context.Context) ([]string, error) {
	keys, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}

	urls := make([]string, 0, len(keys))
	for _, k := range keys {
		urls = append(urls, s.ObjectURL(k))
	}
	return urls, nil
}

// ObjectURL builds the public URL for a stored object key as
// baseURL/container/key.
func (s *Service) ObjectURL(key string) string {
	return s.baseURL + "/" + s.container + "/" + strings.TrimLeft(key, "/")
}

// contentSize measures the full length of the content by seeking to the
// end, then rewinds so the upload starts from the beginning.
func contentSize(r io.ReadSeeker) (int64, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}
