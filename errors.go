package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUpload is the base error for client-side upload validation
	// failures. Handlers map anything wrapping it to HTTP 400.
	ErrInvalidUpload = errors.New("invalid upload")

	// ErrMissingFile is returned when the request carries no file part.
	ErrMissingFile = fmt.Errorf("%w: missing file field", ErrInvalidUpload)

	// ErrEmptyFilename is returned when the file part has an empty filename.
	ErrEmptyFilename = fmt.Errorf("%w: empty filename", ErrInvalidUpload)

	// ErrUnsupportedContentType is returned when the declared content type
	// is not an accepted image type.
	ErrUnsupportedContentType = fmt.Errorf("%w: unsupported content type", ErrInvalidUpload)

	// ErrFileTooLarge is returned when the upload exceeds MaxUploadBytes.
	ErrFileTooLarge = fmt.Errorf("%w: file too large (max 10 MiB)", ErrInvalidUpload)

	// ErrContainerExists is reported by a BlobStore when the container it
	// was asked to create is already present. Startup swallows it.
	ErrContainerExists = errors.New("container already exists")
)
