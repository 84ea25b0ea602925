// Package gallery implements a small image-upload service backed by an
// S3-compatible object store.
//
// Uploads are validated (declared content type, size, filename), stored
// under a timestamped sanitized key, and exposed as public URLs. Stored
// objects are immutable and never deleted by this service; uploading the
// same filename twice within the same second replaces the earlier object.
//
// # Key Components
//
//   - Service: upload and gallery operations on top of a BlobStore
//   - BlobStore: interface to the storage gateway (see the blobstore
//     package for the MinIO-backed implementation)
//   - SanitizeFilename / ObjectKey: the storage-key derivation contract
//
// See the http package for the REST API and cmd/gallery for the server
// binary.
package gallery
