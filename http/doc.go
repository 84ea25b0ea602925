// Package http provides the REST API of the gallery service.
//
// Endpoints:
//
//   - GET  /               serves the static index page
//   - GET  /api/v1/health  liveness probe, never contacts storage
//   - POST /api/v1/upload  multipart upload (field "file")
//   - GET  /api/v1/gallery public URLs of all stored objects
//
// Every response is a JSON envelope with an "ok" flag; failures carry an
// "error" message. Upload validation failures map to 400, storage failures
// to 500.
//
// Create a handler with a Service implementation and mount its router:
//
//	handler := http.NewHandler(&http.HandlerConfig{}, service)
//	http.ListenAndServe(":8080", handler.Router())
package http
