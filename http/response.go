package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lanternfly/gallery"
)

// Every endpoint answers with a JSON envelope carrying an "ok" flag.

type healthResponse struct {
	OK bool `json:"ok"`
}

type uploadResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}

type galleryResponse struct {
	OK      bool     `json:"ok"`
	Gallery []string `json:"gallery"`
}

// ErrorResponse is the JSON envelope for failed requests.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error envelope.
func WriteError(w http.ResponseWriter, code int, message string) {
	if err := WriteJSON(w, code, ErrorResponse{OK: false, Error: message}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError converts a service error to its HTTP response: upload
// validation failures become 400, everything else is a storage or internal
// failure surfaced as 500. The underlying message is passed through.
func HandleError(w http.ResponseWriter, err error) {
	if errors.Is(err, gallery.ErrInvalidUpload) {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Error("request error", "error", err)
	WriteError(w, http.StatusInternalServerError, err.Error())
}
