package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/lanternfly/gallery"
)

//go:embed index.html
var indexHTML []byte

// Service is the upload and gallery surface consumed by the handlers.
type Service interface {
	Upload(ctx context.Context, u gallery.Upload) (string, error)
	Gallery(ctx context.Context) ([]string, error)
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// HandlerConfig configures the HTTP handler.
type HandlerConfig struct {
	CORS CORSConfig
}

// Handler provides the HTTP endpoints of the gallery service.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns the configured http.Handler.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Get("/", h.handleIndex)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Post("/upload", h.handleUpload)
		r.Get("/gallery", h.handleGallery)
	})

	return r
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleHealth is a liveness probe. It never touches the storage gateway.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, healthResponse{OK: true})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		// No usable file part; a part with an empty filename lands here too,
		// since multipart treats it as a plain form value.
		WriteError(w, http.StatusBadRequest, gallery.ErrMissingFile.Error())
		return
	}
	defer func() { _ = file.Close() }()

	u := gallery.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	url, err := h.service.Upload(r.Context(), u)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, uploadResponse{OK: true, URL: url})
}

func (h *Handler) handleGallery(w http.ResponseWriter, r *http.Request) {
	urls, err := h.service.Gallery(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	if urls == nil {
		urls = []string{}
	}

	_ = WriteJSON(w, http.StatusOK, galleryResponse{OK: true, Gallery: urls})
}
