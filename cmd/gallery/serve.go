package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lanternfly/gallery"
	"github.com/lanternfly/gallery/blobstore"
	"github.com/lanternfly/gallery/config"
	galleryhttp "github.com/lanternfly/gallery/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the gallery HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "HTTP server port")
	serveCmd.Flags().String("container", "", "storage container name (env: GALLERY_STORAGE_CONTAINER)")
	serveCmd.Flags().String("public-url", "", "public base URL for stored objects (env: GALLERY_STORAGE_PUBLIC_URL)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	configFiles, _ := cmd.Flags().GetStringSlice("config")

	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	setupLogging(cfg.Env, cfg.Log.Level)

	store, err := blobstore.New(blobstore.Config{
		Endpoint:       cfg.Storage.Endpoint,
		AccessKey:      cfg.Storage.AccessKey,
		SecretKey:      cfg.Storage.SecretKey,
		UseSSL:         cfg.Storage.UseSSL,
		Container:      cfg.Storage.Container,
		RequestTimeout: time.Duration(cfg.Storage.RequestTimeout) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init blob store: %w", err)
	}

	// Bootstrap the container. Already-exists is the normal case on
	// restart; anything else (auth, transport) aborts startup.
	switch err := store.Ensure(cmd.Context()); {
	case err == nil:
		slog.Info("created storage container", "container", cfg.Storage.Container)
	case errors.Is(err, gallery.ErrContainerExists):
		slog.Debug("storage container already exists", "container", cfg.Storage.Container)
	default:
		return fmt.Errorf("ensure storage container: %w", err)
	}

	service := gallery.NewService(store, cfg.Storage.PublicURL, cfg.Storage.Container)

	handlerConfig := galleryhttp.HandlerConfig{
		CORS: cfg.CORS,
	}
	handler := galleryhttp.NewHandler(&handlerConfig, service)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "container", cfg.Storage.Container)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
