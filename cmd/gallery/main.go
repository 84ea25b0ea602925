package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "gallery",
	Short:   "Image upload and gallery server backed by S3-compatible object storage",
	Long: `Gallery is a small web service that accepts image uploads, stores
them in an S3-compatible object store under timestamped keys, and serves
the stored images as a public gallery.`,
}

func init() {
	rootCmd.PersistentFlags().StringSlice("config", nil, "config file path (default: ./config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
