// Package serve starts the HTTP upload/convert server.
package serve

import (
	"errors"
	"net/http"
	"time"

	cmdcommon "salesconv/cmd/common"
	"salesconv/cmd/root"
	"salesconv/internal/config"
	"salesconv/internal/logging"
	"salesconv/internal/server"

	"github.com/spf13/cobra"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP upload/convert endpoint",
	Long: `Serve an HTTP endpoint that accepts CSV uploads and returns the converted
template CSV. GET /upload serves a minimal upload form; POST /convert takes a
multipart "file" field and responds with the converted CSV as an attachment.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogger()
	cfg := config.Get()

	listenAddr := addr
	if listenAddr == "" {
		listenAddr = cfg.Server.Addr
	}

	engine := cmdcommon.BuildEngine(log)
	srv := server.New(engine, log, cfg.Server.TempDirectory, cfg.Server.MaxUploadMB)

	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	log.Info("Starting HTTP server",
		logging.Field{Key: "addr", Value: listenAddr})

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
