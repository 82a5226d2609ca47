package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"

	"github.com/df07/go-terrain-raster/web/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Listening address")
	dataset := flag.String("dataset", "", "Terrain data file with 'lat lon alt' records")
	planar := flag.Bool("planar", false, "Skip geodetic projection, dataset coordinates are already planar")
	maxEdge := flag.Float64("max-edge", 0, "Maximum triangle edge length in meters (0 = default)")
	maxWidth := flag.Int("max-width", server.DefaultMaxWidth, "Largest accepted render width")
	logLevel := flag.String("log-level", logs.InfoLevel.String(), "Log level (debug|info|warning|error)")
	flag.Parse()

	logs.SetLevel(logs.ParseLevel(*logLevel))
	logs.Encoder = json.Marshal

	if *dataset == "" {
		fmt.Fprintln(os.Stderr, "missing required -dataset flag")
		flag.Usage()
		os.Exit(2)
	}

	srv, err := server.New(server.Config{
		DatasetPath:   *dataset,
		Planar:        *planar,
		MaxEdgeLength: *maxEdge,
		MaxWidth:      *maxWidth,
	})
	if err != nil {
		logs.Fatal(errors.New("loading dataset failed").Wrap(err))
	}

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logs.Warn(errors.Newf("shutting down the server failed").
				WithTag("addr", *addr).
				Wrap(err))
		}
	}()

	logs.WithTag("addr", *addr).Info("starting server")

	switch err := httpServer.ListenAndServe(); err {
	case nil, http.ErrServerClosed:
		logs.WithTag("addr", *addr).Info("stopping server")
	default:
		logs.Fatal(errors.Newf("server stopped").
			WithTag("addr", *addr).
			Wrap(err))
	}
}
