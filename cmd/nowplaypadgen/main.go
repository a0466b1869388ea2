package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radiorabe/nowplaypadgen/internal/config"
	"github.com/radiorabe/nowplaypadgen/internal/dlplus"
	"github.com/radiorabe/nowplaypadgen/internal/generator"
	"github.com/radiorabe/nowplaypadgen/internal/metrics"
	"github.com/radiorabe/nowplaypadgen/internal/renderer"
	"github.com/radiorabe/nowplaypadgen/internal/server"
	"github.com/radiorabe/nowplaypadgen/internal/track"
)

const (
	defaultConfigPath = "configs/config.yaml"
	serviceName       = "nowplaypadgen"
	serviceVersion    = "1.0.0"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	artist := flag.String("artist", "", "The name of the artist (one-shot mode)")
	title := flag.String("title", "", "The title of the currently playing track (one-shot mode)")
	file := flag.String("file", "", "Audio file to read artist and title from (one-shot mode)")
	showName := flag.String("show", "", "Name of the current show, overrides the configured one")
	version := flag.Bool("version", false, "Display the version")
	flag.Parse()

	if *version {
		fmt.Printf("%s %s\n", serviceName, serviceVersion)
		return
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger based on configuration
	logger := initLogger(cfg.Logging)

	if *showName != "" {
		cfg.Show.Name = *showName
	}

	// One-shot mode: render the DLS block for a single track and exit.
	if *artist != "" || *title != "" || *file != "" {
		if err := oneShot(cfg, *artist, *title, *file); err != nil {
			logger.Error("Failed to render DLS block", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	// Log service startup
	logger.Info("Service starting",
		slog.String("service", serviceName),
		slog.String("version", serviceVersion),
		slog.String("config_path", *configPath),
	)

	logger.Info("Configuration loaded",
		slog.String("dls_output", cfg.Pad.Output),
		slog.String("format", cfg.Pad.Format),
		slog.Int("write_interval", cfg.Pad.WriteInterval),
		slog.String("show", cfg.Show.Name),
		slog.String("log_level", cfg.Logging.Level),
	)

	// Initialize Prometheus metrics
	appMetrics := metrics.NewMetrics()
	logger.Info("Prometheus metrics initialized")

	// Initialize the PAD generator
	gen := generator.New(cfg, logger, appMetrics)
	logger.Info("PAD generator initialized",
		slog.Duration("write_interval", cfg.Pad.GetWriteInterval()),
	)

	// Initialize HTTP API server (if enabled)
	var httpServer *server.HTTPServer
	if cfg.HTTP.Enabled {
		httpServer = server.NewHTTPServer(cfg.HTTP, logger, cfg, gen, appMetrics)
		logger.Info("HTTP API server initialized",
			slog.String("address", fmt.Sprintf("%s:%d", cfg.HTTP.Address, cfg.HTTP.Port)),
		)

		if err := httpServer.Start(); err != nil {
			logger.Error("Failed to start HTTP server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Service started successfully, waiting for signals...")

	sig := <-sigChan
	logger.Info("Received shutdown signal", slog.String("signal", sig.String()))

	logger.Info("Starting graceful shutdown...")

	// Stop HTTP server first (stop accepting new updates)
	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Stop(shutdownCtx); err != nil {
			logger.Error("Error stopping HTTP server", slog.String("error", err.Error()))
		}
	}

	// Stop the generator (refresh loop)
	gen.Stop()

	logger.Info("Service stopped")
}

// oneShot builds a single DL Plus message and writes the rendered block to
// stdout instead of the configured DLS file.
func oneShot(cfg *config.Config, artist, title, file string) error {
	t := track.New(artist, title)

	if file != "" {
		fileTrack, err := track.FromFile(file)
		if err != nil {
			return err
		}
		// Explicit flags win over file tags.
		if artist == "" {
			t.Artist = fileTrack.Artist
		}
		if title == "" {
			t.Title = fileTrack.Title
		}
	}

	message := dlplus.NewMessage()

	artistObj, err := dlplus.NewObject("ITEM.ARTIST", t.Artist, false)
	if err != nil {
		return err
	}
	titleObj, err := dlplus.NewObject("ITEM.TITLE", t.Title, false)
	if err != nil {
		return err
	}

	if err := message.AddObject(artistObj); err != nil {
		return err
	}
	if err := message.AddObject(titleObj); err != nil {
		return err
	}

	if err := message.Build(cfg.Pad.Format); err != nil {
		return err
	}

	fmt.Println(renderer.NewODRPadEnc(message).String())
	return nil
}

// initLogger creates and configures the structured logger based on configuration
func initLogger(cfg config.LoggingConfig) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // default fallback
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Determine output destination
	var output *os.File
	switch cfg.Output {
	case "stderr":
		output = os.Stderr
	case "stdout", "":
		output = os.Stdout
	default:
		// Assume it's a file path
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v, falling back to stdout\n", cfg.Output, err)
			output = os.Stdout
		} else {
			output = file
		}
	}

	// Create handler based on format
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
