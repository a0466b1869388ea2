package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/radiorabe/nowplaypadgen/internal/config"
	"github.com/radiorabe/nowplaypadgen/internal/generator"
	"github.com/radiorabe/nowplaypadgen/internal/metrics"
	"github.com/radiorabe/nowplaypadgen/internal/track"
)

// HTTPServer provides HTTP API endpoints for now-playing updates and
// monitoring
type HTTPServer struct {
	server    *http.Server
	logger    *slog.Logger
	config    *config.Config
	generator *generator.Generator
	metrics   *metrics.Metrics

	startTime time.Time
}

// NowPlayingRequest is the JSON body of a POST /nowplaying update.
type NowPlayingRequest struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// NewHTTPServer creates a new HTTP API server
func NewHTTPServer(cfg config.HTTPConfig, logger *slog.Logger,
	appConfig *config.Config, gen *generator.Generator, m *metrics.Metrics) *HTTPServer {

	h := &HTTPServer{
		logger:    logger,
		config:    appConfig,
		generator: gen,
		metrics:   m,
		startTime: time.Now(),
	}

	// Create HTTP server with routes
	mux := http.NewServeMux()
	h.setupRoutes(mux)

	h.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return h
}

// setupRoutes configures HTTP API routes
func (h *HTTPServer) setupRoutes(mux *http.ServeMux) {
	// Health check endpoint
	mux.HandleFunc("/health", h.withMetrics("/health", h.handleHealth))

	// Now-playing update endpoint
	mux.HandleFunc("/nowplaying", h.withMetrics("/nowplaying", h.handleNowPlaying))

	// Current message endpoint
	mux.HandleFunc("/message", h.withMetrics("/message", h.handleMessage))

	// Configuration endpoint
	mux.HandleFunc("/config", h.withMetrics("/config", h.handleConfig))

	// Prometheus metrics endpoint (no metrics needed for metrics endpoint)
	mux.Handle("/metrics", promhttp.Handler())

	// Root endpoint with API documentation
	mux.HandleFunc("/", h.withMetrics("/", h.handleRoot))
}

// withMetrics wraps an HTTP handler with metrics collection
func (h *HTTPServer) withMetrics(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		// Create a response writer wrapper to capture status code
		ww := &responseWriter{ResponseWriter: w, statusCode: 200}

		// Call the original handler
		handler(ww, r)

		// Record metrics
		duration := time.Since(startTime).Seconds()
		statusCode := fmt.Sprintf("%d", ww.statusCode)

		h.metrics.RecordHTTPRequest(r.Method, endpoint, statusCode, duration)

		// Record error if status code indicates an error
		if ww.statusCode >= 400 {
			errorType := "client_error"
			if ww.statusCode >= 500 {
				errorType = "server_error"
			}
			h.metrics.RecordHTTPError(r.Method, endpoint, errorType)
		}
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Start starts the HTTP server
func (h *HTTPServer) Start() error {
	h.logger.Info("Starting HTTP API server",
		slog.String("address", h.server.Addr),
	)

	go func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.logger.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server
func (h *HTTPServer) Stop(ctx context.Context) error {
	h.logger.Info("Stopping HTTP API server...")

	return h.server.Shutdown(ctx)
}

// handleHealth implements the /health endpoint
func (h *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(h.startTime)
	status := h.generator.GetStatus()

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    uptime.String(),
		"service": map[string]interface{}{
			"name":    "nowplaypadgen",
			"version": "1.0.0",
		},
		"components": map[string]interface{}{
			"generator": map[string]interface{}{
				"status":      "running",
				"message":     status.Message,
				"last_write":  status.LastWrite,
				"output_path": status.OutputPath,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// handleNowPlaying implements the /nowplaying endpoint
func (h *HTTPServer) handleNowPlaying(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.generator.GetStatus())

	case http.MethodPost:
		var req NowPlayingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if req.Artist == "" && req.Title == "" {
			http.Error(w, "artist or title required", http.StatusBadRequest)
			return
		}

		if err := h.generator.UpdateTrack(track.New(req.Artist, req.Title)); err != nil {
			h.logger.Error("Failed to update now playing",
				slog.String("artist", req.Artist),
				slog.String("title", req.Title),
				slog.String("error", err.Error()),
			)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.generator.GetStatus())

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleMessage implements the /message endpoint
func (h *HTTPServer) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	msg := h.generator.Message()

	tags := make([]map[string]interface{}, 0, len(msg.Tags()))
	for _, tag := range msg.Tags() {
		tags = append(tags, map[string]interface{}{
			"content_type": tag.ContentType,
			"code":         tag.Code(),
			"start":        tag.Start,
			"length":       tag.Length,
		})
	}

	response := map[string]interface{}{
		"message":   msg.String(),
		"format":    msg.FormatString(),
		"built":     msg.Built(),
		"tags":      tags,
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleConfig implements the /config endpoint
func (h *HTTPServer) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sanitizedConfig := map[string]interface{}{
		"pad": map[string]interface{}{
			"output":         h.config.Pad.Output,
			"format":         h.config.Pad.Format,
			"write_interval": h.config.Pad.WriteInterval,
		},
		"show": map[string]interface{}{
			"name":             h.config.Show.Name,
			"default_duration": h.config.Show.DefaultDuration,
		},
		"logging": map[string]interface{}{
			"level":  h.config.Logging.Level,
			"format": h.config.Logging.Format,
			"output": h.config.Logging.Output,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sanitizedConfig)
}

// handleRoot implements the / endpoint with API documentation
func (h *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	apiDoc := map[string]interface{}{
		"service": "Now Playing PAD Generator",
		"version": "1.0.0",
		"endpoints": map[string]interface{}{
			"GET /":            "API documentation",
			"GET /health":      "Service health check",
			"GET /nowplaying":  "Current now-playing state",
			"POST /nowplaying": "Update now-playing track ({\"artist\": ..., \"title\": ...})",
			"GET /message":     "Current DL Plus message and tags",
			"GET /config":      "Get service configuration",
			"GET /metrics":     "Prometheus metrics",
		},
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(apiDoc)
}
