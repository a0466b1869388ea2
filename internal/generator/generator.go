package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/radiorabe/nowplaypadgen/internal/config"
	"github.com/radiorabe/nowplaypadgen/internal/dlplus"
	"github.com/radiorabe/nowplaypadgen/internal/metrics"
	"github.com/radiorabe/nowplaypadgen/internal/renderer"
	"github.com/radiorabe/nowplaypadgen/internal/show"
	"github.com/radiorabe/nowplaypadgen/internal/track"
)

// Generator holds the now-playing state and produces the DLS output file.
// It is safe for concurrent use; the HTTP API and the refresh loop share it.
type Generator struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu           sync.RWMutex
	currentTrack *track.Track
	currentShow  *show.Show
	message      *dlplus.Message
	lastWrite    time.Time

	// Refresh loop control
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Status is a snapshot of the generator state for the HTTP API.
type Status struct {
	Artist     string    `json:"artist"`
	Title      string    `json:"title"`
	Show       string    `json:"show"`
	ShowActive bool      `json:"show_active"`
	Message    string    `json:"message"`
	MessageLen int       `json:"message_bytes"`
	TagCount   int       `json:"tag_count"`
	LastWrite  time.Time `json:"last_write,omitempty"`
	OutputPath string    `json:"output_path"`
	Format     string    `json:"format"`
}

// New creates a generator and starts its refresh loop when a write interval
// is configured.
func New(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Generator {
	ctx, cancel := context.WithCancel(context.Background())

	g := &Generator{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		message: dlplus.NewMessage(),
		ctx:     ctx,
		cancel:  cancel,
	}

	if cfg.Show.Name != "" {
		g.currentShow = show.New(cfg.Show.Name)
	}

	if interval := cfg.Pad.GetWriteInterval(); interval > 0 {
		g.wg.Add(1)
		go g.refreshLoop(interval)
	}

	return g
}

// Stop stops the refresh loop and waits for it to exit.
func (g *Generator) Stop() {
	g.cancel()
	g.wg.Wait()
}

// UpdateTrack replaces the current track, rebuilds the DL Plus message and
// rewrites the DLS file. Objects superseded by the new build are expired.
func (g *Generator) UpdateTrack(t *track.Track) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.metrics.RecordTrackUpdate()

	message := dlplus.NewMessage()

	artist, err := dlplus.NewObject("ITEM.ARTIST", t.Artist, false)
	if err != nil {
		return fmt.Errorf("artist: %w", err)
	}
	title, err := dlplus.NewObject("ITEM.TITLE", t.Title, false)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}

	if err := message.AddObject(artist); err != nil {
		return err
	}
	if err := message.AddObject(title); err != nil {
		return err
	}

	if err := message.Build(g.cfg.Pad.Format); err != nil {
		g.metrics.RecordBuildError()
		return fmt.Errorf("failed to build DL Plus message: %w", err)
	}

	for _, obj := range g.message.Objects() {
		obj.Expire()
	}

	g.currentTrack = t
	g.message = message
	g.metrics.RecordMessageBuilt(len(message.String()), len(message.Tags()))

	g.logger.Info("Now playing updated",
		slog.String("artist", t.Artist),
		slog.String("title", t.Title),
		slog.String("message", message.String()),
	)

	return g.writeLocked()
}

// Message returns the current DL Plus message.
func (g *Generator) Message() *dlplus.Message {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.message
}

// GetStatus returns a snapshot of the generator state.
func (g *Generator) GetStatus() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Status{
		Message:    g.message.String(),
		MessageLen: len(g.message.String()),
		TagCount:   len(g.message.Tags()),
		LastWrite:  g.lastWrite,
		OutputPath: g.cfg.Pad.Output,
		Format:     g.cfg.Pad.Format,
	}

	if g.currentTrack != nil {
		s.Artist = g.currentTrack.Artist
		s.Title = g.currentTrack.Title
	}
	if g.currentShow != nil {
		s.Show = g.currentShow.Name
		s.ShowActive = g.currentShow.Active()
	}

	return s
}

// Write renders the current message and replaces the DLS file.
func (g *Generator) Write() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writeLocked()
}

func (g *Generator) writeLocked() error {
	if !g.message.Built() {
		return nil
	}

	err := renderer.NewODRPadEnc(g.message).WriteFile(g.cfg.Pad.Output)
	g.metrics.RecordDLSWrite(err)
	if err != nil {
		g.logger.Error("Failed to write DLS file",
			slog.String("path", g.cfg.Pad.Output),
			slog.String("error", err.Error()),
		)
		return err
	}

	g.lastWrite = time.Now().UTC()
	g.logger.Debug("DLS file written",
		slog.String("path", g.cfg.Pad.Output),
		slog.Int("bytes", len(g.message.String())),
	)
	return nil
}

// refreshLoop periodically rewrites the DLS file. ODR-PadEnc tolerates a
// vanished file between rewrites, but a stale one would keep outdated
// labels on air after a crash of the writer.
func (g *Generator) refreshLoop(interval time.Duration) {
	defer g.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-g.ctx.Done():
			return
		case <-ticker.C:
			if err := g.Write(); err != nil {
				// Already logged in writeLocked; keep the loop running.
				continue
			}
		}
	}
}
