// Package slog provides logging decorators for the carousel services.
package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/carousel"
	"github.com/google/uuid"
)

// Ensure LoggingExtractor implements carousel.ArtworkExtractor.
var _ carousel.ArtworkExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ArtworkExtractor with per-call logging: a run
// id, a hash of the source text for change detection, the record count
// and the duration.
type LoggingExtractor struct {
	next   carousel.ArtworkExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next carousel.ArtworkExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractArtworks delegates to the wrapped extractor and logs the
// operation.
func (e *LoggingExtractor) ExtractArtworks(html string) (artworks []*carousel.Artwork, err error) {
	run := uuid.New().String()
	defer func(begin time.Time) {
		e.logger.Info("artwork extraction",
			"run", run,
			"sourceHash", hashSource(html),
			"count", len(artworks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractArtworks(html)
}

// hashSource computes xxHash of the source text and returns a hex string.
func hashSource(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}
