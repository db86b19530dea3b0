// Package service wires detection, projection and aggregation into the
// moodboard operations the API layer exposes.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/paletteapp/palette-server/internal/aesthetic"
	"github.com/paletteapp/palette-server/internal/aggregate"
	"github.com/paletteapp/palette-server/internal/color"
	"github.com/paletteapp/palette-server/internal/content"
	domainerrors "github.com/paletteapp/palette-server/internal/errors"
	"github.com/paletteapp/palette-server/internal/id"
	"github.com/paletteapp/palette-server/internal/metrics"
	"github.com/paletteapp/palette-server/internal/projection"
	"github.com/paletteapp/palette-server/internal/util"
)

// kindOrder fixes the round-robin interleave order for the unified feed.
var kindOrder = []content.Kind{
	content.KindMusic,
	content.KindFilm,
	content.KindImage,
	content.KindBlog,
}

// Board is one generated moodboard.
type Board struct {
	ID          string                `json:"id"`
	Vibe        string                `json:"vibe"`
	AccentColor string                `json:"accent_color"`
	Detections  []aesthetic.Detection `json:"detections"`
	Items       []content.Item        `json:"items"`
	CreatedAt   time.Time             `json:"created_at"`
}

// MoodboardService owns aesthetic detection and content generation.
type MoodboardService struct {
	aggregator *aggregate.Aggregator
	providers  []aggregate.Named
	logger     *slog.Logger
}

// NewMoodboardService creates a new moodboard service.
func NewMoodboardService(aggregator *aggregate.Aggregator, providers []aggregate.Named, logger *slog.Logger) *MoodboardService {
	return &MoodboardService{
		aggregator: aggregator,
		providers:  providers,
		logger:     logger,
	}
}

// DetectAesthetics scores the tags against the catalog. Strict detection
// (profile thresholds apply) is tried first; when nothing clears its bar the
// relaxed ranking fills in, so callers still learn which profiles the input
// leans toward. An empty result means the tags matched nothing at all above
// minConfidence.
func (s *MoodboardService) DetectAesthetics(tags []string, minConfidence float64) []aesthetic.Detection {
	tags = util.NormalizeTags(tags)
	detections := aesthetic.Detect(tags, minConfidence)
	if len(detections) > 0 {
		return detections
	}
	return aesthetic.Rank(tags, minConfidence)
}

// GenerateContentForVibe builds a moodboard for a free-text vibe. When the
// caller supplies no detections, the vibe text is tokenized and detected;
// if that also fails, a deterministic hash-based fallback profile keeps the
// board generable. Provider results merge round-robin across kinds so no
// single medium dominates the feed.
func (s *MoodboardService) GenerateContentForVibe(ctx context.Context, vibe string, detections []aesthetic.Detection, limit int) (*Board, error) {
	if len(s.providers) == 0 {
		return nil, domainerrors.ProviderUnavailable("no content providers configured")
	}
	if limit <= 0 {
		limit = 20
	}

	if len(detections) == 0 {
		detections = s.DetectAesthetics(vibeTags(vibe), 0)
	}
	if len(detections) == 0 {
		fallback := aesthetic.Fallback(vibe)
		s.logger.Info("vibe matched no profile, using fallback",
			"vibe", vibe,
			"profile", fallback.Profile.ID,
		)
		detections = []aesthetic.Detection{fallback}
	}

	params := projection.Project(detections)
	byKind := s.aggregator.AggregateAll(ctx, s.providers, aggregate.Request{
		Params: params,
		Vibe:   vibe,
		Limit:  limit,
	})

	boardID, err := id.Generate("board")
	if err != nil {
		return nil, fmt.Errorf("generate board ID: %w", err)
	}

	board := &Board{
		ID:          boardID,
		Vibe:        vibe,
		AccentColor: color.ForSeed(boardID),
		Detections:  detections,
		Items:       interleave(byKind, limit),
		CreatedAt:   time.Now(),
	}

	metrics.BoardsGenerated.Inc()
	s.logger.Info("moodboard generated",
		"board_id", boardID,
		"detections", len(detections),
		"items", len(board.Items),
	)
	return board, nil
}

// vibeTags tokenizes a vibe into detection tags. The whole phrase is kept as
// a tag alongside its words so multi-word profile names still match.
func vibeTags(vibe string) []string {
	vibe = strings.TrimSpace(strings.ToLower(vibe))
	if vibe == "" {
		return nil
	}
	fields := strings.Fields(vibe)
	if len(fields) <= 1 {
		return fields
	}
	return append([]string{vibe}, fields...)
}

// interleave merges the per-kind result sets round-robin in a fixed kind
// order, preserving each kind's internal ranking, and truncates to limit.
func interleave(byKind map[content.Kind][]content.Item, limit int) []content.Item {
	merged := make([]content.Item, 0, limit)
	for i := 0; ; i++ {
		advanced := false
		for _, kind := range kindOrder {
			items := byKind[kind]
			if i < len(items) {
				merged = append(merged, items[i])
				advanced = true
				if len(merged) == limit {
					return merged
				}
			}
		}
		if !advanced {
			return merged
		}
	}
}
