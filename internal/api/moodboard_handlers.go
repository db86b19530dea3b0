package api

import (
	"github.com/go-json-experiment/json"
	"net/http"

	"github.com/paletteapp/palette-server/internal/aesthetic"
	domainerrors "github.com/paletteapp/palette-server/internal/errors"
	"github.com/paletteapp/palette-server/internal/http/response"
)

// detectRequest is the payload for POST /api/v1/detect.
type detectRequest struct {
	Tags          []string `json:"tags" validate:"required,min=1,dive,required"`
	MinConfidence float64  `json:"min_confidence" validate:"omitempty,gte=0,lte=1"`
}

// detectResponse carries the detections for a tag set.
type detectResponse struct {
	Detections []aesthetic.Detection `json:"detections"`
}

// moodboardRequest is the payload for POST /api/v1/moodboard.
type moodboardRequest struct {
	Vibe  string `json:"vibe" validate:"required,max=200"`
	Limit int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// handleListAesthetics returns the built-in aesthetic catalog.
func (s *Server) handleListAesthetics(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, aesthetic.Profiles(), s.logger)
}

// handleDetect scores a tag set against the aesthetic catalog.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	detections := s.moodboardService.DetectAesthetics(req.Tags, req.MinConfidence)
	if detections == nil {
		detections = []aesthetic.Detection{}
	}
	response.Success(w, detectResponse{Detections: detections}, s.logger)
}

// handleGenerateMoodboard builds a moodboard for a free-text vibe.
func (s *Server) handleGenerateMoodboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req moodboardRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	board, err := s.moodboardService.GenerateContentForVibe(ctx, req.Vibe, nil, req.Limit)
	if err != nil {
		s.logger.Error("Failed to generate moodboard", "error", err, "vibe", req.Vibe)
		response.HandleError(w, err, s.logger)
		return
	}

	// Every provider came back empty. The request itself was fine, so the
	// envelope says so without minting a board of nothing.
	if len(board.Items) == 0 {
		response.HandleError(w, domainerrors.NoResults("no content matched this vibe"), s.logger)
		return
	}

	response.Created(w, board, s.logger)
}
