package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/debashish967/cricbuzz-dashboard/internal/usecase"
)

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	input := usecase.ListLiveMatchesInput{
		Order: strings.TrimSpace(r.URL.Query().Get("order")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		input.Limit = limit
	}

	matches, err := h.liveMatchService.List(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]liveMatchDTO, 0, len(matches))
	for _, match := range matches {
		out = append(out, liveMatchToDTO(match))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	match, err := h.liveMatchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get live match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveMatchToDTO(match))
}

// RefreshLiveMatches runs one ingestion pass synchronously.
func (h *Handler) RefreshLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshLiveMatches")
	defer span.End()

	result, err := h.ingestionService.Ingest(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh live matches failed",
			"failure_kind", string(usecase.ClassifyFailure(err)),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestResultToDTO(result))
}

func (h *Handler) CreateLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLiveMatch")
	defer span.End()

	var req saveLiveMatchRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	match, err := h.liveMatchService.Save(ctx, usecase.SaveLiveMatchInput{
		MatchID:      req.MatchID,
		SeriesName:   req.SeriesName,
		Team1:        req.Team1,
		Team2:        req.Team2,
		Status:       req.Status,
		Description:  req.Description,
		Format:       req.Format,
		StartTS:      req.StartTS,
		VenueName:    req.VenueName,
		VenueCity:    req.VenueCity,
		VenueCountry: req.VenueCountry,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save live match failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, liveMatchToDTO(match))
}

func (h *Handler) UpdateLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLiveMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req updateLiveMatchRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	match, err := h.liveMatchService.Update(ctx, usecase.UpdateLiveMatchInput{
		MatchID:    matchID,
		SeriesName: req.SeriesName,
		Team1:      req.Team1,
		Team2:      req.Team2,
		Status:     req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update live match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveMatchToDTO(match))
}

func (h *Handler) DeleteLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLiveMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.liveMatchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete live match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deleteResultDTO{MatchID: matchID, Deleted: true})
}
