package httpapi

import (
	"net/http"
	"strings"

	"github.com/debashish967/cricbuzz-dashboard/internal/usecase"
)

func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScorecard")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	card, err := h.scorecardService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorecardToDTO(card))
}

func (h *Handler) UpsertTeamScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertTeamScore")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req teamScoreRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	score, err := h.scorecardService.RecordTeamScore(ctx, usecase.RecordTeamScoreInput{
		MatchID:  matchID,
		TeamName: req.TeamName,
		Runs:     req.Runs,
		Wickets:  req.Wickets,
		Overs:    req.Overs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record team score failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamScoreToDTO(score))
}

func (h *Handler) AddBattingLine(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddBattingLine")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req battingLineRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	line, err := h.scorecardService.RecordBattingLine(ctx, usecase.RecordBattingLineInput{
		MatchID:    matchID,
		PlayerName: req.PlayerName,
		Role:       req.Role,
		Runs:       req.Runs,
		Balls:      req.Balls,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record batting line failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, battingLineToDTO(line))
}
