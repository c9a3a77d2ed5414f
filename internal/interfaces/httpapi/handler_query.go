package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListQueries")
	defer span.End()

	templates := h.analyticsService.ListTemplates(ctx)
	out := make([]queryTemplateDTO, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, queryTemplateToDTO(tmpl))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RunQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunQuery")
	defer span.End()

	queryID := strings.TrimSpace(r.PathValue("queryID"))

	var req runQueryRequest
	if err := h.decodeJSON(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.analyticsService.Run(ctx, queryID, req.Params)
	if err != nil {
		h.logger.WarnContext(ctx, "run query failed", "query_id", queryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, queryResultToDTO(result))
}
