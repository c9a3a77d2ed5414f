package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
}

func registerLiveMatchRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("GET /v1/live-matches", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/live-matches/{matchID}", handler.GetLiveMatch)
	mux.Handle("POST /v1/live-matches/refresh", RequireAdminToken(adminToken, http.HandlerFunc(handler.RefreshLiveMatches)))
	mux.Handle("POST /v1/live-matches", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateLiveMatch)))
	mux.Handle("PUT /v1/live-matches/{matchID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.UpdateLiveMatch)))
	mux.Handle("DELETE /v1/live-matches/{matchID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteLiveMatch)))
	// rows ingested without a match id are stored under the empty key
	mux.Handle("DELETE /v1/live-matches/{$}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteLiveMatch)))
}

func registerScorecardRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("GET /v1/live-matches/{matchID}/scorecard", handler.GetScorecard)
	mux.Handle("PUT /v1/live-matches/{matchID}/scorecard/teams", RequireAdminToken(adminToken, http.HandlerFunc(handler.UpsertTeamScore)))
	mux.Handle("POST /v1/live-matches/{matchID}/scorecard/batting", RequireAdminToken(adminToken, http.HandlerFunc(handler.AddBattingLine)))
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/queries", handler.ListQueries)
	mux.HandleFunc("POST /v1/queries/{queryID}/run", handler.RunQuery)
}
