package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/groups", handler.ListTournamentGroups)
	mux.HandleFunc("GET /v1/groups/{groupID}/standings", handler.GetGroupStandings)
	mux.HandleFunc("GET /v1/matches/{matchID}/result", handler.GetMatchResult)
	mux.HandleFunc("GET /v1/matches/{matchID}/breakdown", handler.GetMatchBreakdown)
	mux.HandleFunc("GET /v1/registrations/{teamRegID}/stats", handler.GetTeamRegistrationStats)
	mux.HandleFunc("GET /v1/people/{personID}/stats", handler.GetPersonStats)
}

func registerLifecycleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches/{matchID}/start", handler.StartMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/finish", handler.FinishMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/events", handler.RecordMatchEvent)
}
