package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scorecheck/scorecheck/internal/service"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	scheduleService *service.ScheduleService
	teamService     *service.TeamService
}

// NewHandler creates a new handler
func NewHandler(schedules *service.ScheduleService, teams *service.TeamService) *Handler {
	return &Handler{
		scheduleService: schedules,
		teamService:     teams,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "scorecheck",
		"version": "1.0.0",
	})
}

// GetScheduleBoard returns the today/yesterday schedule board. Upstream
// fetch failures surface as an empty board, never as an error page.
func (h *Handler) GetScheduleBoard(w http.ResponseWriter, r *http.Request) {
	board := h.scheduleService.Board(r.Context())
	respondJSON(w, http.StatusOK, board)
}

// GetLeagues returns the league listing
func (h *Handler) GetLeagues(w http.ResponseWriter, r *http.Request) {
	leagues := h.teamService.Leagues(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{"leagues": leagues})
}

// GetLeagueTeams returns one league's teams with routing identifiers and
// display labels
func (h *Handler) GetLeagueTeams(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	leagueID := vars["leagueID"]

	listing, err := h.teamService.LeagueTeams(r.Context(), leagueID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch league teams", err)
		return
	}

	respondJSON(w, http.StatusOK, listing)
}

// GetTeamPage returns a team's stat table and record-annotated game history
func (h *Handler) GetTeamPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	page, err := h.teamService.TeamPage(r.Context(), vars["leagueID"], vars["teamID"])
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch team details", err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// GetGamePlayers returns the per-game stat table for one of a team's games,
// falling back to season statistics with a notice when the box score is
// unavailable
func (h *Handler) GetGamePlayers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	players, err := h.teamService.GamePlayers(r.Context(), vars["leagueID"], vars["teamID"], vars["gameID"])
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch player stats", err)
		return
	}

	respondJSON(w, http.StatusOK, players)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
