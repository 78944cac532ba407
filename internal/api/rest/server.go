package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scorecheck/scorecheck/internal/service"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, schedules *service.ScheduleService, teams *service.TeamService) *Server {
	handler := NewHandler(schedules, teams)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Schedule board
	api.HandleFunc("/games/today", handler.GetScheduleBoard).Methods("GET")

	// Leagues and teams
	api.HandleFunc("/leagues", handler.GetLeagues).Methods("GET")
	api.HandleFunc("/leagues/{leagueID}/teams", handler.GetLeagueTeams).Methods("GET")
	api.HandleFunc("/leagues/{leagueID}/teams/{teamID}", handler.GetTeamPage).Methods("GET")
	api.HandleFunc("/leagues/{leagueID}/teams/{teamID}/games/{gameID}/players", handler.GetGamePlayers).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr: fmt.Sprintf(":%s", port),
			// CORS wraps outside the router so OPTIONS preflights are
			// answered even though routes only register GET.
			Handler: CORSMiddleware(router),
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
