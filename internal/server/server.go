// Package server exposes the survey service over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/ontrackhk/ontrack/internal/survey"
)

// Server holds the HTTP surface of the survey backend.
type Server struct {
	svc            *survey.Service
	logger         *slog.Logger
	allowedOrigins []string
}

func New(svc *survey.Service, logger *slog.Logger, allowedOrigins []string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger, allowedOrigins: allowedOrigins}
}

// Handler builds the route table with logging and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /get_survey_page/{page_number}", s.handleGetSurveyPage)
	mux.HandleFunc("POST /submit_survey_page/", s.handleSubmitSurveyPage)
	mux.HandleFunc("POST /submit_survey/", s.handleSubmitSurvey)
	mux.HandleFunc("GET /get_survey_results/{user_name}", s.handleGetSurveyResults)
	mux.HandleFunc("GET /get_career_paths/{user_name}", s.handleGetCareerPaths)
	mux.HandleFunc("GET /get_jupas_recommendations/{user_name}", s.handleGetJupasRecommendations)
	mux.HandleFunc("GET /get_emerging_careers/{user_name}", s.handleGetEmergingCareers)
	mux.HandleFunc("GET /get_personality_analysis/{user_name}", s.handleGetPersonalityAnalysis)
	mux.HandleFunc("POST /chat/{user_name}", s.handleChat)

	return withLogging(s.logger, withCORS(s.allowedOrigins, mux))
}
