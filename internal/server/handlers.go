package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ontrackhk/ontrack/internal/narrative"
	"github.com/ontrackhk/ontrack/internal/survey"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Survey API is running"})
}

func (s *Server) handleGetSurveyPage(w http.ResponseWriter, r *http.Request) {
	pageNumber, err := strconv.Atoi(r.PathValue("page_number"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid page number"})
		return
	}
	userName := r.URL.Query().Get("user_name")

	page, err := s.svc.GetPage(r.Context(), pageNumber, userName)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleSubmitSurveyPage(w http.ResponseWriter, r *http.Request) {
	var req survey.SubmitPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}
	if err := s.svc.SubmitPage(r.Context(), req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "page": req.PageNumber})
}

func (s *Server) handleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var req survey.SubmitSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}
	result, err := s.svc.SubmitSurvey(r.Context(), req)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":              "success",
		"message":             "Survey completed successfully",
		"user_name":           result.UserName,
		"holland_codes":       result.HollandCode,
		"matching_industries": result.MatchingIndustries,
	})
}

func (s *Server) handleGetSurveyResults(w http.ResponseWriter, r *http.Request) {
	profile, err := s.svc.Results(r.Context(), r.PathValue("user_name"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleGetCareerPaths(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.CareerPaths(r.Context(), r.PathValue("user_name"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetJupasRecommendations(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.Recommendations(r.Context(), r.PathValue("user_name"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetEmergingCareers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	interests := narrative.Interests{
		FavoriteSport:       q.Get("favorite_sport"),
		PassionateActivity:  q.Get("passionate_activity"),
		BillionairePurchase: q.Get("billionaire_purchase"),
	}
	result, err := s.svc.EmergingCareers(r.Context(), r.PathValue("user_name"), interests)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetPersonalityAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.PersonalityAnalysis(r.Context(), r.PathValue("user_name"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type chatRequest struct {
	Message        string `json:"message"`
	PresetQuestion int    `json:"preset_question"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}
	result, err := s.svc.Chat(r.Context(), r.PathValue("user_name"), narrative.ChatInput{
		Message:        req.Message,
		PresetQuestion: req.PresetQuestion,
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
