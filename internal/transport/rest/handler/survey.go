package handler

import (
	"errors"
	"net/http"

	"fizikl/internal/model"
	"fizikl/internal/service"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

// SurveyHandler handles survey submission and result retrieval
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// Submit handles POST /api/survey
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var answers model.SurveyAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.surveySvc.Submit(r.Context(), answers)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save survey: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, model.SurveyResponse{
		ID:      record.ID,
		Results: record.Results,
	})
}

// GetResults handles GET /api/results/{id}
func (h *SurveyHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.surveySvc.Fetch(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load survey: "+err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "Survey with ID '"+id+"' not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
