package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"nutriplan/internal/model"
	"nutriplan/internal/service"
)

// SessionHandler handles intake session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// ToggleRequest is the request body for option toggles
type ToggleRequest struct {
	OptionID string `json:"optionId"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Create(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.sessionSvc.State(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SetAnswer handles PUT /v1/sessions/{sessionId}/answers/{key}
func (h *SessionHandler) SetAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var v model.Value
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.SetAnswer(r.Context(), vars["sessionId"], vars["key"], v)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ToggleOption handles POST /v1/sessions/{sessionId}/answers/{key}/toggle
func (h *SessionHandler) ToggleOption(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OptionID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.ToggleOption(r.Context(), vars["sessionId"], vars["key"], req.OptionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SetFollowUp handles PUT /v1/sessions/{sessionId}/followups/{subKey}
func (h *SessionHandler) SetFollowUp(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var v model.Value
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.SetFollowUp(r.Context(), vars["sessionId"], vars["subKey"], v)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ToggleFollowUp handles POST /v1/sessions/{sessionId}/followups/{subKey}/toggle
func (h *SessionHandler) ToggleFollowUp(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OptionID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.ToggleFollowUp(r.Context(), vars["sessionId"], vars["subKey"], req.OptionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Next handles POST /v1/sessions/{sessionId}/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.sessionSvc.Next)
}

// Back handles POST /v1/sessions/{sessionId}/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.sessionSvc.Back)
}

// Skip handles POST /v1/sessions/{sessionId}/skip
func (h *SessionHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.sessionSvc.Skip)
}

// Intakes handles GET /v1/intakes
func (h *SessionHandler) Intakes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	records, err := h.sessionSvc.RecentIntakes(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Completion handles GET /v1/sessions/{sessionId}/completion
func (h *SessionHandler) Completion(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	completion, err := h.sessionSvc.Completion(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if completion == nil {
		writeError(w, http.StatusNotFound, "session not completed")
		return
	}
	writeJSON(w, http.StatusOK, completion)
}

func (h *SessionHandler) move(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, sessionID string) (*service.StepView, error)) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := fn(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
