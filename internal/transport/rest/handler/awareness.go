package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hsemanager/internal/model"
	"hsemanager/internal/service"
)

// AwarenessHandler handles awareness session endpoints
type AwarenessHandler struct {
	awarenessSvc *service.AwarenessService
}

// NewAwarenessHandler creates a new awareness handler
func NewAwarenessHandler(awarenessSvc *service.AwarenessService) *AwarenessHandler {
	return &AwarenessHandler{awarenessSvc: awarenessSvc}
}

// Create handles POST /v1/projects/{projectId}/awareness
func (h *AwarenessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var session model.AwarenessSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session.ProjectID = mux.Vars(r)["projectId"]

	id, err := h.awarenessSvc.Create(r.Context(), &session)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session.ID = id
	writeJSON(w, http.StatusCreated, session)
}

// List handles GET /v1/projects/{projectId}/awareness
func (h *AwarenessHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	sessions, err := h.awarenessSvc.ListByProject(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// Get handles GET /v1/awareness/{sessionId}
func (h *AwarenessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	session, err := h.awarenessSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Update handles PUT /v1/awareness/{sessionId}
func (h *AwarenessHandler) Update(w http.ResponseWriter, r *http.Request) {
	var session model.AwarenessSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session.ID = mux.Vars(r)["sessionId"]

	if err := h.awarenessSvc.Update(r.Context(), &session); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Delete handles DELETE /v1/awareness/{sessionId}
func (h *AwarenessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	if err := h.awarenessSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
