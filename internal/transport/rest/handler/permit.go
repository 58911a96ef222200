package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hsemanager/internal/model"
	"hsemanager/internal/service"
	"hsemanager/internal/transport/rest/middleware"
)

// PermitHandler handles work permit endpoints
type PermitHandler struct {
	permitSvc *service.PermitService
}

// NewPermitHandler creates a new permit handler
func NewPermitHandler(permitSvc *service.PermitService) *PermitHandler {
	return &PermitHandler{permitSvc: permitSvc}
}

// Issue handles POST /v1/projects/{projectId}/permits
func (h *PermitHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var permit model.WorkPermit
	if err := json.NewDecoder(r.Body).Decode(&permit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	permit.ProjectID = mux.Vars(r)["projectId"]
	permit.IssuedBy = middleware.GetUserID(r.Context())

	id, err := h.permitSvc.Issue(r.Context(), &permit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	permit.ID = id
	writeJSON(w, http.StatusCreated, permit)
}

// List handles GET /v1/projects/{projectId}/permits?open=true
func (h *PermitHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
	openOnly := r.URL.Query().Get("open") == "true"

	permits, err := h.permitSvc.ListByProject(r.Context(), projectID, openOnly)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list permits")
		return
	}

	writeJSON(w, http.StatusOK, permits)
}

// Get handles GET /v1/permits/{permitId}
func (h *PermitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["permitId"]

	permit, err := h.permitSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load permit")
		return
	}
	if permit == nil {
		writeError(w, http.StatusNotFound, "permit not found")
		return
	}

	writeJSON(w, http.StatusOK, permit)
}

// Close handles POST /v1/permits/{permitId}/close
func (h *PermitHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["permitId"]

	var body struct {
		Comment string `json:"comment"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&body)
	}

	if err := h.permitSvc.Close(r.Context(), id, body.Comment); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// Delete handles DELETE /v1/permits/{permitId}
func (h *PermitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["permitId"]

	if err := h.permitSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete permit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
