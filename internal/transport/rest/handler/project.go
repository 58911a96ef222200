package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hsemanager/internal/model"
	"hsemanager/internal/service"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectSvc *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectSvc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// Create handles POST /v1/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var project model.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.projectSvc.Create(r.Context(), &project)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	project.ID = id
	writeJSON(w, http.StatusCreated, project)
}

// Get handles GET /v1/projects/{projectId}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]

	project, err := h.projectSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load project")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// List handles GET /v1/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// Update handles PUT /v1/projects/{projectId}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var project model.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	project.ID = mux.Vars(r)["projectId"]

	if err := h.projectSvc.Update(r.Context(), &project); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /v1/projects/{projectId}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]

	if err := h.projectSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
