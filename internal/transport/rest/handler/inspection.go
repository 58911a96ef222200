package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hsemanager/internal/model"
	"hsemanager/internal/service"
)

// InspectionHandler handles site inspection endpoints
type InspectionHandler struct {
	inspectionSvc *service.InspectionService
}

// NewInspectionHandler creates a new inspection handler
func NewInspectionHandler(inspectionSvc *service.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspectionSvc: inspectionSvc}
}

// Create handles POST /v1/projects/{projectId}/inspections
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var inspection model.Inspection
	if err := json.NewDecoder(r.Body).Decode(&inspection); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	inspection.ProjectID = mux.Vars(r)["projectId"]

	id, err := h.inspectionSvc.Create(r.Context(), &inspection)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	inspection.ID = id
	writeJSON(w, http.StatusCreated, inspection)
}

// List handles GET /v1/projects/{projectId}/inspections
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	inspections, err := h.inspectionSvc.ListByProject(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list inspections")
		return
	}

	writeJSON(w, http.StatusOK, inspections)
}

// Get handles GET /v1/inspections/{inspectionId}
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["inspectionId"]

	inspection, err := h.inspectionSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load inspection")
		return
	}
	if inspection == nil {
		writeError(w, http.StatusNotFound, "inspection not found")
		return
	}

	writeJSON(w, http.StatusOK, inspection)
}

// Update handles PUT /v1/inspections/{inspectionId}
func (h *InspectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var inspection model.Inspection
	if err := json.NewDecoder(r.Body).Decode(&inspection); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	inspection.ID = mux.Vars(r)["inspectionId"]

	if err := h.inspectionSvc.Update(r.Context(), &inspection); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspection)
}

// Delete handles DELETE /v1/inspections/{inspectionId}
func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["inspectionId"]

	if err := h.inspectionSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete inspection")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
