package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hsemanager/internal/model"
	"hsemanager/internal/service"
)

// TrainingHandler handles training record endpoints
type TrainingHandler struct {
	trainingSvc *service.TrainingService
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(trainingSvc *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingSvc: trainingSvc}
}

// Create handles POST /v1/workers/{workerId}/trainings
func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var training model.Training
	if err := json.NewDecoder(r.Body).Decode(&training); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	training.WorkerID = mux.Vars(r)["workerId"]

	id, err := h.trainingSvc.Create(r.Context(), &training)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	training.ID = id
	writeJSON(w, http.StatusCreated, training)
}

// Get handles GET /v1/trainings/{trainingId}
func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["trainingId"]

	training, err := h.trainingSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load training")
		return
	}
	if training == nil {
		writeError(w, http.StatusNotFound, "training not found")
		return
	}

	writeJSON(w, http.StatusOK, training)
}

// Update handles PUT /v1/trainings/{trainingId}
func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var training model.Training
	if err := json.NewDecoder(r.Body).Decode(&training); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	training.ID = mux.Vars(r)["trainingId"]

	if err := h.trainingSvc.Update(r.Context(), &training); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, training)
}

// Delete handles DELETE /v1/trainings/{trainingId}
func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["trainingId"]

	if err := h.trainingSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete training")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
