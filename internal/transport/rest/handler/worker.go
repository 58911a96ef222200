package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hsemanager/internal/model"
	"hsemanager/internal/service"
)

// WorkerHandler handles worker roster endpoints
type WorkerHandler struct {
	workerSvc   *service.WorkerService
	trainingSvc *service.TrainingService
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerSvc *service.WorkerService, trainingSvc *service.TrainingService) *WorkerHandler {
	return &WorkerHandler{
		workerSvc:   workerSvc,
		trainingSvc: trainingSvc,
	}
}

// Create handles POST /v1/projects/{projectId}/workers
func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var worker model.Worker
	if err := json.NewDecoder(r.Body).Decode(&worker); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	worker.ProjectID = mux.Vars(r)["projectId"]

	id, err := h.workerSvc.Create(r.Context(), &worker)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	worker.ID = id
	writeJSON(w, http.StatusCreated, worker)
}

// List handles GET /v1/projects/{projectId}/workers
func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	workers, err := h.workerSvc.ListByProject(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list workers")
		return
	}

	writeJSON(w, http.StatusOK, workers)
}

// Get handles GET /v1/workers/{workerId}
func (h *WorkerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["workerId"]

	worker, err := h.workerSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load worker")
		return
	}
	if worker == nil {
		writeError(w, http.StatusNotFound, "worker not found")
		return
	}

	writeJSON(w, http.StatusOK, worker)
}

// Update handles PUT /v1/workers/{workerId}
func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var worker model.Worker
	if err := json.NewDecoder(r.Body).Decode(&worker); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	worker.ID = mux.Vars(r)["workerId"]

	if err := h.workerSvc.Update(r.Context(), &worker); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, worker)
}

// Delete handles DELETE /v1/workers/{workerId}
func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["workerId"]

	if err := h.workerSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete worker")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type trainingEntry struct {
	*model.Training
	Expired bool `json:"expired"`
}

// ListTrainings handles GET /v1/workers/{workerId}/trainings
func (h *WorkerHandler) ListTrainings(w http.ResponseWriter, r *http.Request) {
	workerID := mux.Vars(r)["workerId"]

	trainings, expired, err := h.trainingSvc.ListByWorker(r.Context(), workerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list trainings")
		return
	}

	entries := make([]trainingEntry, len(trainings))
	for i, t := range trainings {
		entries[i] = trainingEntry{Training: t, Expired: expired[i]}
	}

	writeJSON(w, http.StatusOK, entries)
}
