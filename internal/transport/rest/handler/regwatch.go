package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hsemanager/internal/i18n"
	"hsemanager/internal/model"
	"hsemanager/internal/regschema"
	"hsemanager/internal/service"
	"hsemanager/internal/transport/rest/middleware"
)

// RegwatchHandler handles the regulatory-watch questionnaire endpoints
type RegwatchHandler struct {
	regwatchSvc *service.RegwatchService
}

// NewRegwatchHandler creates a new regwatch handler
func NewRegwatchHandler(regwatchSvc *service.RegwatchService) *RegwatchHandler {
	return &RegwatchHandler{regwatchSvc: regwatchSvc}
}

// Localized read-model of one catalogue, resolved for the requested
// language.
type catalogueView struct {
	Variant       model.SchemaVariant `json:"variant"`
	SchemaVersion string              `json:"schemaVersion"`
	Sections      []sectionView       `json:"sections"`
}

type sectionView struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Chapters []chapterView `json:"chapters"`
}

type chapterView struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Articles []articleView `json:"articles"`
}

type articleView struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Text string `json:"text"`
}

// GetCatalogue handles GET /v1/regwatch/{variant}/catalogue?lang=fr|en
func (h *RegwatchHandler) GetCatalogue(w http.ResponseWriter, r *http.Request) {
	variant := model.SchemaVariant(mux.Vars(r)["variant"])
	cat := regschema.Get(variant)
	if cat == nil {
		writeError(w, http.StatusNotFound, "unknown schema variant")
		return
	}

	lang := i18n.Parse(r.URL.Query().Get("lang"))
	view := catalogueView{
		Variant:       cat.Variant,
		SchemaVersion: cat.SchemaVersion,
	}
	for _, sec := range cat.Sections {
		sv := sectionView{ID: sec.ID, Title: i18n.Localize(sec.Title, lang)}
		for _, ch := range sec.Chapters {
			cv := chapterView{ID: ch.ID, Title: i18n.Localize(ch.Title, lang)}
			for _, a := range ch.Articles {
				cv.Articles = append(cv.Articles, articleView{
					ID:   a.ID,
					Code: i18n.Localize(a.Code, lang),
					Text: i18n.Localize(a.Text, lang),
				})
			}
			sv.Chapters = append(sv.Chapters, cv)
		}
		view.Sections = append(view.Sections, sv)
	}

	writeJSON(w, http.StatusOK, view)
}

// Start handles POST /v1/regwatch/start
func (h *RegwatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req service.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	res, err := h.regwatchSvc.Start(r.Context(), userID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// UpdateArticle handles PUT /v1/regwatch/article
func (h *RegwatchHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	res, err := h.regwatchSvc.UpdateArticle(r.Context(), userID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// UpdateSelection handles PUT /v1/regwatch/selection
func (h *RegwatchHandler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	var req service.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	if err := h.regwatchSvc.UpdateSelection(r.Context(), userID, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Submit handles POST /v1/regwatch/submit
func (h *RegwatchHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	sub, err := h.regwatchSvc.Submit(r.Context(), userID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}

// GetSubmission handles GET /v1/regwatch/submissions/{submissionId}
func (h *RegwatchHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["submissionId"]

	sub, err := h.regwatchSvc.GetSubmission(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load submission")
		return
	}
	if sub == nil {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

// ListSubmissions handles GET /v1/projects/{projectId}/submissions
func (h *RegwatchHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	subs, err := h.regwatchSvc.ListSubmissions(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

// LatestScore handles GET /v1/projects/{projectId}/score?variant=labor
func (h *RegwatchHandler) LatestScore(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
	variant := model.SchemaVariant(r.URL.Query().Get("variant"))
	if variant == "" {
		variant = model.VariantLabor
	}

	score, err := h.regwatchSvc.LatestScore(r.Context(), projectID, variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if score == nil {
		writeError(w, http.StatusNotFound, "no submission for this project")
		return
	}

	writeJSON(w, http.StatusOK, score)
}
