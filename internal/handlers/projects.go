package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tohuynh.dev/internal/models"
	"tohuynh.dev/internal/services"
)

// ProjectHandler handles project API endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// projectResponse adds the slug used by GET /api/projects/{slug}
type projectResponse struct {
	Slug string `json:"slug"`
	models.Project
}

// projectListResponse mirrors the layout of projects.yaml
type projectListResponse struct {
	Projects []projectResponse `json:"projects"`
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = projectResponse{Slug: p.Slug(), Project: p}
	}
	respondJSON(w, h.logger, http.StatusOK, projectListResponse{Projects: out})
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, projectResponse{Slug: slug, Project: *project})
}
