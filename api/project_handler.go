package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getAllProjects lists projects, optionally filtered by a category slug
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{
			"projects": projects,
			"total":    len(projects),
		}, "Projects retrieved successfully")
	}
}

// getProject retrieves a specific project by ID
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.projectRepo.FindByID(r.Context(), chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"project": project}, "Project retrieved successfully")
	}
}

// createProject creates a new project
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ProjectInput
		if err := decodeBody(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.Add(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("projectID", project.ID).Msg("Project created")
		h.responder.WriteSuccess(w, payload{"project": project}, "Project created successfully")
	}
}

// updateProject merges the supplied fields into an existing project
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ProjectPatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.Update(r.Context(), chi.URLParam(r, "projectID"), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"project": project}, "Project updated successfully")
	}
}

// deleteProject deletes a project by ID
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"deleted_id": projectID}, "Project deleted successfully")
	}
}
