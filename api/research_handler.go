package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

type researchHandler struct {
	responder    Responder
	logger       zerolog.Logger
	researchRepo *database.ResearchRepo
}

func newResearchHandler(researchRepo *database.ResearchRepo) researchHandler {
	logger := log.With().Str("handlerName", "researchHandler").Logger()

	return researchHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		researchRepo: researchRepo,
	}
}

func (h researchHandler) getAllResearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		research, err := h.researchRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{
			"research": research,
			"total":    len(research),
		}, "Research projects retrieved successfully")
	}
}

func (h researchHandler) getResearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.researchRepo.FindByID(r.Context(), chi.URLParam(r, "researchID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"research_project": project}, "Research project retrieved successfully")
	}
}

func (h researchHandler) createResearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ResearchProjectInput
		if err := decodeBody(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.researchRepo.Add(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"research_project": project}, "Research project created successfully")
	}
}

func (h researchHandler) updateResearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ResearchProjectPatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.researchRepo.Update(r.Context(), chi.URLParam(r, "researchID"), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"research_project": project}, "Research project updated successfully")
	}
}

func (h researchHandler) deleteResearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		researchID := chi.URLParam(r, "researchID")
		if err := h.researchRepo.Delete(r.Context(), researchID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"deleted_id": researchID}, "Research project deleted successfully")
	}
}
