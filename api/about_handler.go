package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	aboutRepo *database.AboutRepo
}

func newAboutHandler(aboutRepo *database.AboutRepo) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		aboutRepo: aboutRepo,
	}
}

func (h aboutHandler) getAboutInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.aboutRepo.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"about": about}, "About information retrieved successfully")
	}
}

func (h aboutHandler) updateAboutInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.AboutInfoPatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		about, err := h.aboutRepo.Update(r.Context(), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"about": about}, "About information updated successfully")
	}
}
