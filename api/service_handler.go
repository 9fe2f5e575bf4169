package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ServiceRepo
}

func newServiceHandler(serviceRepo *database.ServiceRepo) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

func (h serviceHandler) getAllServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.serviceRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{
			"services": services,
			"total":    len(services),
		}, "Services retrieved successfully")
	}
}

func (h serviceHandler) getService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service, err := h.serviceRepo.FindByID(r.Context(), chi.URLParam(r, "serviceID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"service": service}, "Service retrieved successfully")
	}
}

func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ServiceItemInput
		if err := decodeBody(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		service, err := h.serviceRepo.Add(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"service": service}, "Service created successfully")
	}
}

func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ServiceItemPatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		service, err := h.serviceRepo.Update(r.Context(), chi.URLParam(r, "serviceID"), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"service": service}, "Service updated successfully")
	}
}

func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID := chi.URLParam(r, "serviceID")
		if err := h.serviceRepo.Delete(r.Context(), serviceID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"deleted_id": serviceID}, "Service deleted successfully")
	}
}
