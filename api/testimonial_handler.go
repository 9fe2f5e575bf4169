package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()

	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
	}
}

// getAllTestimonials lists approved testimonials unless approved_only=false
// @Router /testimonials [get]
func (h testimonialHandler) getAllTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		approvedOnly, err := parseBoolFlag(r.URL.Query().Get("approved_only"), true)
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("approved_only", "value could not be parsed to a boolean"))
			return
		}

		testimonials, err := h.testimonialRepo.FindAll(r.Context(), approvedOnly)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{
			"testimonials": testimonials,
			"total":        len(testimonials),
		}, "Testimonials retrieved successfully")
	}
}

func (h testimonialHandler) getTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonial, err := h.testimonialRepo.FindByID(r.Context(), chi.URLParam(r, "testimonialID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"testimonial": testimonial}, "Testimonial retrieved successfully")
	}
}

// createTestimonial stores a testimonial pending approval
// @Router /testimonials [post]
func (h testimonialHandler) createTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.TestimonialInput
		if err := decodeBody(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		testimonial, err := h.testimonialRepo.Add(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"testimonial": testimonial},
			"Testimonial submitted successfully and is pending approval")
	}
}

func (h testimonialHandler) updateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.TestimonialPatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		testimonial, err := h.testimonialRepo.Update(r.Context(), chi.URLParam(r, "testimonialID"), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"testimonial": testimonial}, "Testimonial updated successfully")
	}
}

func (h testimonialHandler) deleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID := chi.URLParam(r, "testimonialID")
		if err := h.testimonialRepo.Delete(r.Context(), testimonialID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"deleted_id": testimonialID}, "Testimonial deleted successfully")
	}
}

// approveTestimonial makes a testimonial visible in the default listing
// @Router /testimonials/{testimonialID}/approve [put]
func (h testimonialHandler) approveTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID := chi.URLParam(r, "testimonialID")
		if err := h.testimonialRepo.Approve(r.Context(), testimonialID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("testimonialID", testimonialID).Msg("Testimonial approved")
		h.responder.WriteSuccess(w, payload{"testimonial_id": testimonialID}, "Testimonial approved successfully")
	}
}

// parseBoolFlag accepts the usual spellings of a boolean query flag. An empty
// value yields def.
func parseBoolFlag(v string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return def, nil
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n":
		return false, nil
	default:
		return false, errs.ErrValidation
	}
}
