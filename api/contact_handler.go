package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

// submitContactForm stores a contact form submission
// @Router /contact [post]
func (h contactHandler) submitContactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ContactSubmissionInput
		if err := decodeBody(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		submission, err := h.contactRepo.Add(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("submissionID", submission.ID).Str("service", submission.Service).Msg("Contact form submitted")
		h.responder.WriteSuccess(w, payload{"submission_id": submission.ID},
			"Thank you for your message! I'll get back to you within 24 hours.")
	}
}

// getContactSubmissions lists submissions, optionally by status
// @Router /contact [get]
func (h contactHandler) getContactSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := h.contactRepo.FindAll(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{
			"submissions": submissions,
			"total":       len(submissions),
		}, "Contact submissions retrieved successfully")
	}
}

func (h contactHandler) getContactSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission, err := h.contactRepo.FindByID(r.Context(), chi.URLParam(r, "submissionID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"submission": submission}, "Contact submission retrieved successfully")
	}
}

// updateSubmissionStatus sets the status of a submission. The status comes
// from the `status` query parameter or, failing that, a {"status": ...} body.
// @Router /contact/{submissionID}/status [put]
func (h contactHandler) updateSubmissionStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := statusFromRequest(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		submissionID := chi.URLParam(r, "submissionID")
		if err := h.contactRepo.SetStatus(r.Context(), submissionID, status); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{
			"submission_id": submissionID,
			"new_status":    status,
		}, "Submission status updated successfully")
	}
}

func (h contactHandler) deleteContactSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissionID := chi.URLParam(r, "submissionID")
		if err := h.contactRepo.Delete(r.Context(), submissionID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"deleted_id": submissionID}, "Contact submission deleted successfully")
	}
}

func statusFromRequest(r *http.Request) (string, error) {
	if r.URL.Query().Has("status") {
		return r.URL.Query().Get("status"), nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return "", errs.NewMalformedPayloadError(err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return "", errs.NewValidationError("status", "field required")
	}
	var body struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", errs.NewMalformedPayloadError(err)
	}
	if body.Status == nil {
		return "", errs.NewValidationError("status", "field required")
	}
	return *body.Status, nil
}
