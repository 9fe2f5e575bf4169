package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"Internal server error","code":"INTERNAL_ERROR"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteSuccess writes a 200 success envelope.
func (r Responder) WriteSuccess(w http.ResponseWriter, data any, message string) {
	r.WriteJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// WriteError writes the error envelope for err. Errors that are not *errs.ApiErr
// are unexpected and become 500 INTERNAL_ERROR with their detail attached.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error: " + err.Error(),
			Code:  errs.CodeInternal,
		})
		return
	}

	message := apiErr.Error()
	if apiErr.StatusCode >= http.StatusInternalServerError {
		// Keep the full cause chain so store failures can be diagnosed.
		message = apiErr.GetFullError()
		r.logger.Error().Str("code", apiErr.Code).Msg(message)
	}

	r.WriteJSON(w, apiErr.StatusCode, ErrorResponse{
		Error: message,
		Code:  apiErr.Code,
	})
}
