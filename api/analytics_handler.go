package api

import (
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

type analyticsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	pageViewRepo *database.PageViewRepo
}

func newAnalyticsHandler(pageViewRepo *database.PageViewRepo) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		pageViewRepo: pageViewRepo,
	}
}

// recordPageView stores a page view. User agent and referrer fall back to the
// request headers.
// @Router /analytics/page-view [post]
func (h analyticsHandler) recordPageView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.PageViewInput
		if err := decodeBody(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if in.UserAgent == nil {
			in.UserAgent = nonEmpty(r.UserAgent())
		}
		if in.Referrer == nil {
			in.Referrer = nonEmpty(r.Referer())
		}

		id, err := h.pageViewRepo.Record(r.Context(), in, nonEmpty(clientIP(r)))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, payload{"page_view_id": id}, "Page view recorded")
	}
}

// clientIP returns the host part of RemoteAddr. The RealIP middleware has
// already applied X-Forwarded-For / X-Real-IP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
