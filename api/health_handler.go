package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceName string
	version     string
	startupTime time.Time
}

func newHealthHandler(serviceName, version string, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceName: serviceName,
		version:     version,
		startupTime: startupTime,
	}
}

func (h healthHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteSuccess(w, payload{
			"service": h.serviceName,
			"version": h.version,
		}, "API is running successfully")
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteSuccess(w, payload{
			"status":         "healthy",
			"service":        "portfolio-api",
			"uptime_seconds": int(time.Since(h.startupTime).Seconds()),
		}, "Service is healthy")
	}
}
