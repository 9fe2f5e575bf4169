package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, c config.Config, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:      newHealthHandler(c.ServiceName, c.ServiceVersion, startupTime),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		researchHandler:    newResearchHandler(database.ResearchRepo()),
		serviceHandler:     newServiceHandler(database.ServiceRepo()),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo()),
		aboutHandler:       newAboutHandler(database.AboutRepo()),
		contactHandler:     newContactHandler(database.ContactRepo()),
		analyticsHandler:   newAnalyticsHandler(database.PageViewRepo()),
	}
}
