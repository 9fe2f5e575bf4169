package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers every endpoint under the API prefix. An empty prefix
// mounts them at the root.
func setupRoutes(r chi.Router, prefix string, handlers *routeHandlers) {
	if prefix == "" {
		r.Group(func(r chi.Router) {
			registerRoutes(r, handlers)
		})
		return
	}
	r.Route(prefix, func(r chi.Router) {
		registerRoutes(r, handlers)
	})
}

func registerRoutes(r chi.Router, handlers *routeHandlers) {
	r.Use(ColoredHTTPLoggingMiddleware)

	r.Get("/", handlers.healthHandler.root())
	r.Get("/health", handlers.healthHandler.health())

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", handlers.projectHandler.getAllProjects())
		r.Post("/", handlers.projectHandler.createProject())
		r.Get("/{projectID}", handlers.projectHandler.getProject())
		r.Put("/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
	})

	r.Route("/research", func(r chi.Router) {
		r.Get("/", handlers.researchHandler.getAllResearch())
		r.Post("/", handlers.researchHandler.createResearch())
		r.Get("/{researchID}", handlers.researchHandler.getResearch())
		r.Put("/{researchID}", handlers.researchHandler.updateResearch())
		r.Delete("/{researchID}", handlers.researchHandler.deleteResearch())
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", handlers.serviceHandler.getAllServices())
		r.Post("/", handlers.serviceHandler.createService())
		r.Get("/{serviceID}", handlers.serviceHandler.getService())
		r.Put("/{serviceID}", handlers.serviceHandler.updateService())
		r.Delete("/{serviceID}", handlers.serviceHandler.deleteService())
	})

	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", handlers.testimonialHandler.getAllTestimonials())
		r.Post("/", handlers.testimonialHandler.createTestimonial())
		r.Get("/{testimonialID}", handlers.testimonialHandler.getTestimonial())
		r.Put("/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
		r.Delete("/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())
		r.Put("/{testimonialID}/approve", handlers.testimonialHandler.approveTestimonial())
	})

	r.Get("/about", handlers.aboutHandler.getAboutInfo())
	r.Put("/about", handlers.aboutHandler.updateAboutInfo())

	r.Route("/contact", func(r chi.Router) {
		r.Post("/", handlers.contactHandler.submitContactForm())
		r.Get("/", handlers.contactHandler.getContactSubmissions())
		r.Get("/{submissionID}", handlers.contactHandler.getContactSubmission())
		r.Delete("/{submissionID}", handlers.contactHandler.deleteContactSubmission())
		r.Put("/{submissionID}/status", handlers.contactHandler.updateSubmissionStatus())
	})

	r.Post("/analytics/page-view", handlers.analyticsHandler.recordPageView())
}
