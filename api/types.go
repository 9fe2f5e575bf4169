package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler      healthHandler
	projectHandler     projectHandler
	researchHandler    researchHandler
	serviceHandler     serviceHandler
	testimonialHandler testimonialHandler
	aboutHandler       aboutHandler
	contactHandler     contactHandler
	analyticsHandler   analyticsHandler
}

// SuccessResponse is the envelope of every successful response
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every failed response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// payload is the data object of a success envelope.
type payload map[string]any
