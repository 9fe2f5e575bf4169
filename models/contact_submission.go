package models

import "time"

// Contact submission statuses. Any status may follow any other.
const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
	ContactStatusClosed    = "closed"
)

var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusResponded,
	ContactStatusClosed,
}

func IsContactStatus(s string) bool {
	for _, status := range ContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ContactSubmission is a message sent through the contact form.
type ContactSubmission struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Company     *string    `json:"company"`
	Role        *string    `json:"role"`
	Service     string     `json:"service"`
	Message     string     `json:"message"`
	Timeline    *string    `json:"timeline"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type ContactSubmissionInput struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Company  *string `json:"company"`
	Role     *string `json:"role"`
	Service  string  `json:"service" validate:"required"`
	Message  string  `json:"message" validate:"required"`
	Timeline *string `json:"timeline"`
}

func NewContactSubmission(id string, in ContactSubmissionInput, now time.Time) ContactSubmission {
	return ContactSubmission{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Role:        in.Role,
		Service:     in.Service,
		Message:     in.Message,
		Timeline:    in.Timeline,
		Status:      ContactStatusNew,
		SubmittedAt: now,
	}
}
