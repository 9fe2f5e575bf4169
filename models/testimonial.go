package models

import "time"

// Testimonial is a client quote. It stays hidden from the public listing until
// approved.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Company   string    `json:"company"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// TestimonialInput has no approved field; new testimonials are always pending.
type TestimonialInput struct {
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role" validate:"required"`
	Text    string `json:"text" validate:"required"`
	Company string `json:"company" validate:"required"`
}

// TestimonialPatch may revoke approval but never grant it.
type TestimonialPatch struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Text     *string `json:"text"`
	Company  *string `json:"company"`
	Approved *bool   `json:"approved"`
}

func NewTestimonial(id string, in TestimonialInput, now time.Time) Testimonial {
	return Testimonial{
		ID:        id,
		Name:      in.Name,
		Role:      in.Role,
		Text:      in.Text,
		Company:   in.Company,
		Approved:  false,
		CreatedAt: now,
	}
}

func (p TestimonialPatch) Fields() Fields {
	f := Fields{}
	f.setString("name", p.Name)
	f.setString("role", p.Role)
	f.setString("text", p.Text)
	f.setString("company", p.Company)
	f.setBool("approved", p.Approved)
	return f
}
