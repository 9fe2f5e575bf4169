package models

import "time"

// ServiceItem is an offering listed on the services page.
type ServiceItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Deliverables []string  `json:"deliverables"`
	Category     *string   `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ServiceItemInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Deliverables []string `json:"deliverables" validate:"required,min=1"`
	Category     *string  `json:"category"`
}

type ServiceItemPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Deliverables *[]string `json:"deliverables" validate:"omitempty,min=1"`
	Category     *string   `json:"category"`
}

func NewServiceItem(id string, in ServiceItemInput, now time.Time) ServiceItem {
	return ServiceItem{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Deliverables: in.Deliverables,
		Category:     in.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p ServiceItemPatch) Fields() Fields {
	f := Fields{}
	f.setString("title", p.Title)
	f.setString("description", p.Description)
	f.setStrings("deliverables", p.Deliverables)
	f.setString("category", p.Category)
	return f
}
