package models

import "time"

// ResearchProject is an entry on the research page. Status is a free-text label
// such as "Ongoing" or "Prototype Phase".
type ResearchProject struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Organization  string    `json:"organization"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Collaboration *string   `json:"collaboration"`
	Publications  []string  `json:"publications"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ResearchProjectInput struct {
	Title         string   `json:"title" validate:"required"`
	Organization  string   `json:"organization" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Status        string   `json:"status" validate:"required"`
	Collaboration *string  `json:"collaboration"`
	Publications  []string `json:"publications"`
}

type ResearchProjectPatch struct {
	Title         *string   `json:"title"`
	Organization  *string   `json:"organization"`
	Description   *string   `json:"description"`
	Status        *string   `json:"status"`
	Collaboration *string   `json:"collaboration"`
	Publications  *[]string `json:"publications"`
}

func NewResearchProject(id string, in ResearchProjectInput, now time.Time) ResearchProject {
	return ResearchProject{
		ID:            id,
		Title:         in.Title,
		Organization:  in.Organization,
		Description:   in.Description,
		Status:        in.Status,
		Collaboration: in.Collaboration,
		Publications:  orEmpty(in.Publications),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (p ResearchProjectPatch) Fields() Fields {
	f := Fields{}
	f.setString("title", p.Title)
	f.setString("organization", p.Organization)
	f.setString("description", p.Description)
	f.setString("status", p.Status)
	f.setString("collaboration", p.Collaboration)
	f.setStrings("publications", p.Publications)
	return f
}
