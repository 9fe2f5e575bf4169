package models

import "time"

// Project is a portfolio piece shown on the portfolio page.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Company     string    `json:"company"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Tools       []string  `json:"tools"`
	Impact      string    `json:"impact"`
	Duration    *string   `json:"duration"`
	Role        *string   `json:"role"`
	Challenge   *string   `json:"challenge"`
	Solution    *string   `json:"solution"`
	Results     []string  `json:"results"`
	Gallery     []string  `json:"gallery"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectInput is the body accepted when creating a project.
type ProjectInput struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tools       []string `json:"tools" validate:"required"`
	Impact      string   `json:"impact" validate:"required"`
	Duration    *string  `json:"duration"`
	Role        *string  `json:"role"`
	Challenge   *string  `json:"challenge"`
	Solution    *string  `json:"solution"`
	Results     []string `json:"results"`
	Gallery     []string `json:"gallery"`
}

// ProjectPatch is a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Company     *string   `json:"company"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	Tools       *[]string `json:"tools"`
	Impact      *string   `json:"impact"`
	Duration    *string   `json:"duration"`
	Role        *string   `json:"role"`
	Challenge   *string   `json:"challenge"`
	Solution    *string   `json:"solution"`
	Results     *[]string `json:"results"`
	Gallery     *[]string `json:"gallery"`
}

// NewProject builds the stored record for in.
func NewProject(id string, in ProjectInput, now time.Time) Project {
	return Project{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Company:     in.Company,
		Image:       in.Image,
		Description: in.Description,
		Tools:       orEmpty(in.Tools),
		Impact:      in.Impact,
		Duration:    in.Duration,
		Role:        in.Role,
		Challenge:   in.Challenge,
		Solution:    in.Solution,
		Results:     orEmpty(in.Results),
		Gallery:     orEmpty(in.Gallery),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fields returns the document fields set by the patch.
func (p ProjectPatch) Fields() Fields {
	f := Fields{}
	f.setString("title", p.Title)
	f.setString("category", p.Category)
	f.setString("company", p.Company)
	f.setString("image", p.Image)
	f.setString("description", p.Description)
	f.setStrings("tools", p.Tools)
	f.setString("impact", p.Impact)
	f.setString("duration", p.Duration)
	f.setString("role", p.Role)
	f.setString("challenge", p.Challenge)
	f.setString("solution", p.Solution)
	f.setStrings("results", p.Results)
	f.setStrings("gallery", p.Gallery)
	return f
}

// ProjectCategories maps URL slugs to the category labels stored on projects.
var ProjectCategories = map[string]string{
	"collections":         "Collections",
	"3d-design":           "3D Design",
	"research":            "Research",
	"styling":             "Styling",
	"accessories":         "Accessories",
	"surface-development": "Surface Development",
}

// CategoryLabel resolves a slug to its display label. Unknown slugs are
// returned verbatim.
func CategoryLabel(slug string) string {
	if label, ok := ProjectCategories[slug]; ok {
		return label
	}
	return slug
}
