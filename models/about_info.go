package models

import "time"

// AboutInfoID is the fixed key of the about-page singleton.
const AboutInfoID = "about_info"

type Competency struct {
	Icon string `json:"icon" validate:"required"`
	Text string `json:"text" validate:"required"`
}

type Experience struct {
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Period      string `json:"period" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// AboutInfo is the content of the about page. Exactly one exists.
type AboutInfo struct {
	ID           string       `json:"id"`
	Story        string       `json:"story"`
	Competencies []Competency `json:"competencies"`
	Credentials  []string     `json:"credentials"`
	Experience   []Experience `json:"experience"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type AboutInfoPatch struct {
	Story        *string       `json:"story"`
	Competencies *[]Competency `json:"competencies" validate:"omitempty,dive"`
	Credentials  *[]string     `json:"credentials"`
	Experience   *[]Experience `json:"experience" validate:"omitempty,dive"`
}

func (p AboutInfoPatch) Fields() Fields {
	f := Fields{}
	f.setString("story", p.Story)
	if p.Competencies != nil {
		f["competencies"] = orEmpty(*p.Competencies)
	}
	f.setStrings("credentials", p.Credentials)
	if p.Experience != nil {
		f["experience"] = orEmpty(*p.Experience)
	}
	return f
}

// Patch returns a patch that overwrites every field with the values of a.
func (a AboutInfo) Patch() AboutInfoPatch {
	return AboutInfoPatch{
		Story:        &a.Story,
		Competencies: &a.Competencies,
		Credentials:  &a.Credentials,
		Experience:   &a.Experience,
	}
}
