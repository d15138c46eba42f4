package dto

import "github.com/noah-isme/hackathon-portal-api/internal/models"

// SaveProfileRequest updates the caller's profile. Email is not accepted.
type SaveProfileRequest struct {
	FirstName      string `json:"firstName" validate:"max=100"`
	LastName       string `json:"lastName" validate:"max=100"`
	University     string `json:"university" validate:"max=200"`
	Major          string `json:"major" validate:"max=200"`
	GraduationYear int    `json:"graduationYear" validate:"omitempty,gte=1950,lte=2100"`
	Github         string `json:"github" validate:"omitempty,url,max=300"`
	Linkedin       string `json:"linkedin" validate:"omitempty,url,max=300"`
	Portfolio      string `json:"portfolio" validate:"omitempty,url,max=300"`
	Phone          string `json:"phone" validate:"omitempty,max=40"`
	Twitter        string `json:"twitter" validate:"omitempty,max=100"`
	Instagram      string `json:"instagram" validate:"omitempty,max=100"`
}

// ProfileSnapshot is the profile section of an application form as the client saw it.
type ProfileSnapshot struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	University     string `json:"university"`
	Major          string `json:"major"`
	GraduationYear int    `json:"graduationYear"`
	Github         string `json:"github"`
	Linkedin       string `json:"linkedin"`
}

// ToProfile converts the snapshot for completeness checks.
func (s ProfileSnapshot) ToProfile() models.Profile {
	return models.Profile{
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		University:     s.University,
		Major:          s.Major,
		GraduationYear: s.GraduationYear,
		Github:         s.Github,
		Linkedin:       s.Linkedin,
	}
}
