package models

import (
	"strings"
	"time"
)

// Required profile field names, in the order they are reported as missing.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmail          = "email"
	FieldUniversity     = "university"
	FieldMajor          = "major"
	FieldGraduationYear = "graduationYear"
)

// Profile is an applicant's academic and contact record. Email mirrors the identity
// account and is never taken from client input.
type Profile struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"userId"`
	FirstName      string    `db:"first_name" json:"firstName"`
	LastName       string    `db:"last_name" json:"lastName"`
	Email          string    `db:"email" json:"email"`
	University     string    `db:"university" json:"university"`
	Major          string    `db:"major" json:"major"`
	GraduationYear int       `db:"graduation_year" json:"graduationYear"`
	Github         string    `db:"github" json:"github"`
	Linkedin       string    `db:"linkedin" json:"linkedin"`
	Portfolio      string    `db:"portfolio" json:"portfolio"`
	Phone          string    `db:"phone" json:"phone"`
	Twitter        string    `db:"twitter" json:"twitter"`
	Instagram      string    `db:"instagram" json:"instagram"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// MissingRequiredFields lists required fields that are blank. Strings count as present
// when non-blank, the graduation year when non-zero.
func (p Profile) MissingRequiredFields() []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check(FieldFirstName, p.FirstName)
	check(FieldLastName, p.LastName)
	check(FieldEmail, p.Email)
	check(FieldUniversity, p.University)
	check(FieldMajor, p.Major)
	if p.GraduationYear == 0 {
		missing = append(missing, FieldGraduationYear)
	}
	return missing
}

// IsComplete reports whether every required field is present.
func (p Profile) IsComplete() bool {
	return len(p.MissingRequiredFields()) == 0
}

// ProfileCompleteness is the result of checking a stored profile.
type ProfileCompleteness struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missingFields,omitempty"`
	Profile       *Profile `json:"profile,omitempty"`
}

// NewProfileCompleteness evaluates p.
func NewProfileCompleteness(p *Profile) ProfileCompleteness {
	if p == nil {
		return ProfileCompleteness{}
	}
	missing := p.MissingRequiredFields()
	return ProfileCompleteness{Complete: len(missing) == 0, MissingFields: missing, Profile: p}
}
