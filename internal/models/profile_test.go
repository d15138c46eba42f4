package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeProfile() Profile {
	return Profile{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		University:     "UC Berkeley",
		Major:          "Computer Science",
		GraduationYear: 2026,
	}
}

func TestProfileCompleteWhenAllRequiredPresent(t *testing.T) {
	p := completeProfile()
	assert.True(t, p.IsComplete())
	assert.Empty(t, p.MissingRequiredFields())
}

func TestProfileSingleMissingFieldFlipsCompleteness(t *testing.T) {
	cases := map[string]func(p *Profile){
		FieldFirstName:      func(p *Profile) { p.FirstName = "" },
		FieldLastName:       func(p *Profile) { p.LastName = "   " },
		FieldEmail:          func(p *Profile) { p.Email = "" },
		FieldUniversity:     func(p *Profile) { p.University = "" },
		FieldMajor:          func(p *Profile) { p.Major = "\t" },
		FieldGraduationYear: func(p *Profile) { p.GraduationYear = 0 },
	}
	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			p := completeProfile()
			clear(&p)
			assert.False(t, p.IsComplete())
			assert.Equal(t, []string{field}, p.MissingRequiredFields())
		})
	}
}

func TestOptionalFieldsDoNotAffectCompleteness(t *testing.T) {
	p := completeProfile()
	p.Github, p.Linkedin, p.Phone = "", "", ""
	assert.True(t, p.IsComplete())
}

func TestNewProfileCompletenessNil(t *testing.T) {
	c := NewProfileCompleteness(nil)
	assert.False(t, c.Complete)
	assert.Nil(t, c.Profile)
}
