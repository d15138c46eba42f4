package models

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabels(t *testing.T) {
	cases := []struct {
		name  string
		raw   sql.NullString
		label string
		ok    bool
	}{
		{"accepted", sql.NullString{String: "accepted", Valid: true}, "Accepted", true},
		{"rejected", sql.NullString{String: "rejected", Valid: true}, "Rejected", true},
		{"pending", sql.NullString{String: "pending", Valid: true}, "Pending Review", true},
		{"null", sql.NullString{}, "Pending Review", true},
		{"unrecognized", sql.NullString{String: "waitlisted", Valid: true}, "Pending Review", false},
		{"empty", sql.NullString{String: "", Valid: true}, "Pending Review", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, ok := ParseApplicationStatus(tc.raw)
			assert.Equal(t, tc.label, status.Label())
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNullStatusDecodesToExplicitPending(t *testing.T) {
	app := Application{ID: "a1"}
	status, ok := app.Status()
	assert.True(t, ok)
	assert.Equal(t, StatusPending, status)
}
