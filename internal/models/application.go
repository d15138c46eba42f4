package models

import (
	"database/sql"
	"time"
)

// ApplicationStatus is the review state of an application. The zero value is not a
// valid status; use ParseApplicationStatus.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Display labels.
const (
	LabelPending  = "Pending Review"
	LabelAccepted = "Accepted"
	LabelRejected = "Rejected"
)

// ParseApplicationStatus decodes a stored status. NULL decodes to StatusPending.
// Unrecognized values also decode to StatusPending and report ok=false.
func ParseApplicationStatus(raw sql.NullString) (status ApplicationStatus, ok bool) {
	if !raw.Valid {
		return StatusPending, true
	}
	switch ApplicationStatus(raw.String) {
	case StatusPending, StatusAccepted, StatusRejected:
		return ApplicationStatus(raw.String), true
	default:
		return StatusPending, false
	}
}

// Label returns the human readable status.
func (s ApplicationStatus) Label() string {
	switch s {
	case StatusAccepted:
		return LabelAccepted
	case StatusRejected:
		return LabelRejected
	default:
		return LabelPending
	}
}

// Application is a submitted hackathon application. There is at most one per user.
type Application struct {
	ID             string         `db:"id"`
	CreatedAt      time.Time      `db:"created_at"`
	UserID         string         `db:"user_id"`
	ProfileID      string         `db:"profile_id"`
	WhyParticipate string         `db:"why_participate"`
	ProjectIdea    string         `db:"project_idea"`
	AIExperience   string         `db:"ai_experience"`
	StoredStatus   sql.NullString `db:"status"`
}

// Status decodes the stored status.
func (a Application) Status() (ApplicationStatus, bool) {
	return ParseApplicationStatus(a.StoredStatus)
}

// ApplicationRecord is an application joined with its owning profile.
type ApplicationRecord struct {
	Application
	ProfileFirstName      string `db:"profile_first_name"`
	ProfileLastName       string `db:"profile_last_name"`
	ProfileEmail          string `db:"profile_email"`
	ProfileUniversity     string `db:"profile_university"`
	ProfileMajor          string `db:"profile_major"`
	ProfileGraduationYear int    `db:"profile_graduation_year"`
}
