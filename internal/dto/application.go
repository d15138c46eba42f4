package dto

import "time"

// SubmitApplicationRequest is the application form payload.
type SubmitApplicationRequest struct {
	Profile   ProfileSnapshot `json:"profile"`
	Essay1    string          `json:"essay1" validate:"max=5000"`
	Essay2    string          `json:"essay2" validate:"max=5000"`
	Essay3    string          `json:"essay3" validate:"max=5000"`
	IP        string          `json:"-"`
	UserAgent string          `json:"-"`
}

// ApplicationProfileSummary is the profile joined onto an application for display.
type ApplicationProfileSummary struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	University     string `json:"university"`
	Major          string `json:"major"`
	GraduationYear int    `json:"graduationYear"`
}

// ApplicationView is an application as shown to its owner.
type ApplicationView struct {
	ID             string                     `json:"id"`
	CreatedAt      time.Time                  `json:"createdAt"`
	ProfileID      string                     `json:"profileId"`
	Status         string                     `json:"status"`
	StatusLabel    string                     `json:"statusLabel"`
	WhyParticipate string                     `json:"whyParticipate"`
	ProjectIdea    string                     `json:"projectIdea"`
	AIExperience   string                     `json:"aiExperience"`
	Profile        *ApplicationProfileSummary `json:"profile,omitempty"`
}

// ReceiptFormat selects the receipt renderer.
type ReceiptFormat string

const (
	ReceiptPDF ReceiptFormat = "pdf"
	ReceiptCSV ReceiptFormat = "csv"
)

// Receipt is a rendered application receipt.
type Receipt struct {
	Filename    string
	ContentType string
	Body        []byte
}
