package models

import appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"

// EligibilityDecision tags the outcome of the eligibility gate.
type EligibilityDecision string

const (
	EligibilityAllowed           EligibilityDecision = "ALLOWED"
	EligibilityProfileIncomplete EligibilityDecision = "PROFILE_INCOMPLETE"
	EligibilityAlreadyApplied    EligibilityDecision = "ALREADY_APPLIED"
)

// Eligibility is computed per request and never cached.
type Eligibility struct {
	Decision              EligibilityDecision `json:"decision"`
	Complete              bool                `json:"complete"`
	MissingFields         []string            `json:"missingFields,omitempty"`
	Profile               *Profile            `json:"profile,omitempty"`
	ExistingApplicationID string              `json:"existingApplicationId,omitempty"`
	ExistingStatus        string              `json:"existingStatus,omitempty"`
}

// Allowed reports whether a submission may proceed.
func (e Eligibility) Allowed() bool {
	return e.Decision == EligibilityAllowed
}

// Decide applies the gate: an existing application denies first, then an incomplete
// profile; otherwise the submission is allowed.
func Decide(profile *Profile, existing *Application) Eligibility {
	result := Eligibility{Decision: EligibilityAllowed}
	if profile != nil {
		completeness := NewProfileCompleteness(profile)
		result.Complete = completeness.Complete
		result.MissingFields = completeness.MissingFields
		result.Profile = profile
	}
	if existing != nil {
		status, _ := existing.Status()
		result.Decision = EligibilityAlreadyApplied
		result.ExistingApplicationID = existing.ID
		result.ExistingStatus = status.Label()
		return result
	}
	if !result.Complete {
		result.Decision = EligibilityProfileIncomplete
	}
	return result
}

// Err converts a denial into its user-facing error; nil when allowed.
func (e Eligibility) Err() error {
	switch e.Decision {
	case EligibilityAlreadyApplied:
		return appErrors.ErrAlreadyApplied
	case EligibilityProfileIncomplete:
		return appErrors.ErrProfileIncomplete
	default:
		return nil
	}
}
