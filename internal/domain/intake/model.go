// Package intake defines coaching intake form submissions.
package intake

// Submission is a coaching intake form payload. Optional fields keep their
// per-field display policy in the notification formatter: currentHosting and
// techStack render as "Not specified" when absent, additionalInfo is omitted
// entirely.
type Submission struct {
	UserID             string `json:"userId,omitempty"`
	UserEmail          string `json:"userEmail" validate:"required"`
	ProjectType        string `json:"projectType" validate:"required"`
	CurrentHosting     string `json:"currentHosting,omitempty"`
	TechStack          string `json:"techStack,omitempty"`
	Timeline           string `json:"timeline" validate:"required"`
	SpecificChallenges string `json:"specificChallenges" validate:"required"`
	PreferredTimes     string `json:"preferredTimes" validate:"required"`
	Timezone           string `json:"timezone" validate:"required"`
	AdditionalInfo     string `json:"additionalInfo,omitempty"`
}
