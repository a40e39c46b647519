// Package contact defines general contact and newsletter submissions.
package contact

// Submission is a contact form payload.
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" validate:"required"`
}

// NewsletterSignup is a newsletter subscription request.
type NewsletterSignup struct {
	Email string `json:"email" validate:"required"`
}
