package notify

import (
	"fmt"
	"time"

	"github.com/ventaroai/storefront/internal/domain/intake"
)

const (
	intakeCustomerSubject = "Coaching Intake Form Received - VentaroAI"
	intakeOperatorSubject = "New Coaching Intake Form Submission"
)

type intakeCustomerData struct {
	ProjectType    string
	Timeline       string
	PreferredTimes string
	Timezone       string
}

type intakeOperatorData struct {
	UserID             string
	UserEmail          string
	SubmittedAt        string
	ProjectType        string
	CurrentHosting     string
	TechStack          string
	Timeline           string
	PreferredTimes     string
	Timezone           string
	SpecificChallenges string
	AdditionalInfo     string
}

// IntakeEmails renders the receipt for the submitter and the alert for the
// operator.
func IntakeEmails(sub intake.Submission, operatorAddr string, submittedAt time.Time) (Envelope, Envelope, error) {
	customer := intakeCustomerData{
		ProjectType:    sub.ProjectType,
		Timeline:       sub.Timeline,
		PreferredTimes: sub.PreferredTimes,
		Timezone:       sub.Timezone,
	}
	operator := intakeOperatorData{
		UserID:             orNotProvided(sub.UserID),
		UserEmail:          sub.UserEmail,
		SubmittedAt:        submittedAt.Format("January 2, 2006 3:04 PM MST"),
		ProjectType:        sub.ProjectType,
		CurrentHosting:     orNotSpecified(sub.CurrentHosting),
		TechStack:          orNotSpecified(sub.TechStack),
		Timeline:           sub.Timeline,
		PreferredTimes:     sub.PreferredTimes,
		Timezone:           sub.Timezone,
		SpecificChallenges: sub.SpecificChallenges,
		AdditionalInfo:     sub.AdditionalInfo,
	}

	customerEnv, err := render(sub.UserEmail, intakeCustomerSubject, intakeCustomerHTML, intakeCustomerText, customer)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render intake receipt: %w", err)
	}
	operatorEnv, err := render(operatorAddr, intakeOperatorSubject, intakeOperatorHTML, intakeOperatorText, operator)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render intake alert: %w", err)
	}
	return customerEnv, operatorEnv, nil
}

var intakeCustomerHTML = mustHTML("intake-customer", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">Thank You for Your Coaching Intake Submission</h1>

  <p>Hi there,</p>

  <p>Thank you for submitting your coaching intake form. We've received your information and will review it shortly.</p>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Your Submission Details:</h3>
    <p><strong>Project Type:</strong> {{.ProjectType}}</p>
    <p><strong>Timeline:</strong> {{.Timeline}}</p>
    <p><strong>Preferred Times:</strong> {{.PreferredTimes}}</p>
    <p><strong>Timezone:</strong> {{.Timezone}}</p>
  </div>

  <p>We'll be in touch soon to schedule your coaching session.</p>

  <p>Best regards,<br>The VentaroAI Team</p>
</div>
`)

var intakeCustomerText = mustText("intake-customer-text", `Thank You for Your Coaching Intake Submission

Thank you for submitting your coaching intake form. We've received your information and will review it shortly.

Your Submission Details:
Project Type: {{.ProjectType}}
Timeline: {{.Timeline}}
Preferred Times: {{.PreferredTimes}}
Timezone: {{.Timezone}}

We'll be in touch soon to schedule your coaching session.

Best regards,
The VentaroAI Team
`)

var intakeOperatorHTML = mustHTML("intake-operator", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">New Coaching Intake Form Submission</h1>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Client Information:</h3>
    <p><strong>User ID:</strong> {{.UserID}}</p>
    <p><strong>Email:</strong> {{.UserEmail}}</p>
    <p><strong>Submission Date:</strong> {{.SubmittedAt}}</p>
  </div>

  <div style="background-color: #e3f2fd; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Project Details:</h3>
    <p><strong>Project Type:</strong> {{.ProjectType}}</p>
    <p><strong>Current Hosting:</strong> {{.CurrentHosting}}</p>
    <p><strong>Tech Stack:</strong> {{.TechStack}}</p>
    <p><strong>Timeline:</strong> {{.Timeline}}</p>
  </div>

  <div style="background-color: #fff3e0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Coaching Preferences:</h3>
    <p><strong>Preferred Times:</strong> {{.PreferredTimes}}</p>
    <p><strong>Timezone:</strong> {{.Timezone}}</p>
    <p><strong>Specific Challenges:</strong></p>
    <p style="background-color: white; padding: 10px; border-radius: 4px;">{{.SpecificChallenges}}</p>
    {{if .AdditionalInfo}}
    <p><strong>Additional Information:</strong></p>
    <p style="background-color: white; padding: 10px; border-radius: 4px;">{{.AdditionalInfo}}</p>
    {{end}}
  </div>

  <p><strong>Next Steps:</strong> Review the intake information and reach out to schedule the coaching session.</p>
</div>
`)

var intakeOperatorText = mustText("intake-operator-text", `New Coaching Intake Form Submission

Client Information:
User ID: {{.UserID}}
Email: {{.UserEmail}}
Submission Date: {{.SubmittedAt}}

Project Details:
Project Type: {{.ProjectType}}
Current Hosting: {{.CurrentHosting}}
Tech Stack: {{.TechStack}}
Timeline: {{.Timeline}}

Coaching Preferences:
Preferred Times: {{.PreferredTimes}}
Timezone: {{.Timezone}}

Specific Challenges:
{{.SpecificChallenges}}
{{if .AdditionalInfo}}
Additional Information:
{{.AdditionalInfo}}
{{end}}
Next Steps: Review the intake information and reach out to schedule the coaching session.
`)
