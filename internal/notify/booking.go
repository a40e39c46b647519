package notify

import (
	"fmt"
	"time"

	"github.com/ventaroai/storefront/internal/domain/booking"
)

const (
	bookingCustomerSubject = "Coaching Session Booking Confirmed - VentaroAI"
	bookingOperatorSubject = "New Coaching Session Booking"
)

type bookingCustomerData struct {
	UserName    string
	SessionType string
	DateTime    string
	Timezone    string
	Notes       string
}

type bookingOperatorData struct {
	UserName     string
	UserEmail    string
	UserID       string
	SubmittedAt  string
	SessionType  string
	DateTime     string
	Timezone     string
	SelectedDate string
	SelectedTime string
	Notes        string
}

// BookingEmails renders the confirmation for the submitter and the alert for
// the operator. The caller supplies the already-formatted session date so the
// response payload and both emails agree on the rendered string.
func BookingEmails(sub booking.Submission, dateTime string, operatorAddr string, submittedAt time.Time) (Envelope, Envelope, error) {
	customer := bookingCustomerData{
		UserName:    sub.UserName,
		SessionType: sub.SessionType,
		DateTime:    dateTime,
		Timezone:    sub.Timezone,
		Notes:       sub.Notes,
	}
	operator := bookingOperatorData{
		UserName:     sub.UserName,
		UserEmail:    sub.UserEmail,
		UserID:       orNotProvided(sub.UserID),
		SubmittedAt:  submittedAt.Format("January 2, 2006 3:04 PM MST"),
		SessionType:  sub.SessionType,
		DateTime:     dateTime,
		Timezone:     sub.Timezone,
		SelectedDate: sub.SelectedDate,
		SelectedTime: sub.SelectedTime,
		Notes:        sub.Notes,
	}

	customerEnv, err := render(sub.UserEmail, bookingCustomerSubject, bookingCustomerHTML, bookingCustomerText, customer)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render booking confirmation: %w", err)
	}
	operatorEnv, err := render(operatorAddr, bookingOperatorSubject, bookingOperatorHTML, bookingOperatorText, operator)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render booking alert: %w", err)
	}
	return customerEnv, operatorEnv, nil
}

var bookingCustomerHTML = mustHTML("booking-customer", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">Coaching Session Booking Confirmed</h1>

  <p>Hi {{.UserName}},</p>

  <p>Your coaching session has been successfully booked! Here are the details:</p>

  <div style="background-color: #e8f5e8; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #4caf50;">
    <h3 style="margin-top: 0;">Booking Details</h3>
    <p><strong>Session Type:</strong> {{.SessionType}}</p>
    <p><strong>Date &amp; Time:</strong> {{.DateTime}}</p>
    <p><strong>Timezone:</strong> {{.Timezone}}</p>
    {{if .Notes}}<p><strong>Notes:</strong> {{.Notes}}</p>{{end}}
  </div>

  <div style="background-color: #fff3cd; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Important:</strong> Please save this confirmation email and be ready 5 minutes before your scheduled time.</p>
  </div>

  <p>We look forward to working with you!</p>

  <p>Best regards,<br>The VentaroAI Team</p>
</div>
`)

var bookingCustomerText = mustText("booking-customer-text", `Coaching Session Booking Confirmed

Hi {{.UserName}},

Your coaching session has been successfully booked! Here are the details:

Booking Details:
Session Type: {{.SessionType}}
Date & Time: {{.DateTime}}
Timezone: {{.Timezone}}
{{if .Notes}}Notes: {{.Notes}}
{{end}}
Important: Please save this confirmation email and be ready 5 minutes before your scheduled time.

We look forward to working with you!

Best regards,
The VentaroAI Team
`)

var bookingOperatorHTML = mustHTML("booking-operator", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">New Coaching Session Booking</h1>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Client Information:</h3>
    <p><strong>Name:</strong> {{.UserName}}</p>
    <p><strong>Email:</strong> {{.UserEmail}}</p>
    <p><strong>User ID:</strong> {{.UserID}}</p>
    <p><strong>Booking Date:</strong> {{.SubmittedAt}}</p>
  </div>

  <div style="background-color: #e3f2fd; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Session Details:</h3>
    <p><strong>Session Type:</strong> {{.SessionType}}</p>
    <p><strong>Scheduled Date &amp; Time:</strong> {{.DateTime}}</p>
    <p><strong>Client Timezone:</strong> {{.Timezone}}</p>
    <p><strong>Selected Date:</strong> {{.SelectedDate}}</p>
    <p><strong>Selected Time:</strong> {{.SelectedTime}}</p>
  </div>

  {{if .Notes}}
  <div style="background-color: #fff3e0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Client Notes:</h3>
    <p style="background-color: white; padding: 10px; border-radius: 4px;">{{.Notes}}</p>
  </div>
  {{end}}

  <div style="background-color: #e8f5e8; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Next Steps:</h3>
    <ul>
      <li>Add this session to your calendar</li>
      <li>Prepare session materials if needed</li>
      <li>Send meeting link to client if required</li>
      <li>Review client's previous intake form if available</li>
    </ul>
  </div>
</div>
`)

var bookingOperatorText = mustText("booking-operator-text", `New Coaching Session Booking

Client Information:
Name: {{.UserName}}
Email: {{.UserEmail}}
User ID: {{.UserID}}
Booking Date: {{.SubmittedAt}}

Session Details:
Session Type: {{.SessionType}}
Scheduled Date & Time: {{.DateTime}}
Client Timezone: {{.Timezone}}
Selected Date: {{.SelectedDate}}
Selected Time: {{.SelectedTime}}
{{if .Notes}}
Client Notes:
{{.Notes}}
{{end}}
Next Steps:
- Add this session to your calendar
- Prepare session materials if needed
- Send meeting link to client if required
- Review client's previous intake form if available
`)
