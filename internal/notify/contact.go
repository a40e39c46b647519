package notify

import (
	"fmt"
	"time"

	"github.com/ventaroai/storefront/internal/domain/contact"
)

const (
	contactCustomerSubject = "We Received Your Message - VentaroAI"
	contactOperatorSubject = "New Contact Form Submission"

	newsletterCustomerSubject = "Welcome to the VentaroAI Newsletter"
	newsletterOperatorSubject = "New Newsletter Signup"
)

type contactData struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt string
}

// ContactEmails renders the acknowledgement for the submitter and the alert
// for the operator.
func ContactEmails(sub contact.Submission, operatorAddr string, submittedAt time.Time) (Envelope, Envelope, error) {
	data := contactData{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       orNotProvided(sub.Phone),
		Message:     sub.Message,
		SubmittedAt: submittedAt.Format("January 2, 2006 3:04 PM MST"),
	}

	customerEnv, err := render(sub.Email, contactCustomerSubject, contactCustomerHTML, contactCustomerText, data)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render contact receipt: %w", err)
	}
	operatorEnv, err := render(operatorAddr, contactOperatorSubject, contactOperatorHTML, contactOperatorText, data)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render contact alert: %w", err)
	}
	return customerEnv, operatorEnv, nil
}

type newsletterData struct {
	Email       string
	SubmittedAt string
}

// NewsletterEmails renders the welcome message and the operator alert for a
// newsletter signup.
func NewsletterEmails(sub contact.NewsletterSignup, operatorAddr string, submittedAt time.Time) (Envelope, Envelope, error) {
	data := newsletterData{
		Email:       sub.Email,
		SubmittedAt: submittedAt.Format("January 2, 2006 3:04 PM MST"),
	}

	customerEnv, err := render(sub.Email, newsletterCustomerSubject, newsletterCustomerHTML, newsletterCustomerText, data)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render newsletter welcome: %w", err)
	}
	operatorEnv, err := render(operatorAddr, newsletterOperatorSubject, newsletterOperatorHTML, newsletterOperatorText, data)
	if err != nil {
		return Envelope{}, Envelope{}, fmt.Errorf("render newsletter alert: %w", err)
	}
	return customerEnv, operatorEnv, nil
}

var contactCustomerHTML = mustHTML("contact-customer", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">We Received Your Message</h1>

  <p>Hi {{.Name}},</p>

  <p>Thanks for reaching out. We've received your message and will get back to you as soon as we can.</p>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Your Message:</strong></p>
    <p style="background-color: white; padding: 10px; border-radius: 4px;">{{.Message}}</p>
  </div>

  <p>Best regards,<br>The VentaroAI Team</p>
</div>
`)

var contactCustomerText = mustText("contact-customer-text", `We Received Your Message

Hi {{.Name}},

Thanks for reaching out. We've received your message and will get back to you as soon as we can.

Your Message:
{{.Message}}

Best regards,
The VentaroAI Team
`)

var contactOperatorHTML = mustHTML("contact-operator", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">New Contact Form Submission</h1>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Sender:</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Submission Date:</strong> {{.SubmittedAt}}</p>
  </div>

  <div style="background-color: #fff3e0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Message:</h3>
    <p style="background-color: white; padding: 10px; border-radius: 4px;">{{.Message}}</p>
  </div>
</div>
`)

var contactOperatorText = mustText("contact-operator-text", `New Contact Form Submission

Sender:
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Submission Date: {{.SubmittedAt}}

Message:
{{.Message}}
`)

var newsletterCustomerHTML = mustHTML("newsletter-customer", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">Welcome to the VentaroAI Newsletter</h1>

  <p>Hi there,</p>

  <p>You're on the list! Expect practical AI business guides, prompt packs, and product updates in your inbox.</p>

  <p>Best regards,<br>The VentaroAI Team</p>
</div>
`)

var newsletterCustomerText = mustText("newsletter-customer-text", `Welcome to the VentaroAI Newsletter

You're on the list! Expect practical AI business guides, prompt packs, and product updates in your inbox.

Best regards,
The VentaroAI Team
`)

var newsletterOperatorHTML = mustHTML("newsletter-operator", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333;">New Newsletter Signup</h1>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Signup Date:</strong> {{.SubmittedAt}}</p>
  </div>
</div>
`)

var newsletterOperatorText = mustText("newsletter-operator-text", `New Newsletter Signup

Email: {{.Email}}
Signup Date: {{.SubmittedAt}}
`)
