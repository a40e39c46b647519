package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/ventaroai/storefront/internal/domain/booking"
)

const adminAddr = "chris.t@ventarosales.com"

func TestBookingEmails(t *testing.T) {
	sub := booking.Submission{
		UserID:       "user-42",
		UserEmail:    "client@example.com",
		UserName:     "Jordan",
		SelectedDate: "2025-03-10",
		SelectedTime: "14:00",
		Timezone:     "EST",
		SessionType:  "AI Strategy Session",
		Notes:        "Focus on deployment",
	}
	dateTime := "Monday, March 10, 2025 at 2:00 PM EST"
	submitted := time.Date(2025, time.March, 8, 9, 30, 0, 0, time.UTC)

	customer, operator, err := BookingEmails(sub, dateTime, adminAddr, submitted)
	if err != nil {
		t.Fatalf("BookingEmails: %v", err)
	}

	if customer.To != "client@example.com" {
		t.Errorf("customer recipient = %q", customer.To)
	}
	if customer.Subject != "Coaching Session Booking Confirmed - VentaroAI" {
		t.Errorf("customer subject = %q", customer.Subject)
	}
	if operator.To != adminAddr {
		t.Errorf("operator recipient = %q", operator.To)
	}
	if operator.Subject != "New Coaching Session Booking" {
		t.Errorf("operator subject = %q", operator.Subject)
	}

	for _, body := range []string{customer.HTML, customer.Text, operator.HTML, operator.Text} {
		if !strings.Contains(body, dateTime) {
			t.Errorf("body missing formatted session date:\n%s", body)
		}
		if !strings.Contains(body, "Focus on deployment") {
			t.Errorf("body missing notes:\n%s", body)
		}
	}

	// The operator alert carries the raw form fields alongside the
	// formatted date.
	if !strings.Contains(operator.Text, "Selected Date: 2025-03-10") {
		t.Errorf("operator text missing raw date:\n%s", operator.Text)
	}
	if !strings.Contains(operator.Text, "Selected Time: 14:00") {
		t.Errorf("operator text missing raw time:\n%s", operator.Text)
	}
	if !strings.Contains(operator.Text, "User ID: user-42") {
		t.Errorf("operator text missing user id:\n%s", operator.Text)
	}
	if !strings.Contains(operator.Text, "March 8, 2025") {
		t.Errorf("operator text missing submission date:\n%s", operator.Text)
	}
}

func TestBookingEmailsOptionalFields(t *testing.T) {
	sub := booking.Submission{
		UserEmail:    "client@example.com",
		UserName:     "Jordan",
		SelectedDate: "2025-03-10",
		SelectedTime: "14:00",
		Timezone:     "EST",
		SessionType:  "AI Strategy Session",
	}

	customer, operator, err := BookingEmails(sub, "Monday, March 10, 2025 at 2:00 PM EST", adminAddr, time.Now())
	if err != nil {
		t.Fatalf("BookingEmails: %v", err)
	}

	// An absent notes field drops its whole block.
	if strings.Contains(customer.HTML, "Notes:") || strings.Contains(customer.Text, "Notes:") {
		t.Error("customer email renders an empty notes block")
	}
	if strings.Contains(operator.HTML, "Client Notes:") {
		t.Error("operator email renders an empty notes block")
	}

	// An absent user id renders as a placeholder instead.
	if !strings.Contains(operator.Text, "User ID: Not provided") {
		t.Errorf("operator text missing user id placeholder:\n%s", operator.Text)
	}
}

func TestBookingEmailsEscapeHTML(t *testing.T) {
	sub := booking.Submission{
		UserEmail:    "client@example.com",
		UserName:     `<script>alert("x")</script>`,
		SelectedDate: "2025-03-10",
		SelectedTime: "14:00",
		Timezone:     "EST",
		SessionType:  "AI Strategy Session",
		Notes:        `<img src=x onerror="steal()">`,
	}

	customer, operator, err := BookingEmails(sub, "Monday, March 10, 2025 at 2:00 PM EST", adminAddr, time.Now())
	if err != nil {
		t.Fatalf("BookingEmails: %v", err)
	}

	for _, html := range []string{customer.HTML, operator.HTML} {
		if strings.Contains(html, "<script>") || strings.Contains(html, "<img src=x") {
			t.Errorf("unescaped markup in HTML body:\n%s", html)
		}
	}
	if !strings.Contains(customer.HTML, "&lt;script&gt;") {
		t.Errorf("customer HTML missing escaped name:\n%s", customer.HTML)
	}
	// The plain-text body carries the raw value.
	if !strings.Contains(customer.Text, `<script>alert("x")</script>`) {
		t.Errorf("customer text altered the raw name:\n%s", customer.Text)
	}
}
