// Package booking defines coaching session booking submissions.
package booking

import (
	"time"
)

// dateTimeLayout combines the selectedDate and selectedTime fields the way
// the booking form submits them.
const dateTimeLayout = "2006-01-02T15:04"

// Submission is a coaching session booking request. It is transient: nothing
// is persisted beyond what the notification emails carry.
type Submission struct {
	UserID       string `json:"userId,omitempty"`
	UserEmail    string `json:"userEmail" validate:"required"`
	UserName     string `json:"userName" validate:"required"`
	SelectedDate string `json:"selectedDate" validate:"required"`
	SelectedTime string `json:"selectedTime" validate:"required"`
	Timezone     string `json:"timezone" validate:"required"`
	SessionType  string `json:"sessionType" validate:"required"`
	Notes        string `json:"notes,omitempty"`
}

// SessionAt parses the combined date and time of the requested session.
// The zone label travels separately in Timezone; the parsed value is naive.
func (s Submission) SessionAt() (time.Time, error) {
	return time.Parse(dateTimeLayout, s.SelectedDate+"T"+s.SelectedTime)
}

// FormatSessionAt renders the session date the way the confirmation emails
// display it, e.g. "Monday, March 10, 2025 at 2:00 PM EST".
func (s Submission) FormatSessionAt() (string, error) {
	at, err := s.SessionAt()
	if err != nil {
		return "", err
	}
	return at.Format("Monday, January 2, 2006 at 3:04 PM") + " " + s.Timezone, nil
}

// Details is the normalized summary echoed back to the caller on success.
type Details struct {
	SessionType string `json:"sessionType"`
	DateTime    string `json:"dateTime"`
	Timezone    string `json:"timezone"`
}

// AvailableSlots is the fixed slot list returned for any date. Real
// availability lives outside this system.
func AvailableSlots() []string {
	return []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
}
