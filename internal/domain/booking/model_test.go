package booking

import (
	"testing"
)

func TestFormatSessionAt(t *testing.T) {
	sub := Submission{
		SelectedDate: "2025-03-10",
		SelectedTime: "14:00",
		Timezone:     "EST",
	}

	got, err := sub.FormatSessionAt()
	if err != nil {
		t.Fatalf("FormatSessionAt: %v", err)
	}
	want := "Monday, March 10, 2025 at 2:00 PM EST"
	if got != want {
		t.Errorf("formatted session = %q, want %q", got, want)
	}
}

func TestFormatSessionAtInvalid(t *testing.T) {
	cases := []struct {
		name string
		sub  Submission
	}{
		{"garbage date", Submission{SelectedDate: "not-a-date", SelectedTime: "14:00", Timezone: "EST"}},
		{"garbage time", Submission{SelectedDate: "2025-03-10", SelectedTime: "2pm", Timezone: "EST"}},
		{"empty", Submission{Timezone: "EST"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.sub.FormatSessionAt(); err == nil {
				t.Errorf("expected parse error for %+v", tc.sub)
			}
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	slots := AvailableSlots()
	want := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}
