package scheduling

import "testing"

func TestSlotsFor(t *testing.T) {
	svc := New()

	slots, err := svc.SlotsFor("2025-03-10")
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	if len(slots) != 6 {
		t.Errorf("got %d slots, want 6", len(slots))
	}

	// The slot list is date-independent.
	other, err := svc.SlotsFor("2030-12-25")
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	for i := range slots {
		if slots[i] != other[i] {
			t.Errorf("slot[%d] differs across dates: %q vs %q", i, slots[i], other[i])
		}
	}
}

func TestSlotsForRequiresDate(t *testing.T) {
	svc := New()

	if _, err := svc.SlotsFor("  "); err == nil {
		t.Error("blank date accepted")
	}
}
