package domain

import "testing"

func TestIsKnownStatus(t *testing.T) {
	for _, status := range KnownStatuses {
		if !IsKnownStatus(status) {
			t.Fatalf("expected %q to be known", status)
		}
	}

	for _, status := range []Status{"", "Lost", "new", "CONVERTED"} {
		if IsKnownStatus(status) {
			t.Fatalf("expected %q to be rejected", status)
		}
	}
}

func TestKnownStatusesCanonicalOrder(t *testing.T) {
	want := []Status{StatusNew, StatusContacted, StatusConverted}
	if len(KnownStatuses) != len(want) {
		t.Fatalf("expected %d statuses, got %d", len(want), len(KnownStatuses))
	}
	for i := range want {
		if KnownStatuses[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, KnownStatuses[i], want[i])
		}
	}
}
