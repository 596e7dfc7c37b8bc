package seed

import (
	"testing"

	"leadboard_backend/internal/leads/domain"
)

func TestDemoLeads_DecodeAndShape(t *testing.T) {
	leads, err := DemoLeads()
	if err != nil {
		t.Fatalf("demo leads failed to load: %v", err)
	}

	if len(leads) != 8 {
		t.Fatalf("expected 8 demo leads, got %d", len(leads))
	}

	seen := make(map[int64]bool, len(leads))
	for _, lead := range leads {
		if seen[lead.ID] {
			t.Fatalf("duplicate demo lead id %d", lead.ID)
		}
		seen[lead.ID] = true

		if lead.Name == "" || lead.Email == "" || lead.Source == "" {
			t.Fatalf("demo lead %d has blank required fields", lead.ID)
		}
		if !domain.IsKnownStatus(lead.Status) {
			t.Fatalf("demo lead %d has unknown status %q", lead.ID, lead.Status)
		}
		if lead.CreatedAt.IsZero() {
			t.Fatalf("demo lead %d has no createdAt", lead.ID)
		}
		if lead.Notes == nil {
			t.Fatalf("demo lead %d has nil notes", lead.ID)
		}
	}
}
