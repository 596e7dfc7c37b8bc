// Package seed ships a small demo dataset so a fresh instance renders a
// populated dashboard without any setup.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"leadboard_backend/internal/leads/domain"
	"leadboard_backend/internal/leads/repository"
)

//go:embed leads.json
var demoLeads []byte

type seedNote struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type seedLead struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Source    string     `json:"source"`
	Status    string     `json:"status"`
	Notes     []seedNote `json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
}

// DemoLeads decodes the embedded dataset into store records. The file is
// part of the build, so a decode or status failure is a programming error.
func DemoLeads() ([]repository.Lead, error) {
	var raw []seedLead
	if err := json.Unmarshal(demoLeads, &raw); err != nil {
		return nil, fmt.Errorf("decode demo leads: %w", err)
	}

	leads := make([]repository.Lead, 0, len(raw))
	for _, item := range raw {
		status := domain.Status(item.Status)
		if !domain.IsKnownStatus(status) {
			return nil, fmt.Errorf("demo lead %d: unknown status %q", item.ID, item.Status)
		}

		notes := make([]repository.FollowUpNote, 0, len(item.Notes))
		for _, note := range item.Notes {
			notes = append(notes, repository.FollowUpNote{
				Text:      note.Text,
				CreatedAt: note.CreatedAt,
			})
		}

		leads = append(leads, repository.Lead{
			ID:        item.ID,
			Name:      item.Name,
			Email:     item.Email,
			Phone:     item.Phone,
			Source:    item.Source,
			Status:    status,
			Notes:     notes,
			CreatedAt: item.CreatedAt,
		})
	}
	return leads, nil
}
