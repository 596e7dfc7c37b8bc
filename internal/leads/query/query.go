// Package query computes derived views over the lead collection: the
// filtered table view, the aggregate stats snapshot, and the chart
// breakdowns. Every function is pure; none mutates its input.
package query

import (
	"math"
	"strings"

	"leadboard_backend/internal/leads/domain"
	"leadboard_backend/internal/leads/repository"
)

// Stats is the aggregate snapshot over the entire collection. It always
// satisfies New + Contacted + Converted == Total.
type Stats struct {
	Total     int
	New       int
	Contacted int
	Converted int
}

// BreakdownEntry is one slice of a chart breakdown.
type BreakdownEntry struct {
	Name  string
	Count int
}

// Filter returns the leads matching both the search query and the status
// filter, preserving the collection's relative order. An empty parameter
// means "no constraint". The search is a case-insensitive substring match
// over name or email.
func Filter(leads []repository.Lead, search string, status domain.Status) []repository.Lead {
	needle := strings.ToLower(strings.TrimSpace(search))

	matched := make([]repository.Lead, 0, len(leads))
	for _, lead := range leads {
		if status != "" && lead.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(lead.Name), needle) &&
			!strings.Contains(strings.ToLower(lead.Email), needle) {
			continue
		}
		matched = append(matched, lead)
	}
	return matched
}

// ComputeStats counts statuses over the entire collection. Filters never
// feed into this: the stats cards reflect the whole dataset.
func ComputeStats(leads []repository.Lead) Stats {
	stats := Stats{Total: len(leads)}
	for _, lead := range leads {
		switch lead.Status {
		case domain.StatusNew:
			stats.New++
		case domain.StatusContacted:
			stats.Contacted++
		case domain.StatusConverted:
			stats.Converted++
		}
	}
	return stats
}

// ConversionRate is the converted share of the collection as a percentage,
// rounded to one decimal place. Zero when the collection is empty.
func ConversionRate(stats Stats) float64 {
	if stats.Total == 0 {
		return 0
	}
	rate := float64(stats.Converted) / float64(stats.Total) * 100
	return math.Round(rate*10) / 10
}

// SourceBreakdown groups the collection by acquisition source. Sources keep
// the order they are first seen in the collection.
func SourceBreakdown(leads []repository.Lead) []BreakdownEntry {
	counts := make(map[string]int, len(leads))
	order := make([]string, 0, len(leads))

	for _, lead := range leads {
		if _, seen := counts[lead.Source]; !seen {
			order = append(order, lead.Source)
		}
		counts[lead.Source]++
	}

	entries := make([]BreakdownEntry, 0, len(order))
	for _, source := range order {
		entries = append(entries, BreakdownEntry{Name: source, Count: counts[source]})
	}
	return entries
}

// StatusBreakdown groups the collection by status in the canonical order
// New, Contacted, Converted. Every status appears even at count zero.
func StatusBreakdown(leads []repository.Lead) []BreakdownEntry {
	counts := make(map[domain.Status]int, len(domain.KnownStatuses))
	for _, lead := range leads {
		counts[lead.Status]++
	}

	entries := make([]BreakdownEntry, 0, len(domain.KnownStatuses))
	for _, status := range domain.KnownStatuses {
		entries = append(entries, BreakdownEntry{Name: string(status), Count: counts[status]})
	}
	return entries
}
