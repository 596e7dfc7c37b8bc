// Package service orchestrates the lead store and the query engine behind
// the HTTP handlers: input hygiene, typed errors, event publication.
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"leadboard_backend/internal/events"
	"leadboard_backend/internal/leads/domain"
	"leadboard_backend/internal/leads/query"
	"leadboard_backend/internal/leads/repository"
	"leadboard_backend/internal/leads/transport"
	"leadboard_backend/platform/apperr"
	"leadboard_backend/platform/config"
	"leadboard_backend/platform/phone"
)

const (
	msgLeadNotFound = "lead not found"
)

type Service struct {
	repo        *repository.Repository
	bus         events.Bus
	phoneRegion string
}

func New(repo *repository.Repository, bus events.Bus, cfg config.PhoneConfig) *Service {
	return &Service{
		repo:        repo,
		bus:         bus,
		phoneRegion: cfg.GetDefaultPhoneRegion(),
	}
}

// Create validates the input, allocates a new lead with status New and empty
// notes, and prepends it to the collection. Phone normalization is
// best-effort: an unparseable number is stored as typed.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	source := strings.TrimSpace(req.Source)

	if name == "" {
		return transport.LeadResponse{}, apperr.Validation("name is required")
	}
	if email == "" {
		return transport.LeadResponse{}, apperr.Validation("email is required")
	}
	if source == "" {
		return transport.LeadResponse{}, apperr.Validation("source is required")
	}

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		Name:   name,
		Email:  email,
		Phone:  phone.NormalizeE164(req.Phone, s.phoneRegion),
		Source: source,
	})
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    formatID(lead.ID),
		Name:      lead.Name,
		Email:     lead.Email,
		Source:    lead.Source,
	})

	return toLeadResponse(lead), nil
}

// List returns the filtered view of the collection: search and status
// predicates ANDed, canonical order preserved. Empty parameters mean no
// constraint.
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) []transport.LeadResponse {
	leads := query.Filter(s.repo.List(ctx), req.Search, domain.Status(req.Status))

	items := make([]transport.LeadResponse, len(leads))
	for i, lead := range leads {
		items[i] = toLeadResponse(lead)
	}
	return items
}

// GetByID returns a single lead.
func (s *Service) GetByID(ctx context.Context, id string) (transport.LeadResponse, error) {
	leadID, err := parseID(id)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return transport.LeadResponse{}, mapStoreErr(err)
	}
	return toLeadResponse(lead), nil
}

// UpdateStatus moves the lead to the given pipeline status. Unknown ids are
// rejected with a not-found error rather than silently ignored, so callers
// can tell "nothing existed" apart from "succeeded".
func (s *Service) UpdateStatus(ctx context.Context, id string, req transport.UpdateLeadStatusRequest) (transport.LeadResponse, error) {
	leadID, err := parseID(id)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	current, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return transport.LeadResponse{}, mapStoreErr(err)
	}

	lead, err := s.repo.UpdateStatus(ctx, leadID, domain.Status(req.Status))
	if err != nil {
		return transport.LeadResponse{}, mapStoreErr(err)
	}

	if current.Status != lead.Status {
		s.bus.Publish(ctx, events.LeadStatusChanged{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    formatID(lead.ID),
			OldStatus: string(current.Status),
			NewStatus: string(lead.Status),
		})
	}

	return toLeadResponse(lead), nil
}

// AddNote appends a follow-up note. Text is trimmed first; an empty result
// rejects the whole mutation.
func (s *Service) AddNote(ctx context.Context, id string, req transport.AddNoteRequest) (transport.LeadResponse, error) {
	leadID, err := parseID(id)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	text := strings.TrimSpace(req.Note)
	if text == "" {
		return transport.LeadResponse{}, apperr.Validation("note text is required")
	}

	lead, err := s.repo.AddNote(ctx, leadID, text)
	if err != nil {
		return transport.LeadResponse{}, mapStoreErr(err)
	}

	s.bus.Publish(ctx, events.LeadNoteAdded{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    formatID(lead.ID),
		Text:      text,
	})

	return toLeadResponse(lead), nil
}

// Delete removes the lead and its notes permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	leadID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, leadID); err != nil {
		return mapStoreErr(err)
	}

	s.bus.Publish(ctx, events.LeadDeleted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    formatID(leadID),
	})

	return nil
}

// Stats computes the aggregate snapshot over the entire collection. Active
// filters never influence this view.
func (s *Service) Stats(ctx context.Context) transport.StatsResponse {
	stats := query.ComputeStats(s.repo.List(ctx))
	return transport.StatsResponse{
		Total:          stats.Total,
		New:            stats.New,
		Contacted:      stats.Contacted,
		Converted:      stats.Converted,
		ConversionRate: query.ConversionRate(stats),
	}
}

// Breakdown computes the source and status groupings for the charts, again
// over the full collection.
func (s *Service) Breakdown(ctx context.Context) transport.BreakdownResponse {
	leads := s.repo.List(ctx)
	return transport.BreakdownResponse{
		Sources:  toBreakdownEntries(query.SourceBreakdown(leads)),
		Statuses: toBreakdownEntries(query.StatusBreakdown(leads)),
	}
}

// Ids are opaque keys on the wire; anything that does not name a live lead
// reads as not found.
func parseID(id string) (int64, error) {
	leadID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, apperr.NotFound(msgLeadNotFound)
	}
	return leadID, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(msgLeadNotFound)
	case errors.Is(err, repository.ErrUnknownStatus):
		return apperr.Validation("unknown lead status")
	default:
		return err
	}
}

func toLeadResponse(lead repository.Lead) transport.LeadResponse {
	notes := make([]transport.NoteResponse, len(lead.Notes))
	for i, note := range lead.Notes {
		notes[i] = transport.NoteResponse{
			Text:      note.Text,
			CreatedAt: note.CreatedAt,
		}
	}

	return transport.LeadResponse{
		ID:        formatID(lead.ID),
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Status:    transport.LeadStatus(lead.Status),
		Notes:     notes,
		CreatedAt: lead.CreatedAt,
	}
}

func toBreakdownEntries(entries []query.BreakdownEntry) []transport.BreakdownEntryResponse {
	items := make([]transport.BreakdownEntryResponse, len(entries))
	for i, entry := range entries {
		items[i] = transport.BreakdownEntryResponse{
			Name:  entry.Name,
			Count: entry.Count,
		}
	}
	return items
}
