// Package repository implements the lead store: the exclusive owner of the
// canonical lead collection. All writes pass through it, and every read hands
// out snapshots so callers can never mutate store state directly.
//
// The backing store is process memory by design. A mutex serializes
// mutations, so each one completes fully before the next begins.
package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"leadboard_backend/internal/leads/domain"
)

var (
	ErrNotFound      = errors.New("lead not found")
	ErrUnknownStatus = errors.New("unknown lead status")
)

// FollowUpNote is a timestamped annotation on a lead. Immutable once appended.
type FollowUpNote struct {
	Text      string
	CreatedAt time.Time
}

// Lead is the canonical lead record.
type Lead struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Source    string
	Status    domain.Status
	Notes     []FollowUpNote
	CreatedAt time.Time
}

type CreateLeadParams struct {
	Name   string
	Email  string
	Phone  string
	Source string
}

// Repository holds the collection most-recent-first and an id counter that
// only ever moves forward, so ids are never reused even after deletion.
type Repository struct {
	mu     sync.Mutex
	leads  []*Lead
	byID   map[int64]*Lead
	nextID int64
}

// New creates a repository seeded with the given leads. The id counter is
// initialized above the highest seed id.
func New(seed []Lead) *Repository {
	r := &Repository{
		leads:  make([]*Lead, 0, len(seed)),
		byID:   make(map[int64]*Lead, len(seed)),
		nextID: 1,
	}

	for i := range seed {
		lead := seed[i]
		lead.Notes = cloneNotes(lead.Notes)
		r.leads = append(r.leads, &lead)
		r.byID[lead.ID] = &lead
		if lead.ID >= r.nextID {
			r.nextID = lead.ID + 1
		}
	}

	return r
}

// Create inserts a new lead at the front of the collection with a freshly
// allocated id, status New, empty notes, and createdAt fixed to now.
func (r *Repository) Create(_ context.Context, params CreateLeadParams) (Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead := &Lead{
		ID:        r.nextID,
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Source:    params.Source,
		Status:    domain.StatusNew,
		Notes:     []FollowUpNote{},
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++

	r.leads = append([]*Lead{lead}, r.leads...)
	r.byID[lead.ID] = lead

	return snapshot(lead), nil
}

// GetByID returns a snapshot of the lead with the given id.
func (r *Repository) GetByID(_ context.Context, id int64) (Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.byID[id]
	if !ok {
		return Lead{}, ErrNotFound
	}
	return snapshot(lead), nil
}

// List returns a snapshot of the full collection in canonical order
// (most-recent-first).
func (r *Repository) List(_ context.Context) []Lead {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]Lead, len(r.leads))
	for i, lead := range r.leads {
		items[i] = snapshot(lead)
	}
	return items
}

// Count returns the number of live leads.
func (r *Repository) Count(_ context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.leads)
}

// UpdateStatus sets the lead's status. The status domain is closed; values
// outside it are rejected before the lead is touched. Collection order is
// unchanged.
func (r *Repository) UpdateStatus(_ context.Context, id int64, status domain.Status) (Lead, error) {
	if !domain.IsKnownStatus(status) {
		return Lead{}, ErrUnknownStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.byID[id]
	if !ok {
		return Lead{}, ErrNotFound
	}

	lead.Status = status
	return snapshot(lead), nil
}

// AddNote appends a follow-up note with createdAt fixed to now. Notes are
// append-only; nothing else on the lead changes.
func (r *Repository) AddNote(_ context.Context, id int64, text string) (Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.byID[id]
	if !ok {
		return Lead{}, ErrNotFound
	}

	lead.Notes = append(lead.Notes, FollowUpNote{
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	return snapshot(lead), nil
}

// Delete removes the lead and its notes permanently. The freed id is never
// handed out again.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)

	for i, lead := range r.leads {
		if lead.ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			break
		}
	}
	return nil
}

func snapshot(lead *Lead) Lead {
	copied := *lead
	copied.Notes = cloneNotes(lead.Notes)
	return copied
}

func cloneNotes(notes []FollowUpNote) []FollowUpNote {
	cloned := make([]FollowUpNote, len(notes))
	copy(cloned, notes)
	return cloned
}
