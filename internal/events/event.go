// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadboard_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Auth Domain Events
// =============================================================================

// AdminSignedIn is published when the admin successfully authenticates.
type AdminSignedIn struct {
	BaseEvent
	Email string `json:"email"`
}

func (e AdminSignedIn) EventName() string { return "auth.admin.signed_in" }

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead is created.
type LeadCreated struct {
	BaseEvent
	LeadID string `json:"leadId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Source string `json:"source"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadStatusChanged is published when a lead's pipeline status changes.
type LeadStatusChanged struct {
	BaseEvent
	LeadID    string `json:"leadId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

func (e LeadStatusChanged) EventName() string { return "leads.status.changed" }

// LeadNoteAdded is published when a follow-up note is appended to a lead.
type LeadNoteAdded struct {
	BaseEvent
	LeadID string `json:"leadId"`
	Text   string `json:"text"`
}

func (e LeadNoteAdded) EventName() string { return "leads.note.added" }

// LeadDeleted is published when a lead is removed from the collection.
type LeadDeleted struct {
	BaseEvent
	LeadID string `json:"leadId"`
}

func (e LeadDeleted) EventName() string { return "leads.lead.deleted" }
