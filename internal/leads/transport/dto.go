package transport

import (
	"time"
)

// LeadStatus is the wire form of the pipeline status enum.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusConverted LeadStatus = "Converted"
)

// Request DTOs
type CreateLeadRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Email  string `json:"email" validate:"required,email,max=200"`
	Phone  string `json:"phone" validate:"max=30"`
	Source string `json:"source" validate:"required,min=1,max=100"`
}

type UpdateLeadStatusRequest struct {
	Status LeadStatus `json:"status" validate:"required,oneof=New Contacted Converted"`
}

type AddNoteRequest struct {
	Note string `json:"note" validate:"required,max=2000"`
}

type ListLeadsRequest struct {
	Search string     `form:"search" validate:"max=100"`
	Status LeadStatus `form:"status" validate:"omitempty,oneof=New Contacted Converted"`
}

// Response DTOs
type NoteResponse struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type LeadResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Source    string         `json:"source"`
	Status    LeadStatus     `json:"status"`
	Notes     []NoteResponse `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
}

type StatsResponse struct {
	Total          int     `json:"total"`
	New            int     `json:"new"`
	Contacted      int     `json:"contacted"`
	Converted      int     `json:"converted"`
	ConversionRate float64 `json:"conversionRate"`
}

type BreakdownEntryResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type BreakdownResponse struct {
	Sources  []BreakdownEntryResponse `json:"sources"`
	Statuses []BreakdownEntryResponse `json:"statuses"`
}
