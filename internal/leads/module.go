// Package leads provides the lead management bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"context"

	"leadboard_backend/internal/events"
	apphttp "leadboard_backend/internal/http"
	"leadboard_backend/internal/leads/handler"
	"leadboard_backend/internal/leads/repository"
	"leadboard_backend/internal/leads/seed"
	"leadboard_backend/internal/leads/service"
	"leadboard_backend/platform/config"
	"leadboard_backend/platform/logger"
	"leadboard_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(eventBus events.Bus, val *validator.Validator, cfg *config.Config, log *logger.Logger) (*Module, error) {
	var initial []repository.Lead
	if cfg.GetSeedDemoData() {
		demo, err := seed.DemoLeads()
		if err != nil {
			return nil, err
		}
		initial = demo
		log.Info("seeded demo leads", "count", len(demo))
	}

	repo := repository.New(initial)
	svc := service.New(repo, eventBus, cfg)
	h := handler.New(svc, val)

	// Audit trail for lead mutations. The store is in-memory, so the log is
	// the only durable record of what happened.
	registerAuditTrail(eventBus, log)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}, nil
}

func registerAuditTrail(eventBus events.Bus, log *logger.Logger) {
	eventBus.Subscribe(events.LeadCreated{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.LeadCreated); ok {
			log.StoreEvent("create", e.LeadID)
		}
		return nil
	}))
	eventBus.Subscribe(events.LeadStatusChanged{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.LeadStatusChanged); ok {
			log.StoreEvent("status:"+e.OldStatus+">"+e.NewStatus, e.LeadID)
		}
		return nil
	}))
	eventBus.Subscribe(events.LeadNoteAdded{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.LeadNoteAdded); ok {
			log.StoreEvent("note", e.LeadID)
		}
		return nil
	}))
	eventBus.Subscribe(events.LeadDeleted{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.LeadDeleted); ok {
			log.StoreEvent("delete", e.LeadID)
		}
		return nil
	}))
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// All leads routes require authentication
	leadsGroup := ctx.Protected.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
