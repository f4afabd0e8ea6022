package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/accounts-backend/internal/models"
	repo "github.com/baharkarakas/accounts-backend/internal/repository"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 50
)

type PageRequest struct {
	Limit  int
	Offset int
}

// normalize applies the default limit, the 50-row cap and a non-negative offset.
func (p PageRequest) normalize() PageRequest {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type SecurityLogPage struct {
	Events     []models.AuditEvent
	Pagination Pagination
}

type SecurityLogService struct {
	events repo.AuditEvents
}

func NewSecurityLogService(events repo.AuditEvents) *SecurityLogService {
	return &SecurityLogService{events: events}
}

// List returns the caller's audit events, newest first.
func (s *SecurityLogService) List(ctx context.Context, id models.Identity, req PageRequest) (SecurityLogPage, error) {
	if !id.Resolved() {
		return SecurityLogPage{}, ErrUnauthenticated
	}
	req = req.normalize()

	var (
		events []models.AuditEvent
		total  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.events.ListByAccount(gctx, id.AccountID, req.Limit, req.Offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.events.CountByAccount(gctx, id.AccountID)
		return err
	})
	if err := g.Wait(); err != nil {
		return SecurityLogPage{}, internal("list security logs", err)
	}
	if events == nil {
		events = []models.AuditEvent{}
	}

	return SecurityLogPage{
		Events: events,
		Pagination: Pagination{
			Total:   total,
			Limit:   req.Limit,
			Offset:  req.Offset,
			HasMore: req.Offset+len(events) < total,
		},
	}, nil
}
