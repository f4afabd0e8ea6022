package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/google/uuid"
)

type AuditEvents struct {
	mu     sync.RWMutex
	events map[string][]models.AuditEvent
}

func NewAuditEvents() *AuditEvents {
	return &AuditEvents{events: map[string][]models.AuditEvent{}}
}

func (s *AuditEvents) Create(_ context.Context, e models.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.events[e.AccountID] = append(s.events[e.AccountID], e)
	return nil
}

// ListByAccount returns newest first; events with equal timestamps keep reverse insertion order.
func (s *AuditEvents) ListByAccount(_ context.Context, accountID string, limit, offset int) ([]models.AuditEvent, error) {
	s.mu.RLock()
	all := append([]models.AuditEvent{}, s.events[accountID]...)
	s.mu.RUnlock()

	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if offset >= len(all) {
		return []models.AuditEvent{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *AuditEvents) CountByAccount(_ context.Context, accountID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events[accountID]), nil
}

// All returns every stored event for accountID in insertion order.
func (s *AuditEvents) All(accountID string) []models.AuditEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AuditEvent{}, s.events[accountID]...)
}
