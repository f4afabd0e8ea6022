package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/baharkarakas/accounts-backend/internal/repository"
)

type Profiles struct {
	mu   sync.RWMutex
	rows map[string]models.Profile
}

func NewProfiles() *Profiles {
	return &Profiles{rows: map[string]models.Profile{}}
}

func (s *Profiles) Get(_ context.Context, accountID string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.rows[accountID]
	if !ok {
		return models.Profile{}, fmt.Errorf("get profile: %w", repository.ErrNotFound)
	}
	return p, nil
}

func (s *Profiles) upsert(accountID string, at time.Time, fn func(*models.Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.rows[accountID]
	if !ok {
		p = models.Profile{AccountID: accountID, Settings: models.DefaultProfileSettings(), CreatedAt: at}
	}
	fn(&p)
	p.UpdatedAt = at
	s.rows[accountID] = p
}

func (s *Profiles) UpsertProfessional(_ context.Context, accountID string, info models.ProfessionalInfo, at time.Time) error {
	s.upsert(accountID, at, func(p *models.Profile) { p.Professional = info })
	return nil
}

func (s *Profiles) UpsertSettings(_ context.Context, accountID string, ps models.ProfileSettings, at time.Time) error {
	s.upsert(accountID, at, func(p *models.Profile) { p.Settings = ps })
	return nil
}
