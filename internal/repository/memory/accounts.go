// Package memory holds in-process repositories used by APP_STORE=memory and by tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/baharkarakas/accounts-backend/internal/repository"
	"github.com/google/uuid"
)

type Repositories struct {
	Accounts    *Accounts
	Profiles    *Profiles
	AuditEvents *AuditEvents
}

func NewRepositories() Repositories {
	return Repositories{
		Accounts:    NewAccounts(),
		Profiles:    NewProfiles(),
		AuditEvents: NewAuditEvents(),
	}
}

type Accounts struct {
	mu      sync.RWMutex
	byID    map[string]models.Account
	byEmail map[string]string
}

func NewAccounts() *Accounts {
	return &Accounts{byID: map[string]models.Account{}, byEmail: map[string]string{}}
}

func (s *Accounts) Create(_ context.Context, a models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[a.Email]; taken {
		return models.Account{}, fmt.Errorf("create account: %w", repository.ErrConflict)
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = a.CreatedAt
	s.byID[a.ID] = a
	s.byEmail[a.Email] = a.ID
	return a, nil
}

func (s *Accounts) GetByID(_ context.Context, id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return models.Account{}, fmt.Errorf("get account: %w", repository.ErrNotFound)
	}
	return a, nil
}

func (s *Accounts) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	s.mu.RLock()
	id, ok := s.byEmail[email]
	s.mu.RUnlock()
	if !ok {
		return models.Account{}, fmt.Errorf("get account by email: %w", repository.ErrNotFound)
	}
	return s.GetByID(ctx, id)
}

func (s *Accounts) update(id string, fn func(*models.Account)) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return models.Account{}, fmt.Errorf("update account: %w", repository.ErrNotFound)
	}
	fn(&a)
	s.byID[id] = a
	return a, nil
}

func (s *Accounts) UpdatePasswordHash(_ context.Context, id, hash string, at time.Time) error {
	_, err := s.update(id, func(a *models.Account) {
		a.PasswordHash = hash
		a.UpdatedAt = at
	})
	return err
}

func (s *Accounts) UpdateBasicInfo(_ context.Context, id string, info models.BasicInfo, at time.Time) (models.Account, error) {
	return s.update(id, func(a *models.Account) {
		first, last := info.FirstName, info.LastName
		a.FirstName, a.LastName = &first, &last
		a.Name = info.FullName()
		a.Bio, a.Location, a.Phone, a.Website = info.Bio, info.Location, info.Phone, info.Website
		a.UpdatedAt = at
	})
}

func (s *Accounts) UpdatePreferences(_ context.Context, id string, p models.Preferences, at time.Time) error {
	_, err := s.update(id, func(a *models.Account) {
		a.Theme, a.Language, a.Timezone = p.Theme, p.Language, p.Timezone
		a.UpdatedAt = at
	})
	return err
}
