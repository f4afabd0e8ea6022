package services

import (
	"context"
	"errors"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/api/validate"
	"github.com/baharkarakas/accounts-backend/internal/models"
	repo "github.com/baharkarakas/accounts-backend/internal/repository"
)

// SettingsInput uses pointers for booleans so a missing field is distinguishable from false.
type SettingsInput struct {
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	EmailNotifications *bool  `json:"emailNotifications"`
	PushNotifications  *bool  `json:"pushNotifications"`
	MarketingEmails    *bool  `json:"marketingEmails"`
	SecurityAlerts     *bool  `json:"securityAlerts"`
	ProfileVisibility  string `json:"profileVisibility"`
	ShowEmail          *bool  `json:"showEmail"`
	ShowPhone          *bool  `json:"showPhone"`
	ShowLocation       *bool  `json:"showLocation"`
}

func (in SettingsInput) validate() validate.Errs {
	return validate.Collect(
		validate.OneOf("theme", models.Theme(in.Theme), models.ThemeLight, models.ThemeDark, models.ThemeSystem),
		validate.First(validate.Required("language", in.Language), validate.MinLen("language", in.Language, 2)),
		validate.Required("timezone", in.Timezone),
		validate.Present("emailNotifications", in.EmailNotifications),
		validate.Present("pushNotifications", in.PushNotifications),
		validate.Present("marketingEmails", in.MarketingEmails),
		validate.Present("securityAlerts", in.SecurityAlerts),
		validate.OneOf("profileVisibility", models.Visibility(in.ProfileVisibility),
			models.VisibilityPrivate, models.VisibilityPublic, models.VisibilityFriends),
		validate.Present("showEmail", in.ShowEmail),
		validate.Present("showPhone", in.ShowPhone),
		validate.Present("showLocation", in.ShowLocation),
	)
}

// settings must only be called after validate succeeded.
func (in SettingsInput) settings() models.Settings {
	return models.Settings{
		Theme:              models.Theme(in.Theme),
		Language:           in.Language,
		Timezone:           in.Timezone,
		EmailNotifications: *in.EmailNotifications,
		PushNotifications:  *in.PushNotifications,
		MarketingEmails:    *in.MarketingEmails,
		SecurityAlerts:     *in.SecurityAlerts,
		ProfileVisibility:  models.Visibility(in.ProfileVisibility),
		ShowEmail:          *in.ShowEmail,
		ShowPhone:          *in.ShowPhone,
		ShowLocation:       *in.ShowLocation,
	}
}

type SettingsService struct {
	accounts repo.Accounts
	profiles repo.Profiles
	audit    AuditRecorder
	now      func() time.Time
}

func NewSettingsService(accounts repo.Accounts, profiles repo.Profiles, a AuditRecorder) *SettingsService {
	return &SettingsService{accounts: accounts, profiles: profiles, audit: a, now: time.Now}
}

// Get returns the stored snapshot, filling profile-side defaults when no profile row exists.
func (s *SettingsService) Get(ctx context.Context, id models.Identity) (models.Settings, error) {
	if !id.Resolved() {
		return models.Settings{}, ErrUnauthenticated
	}
	acc, err := s.accounts.GetByID(ctx, id.AccountID)
	if err != nil {
		return models.Settings{}, mapLookup("load account", err)
	}
	ps := models.DefaultProfileSettings()
	p, err := s.profiles.Get(ctx, id.AccountID)
	switch {
	case err == nil:
		ps = p.Settings
	case !errors.Is(err, repo.ErrNotFound):
		return models.Settings{}, internal("load profile", err)
	}
	return models.NewSettings(models.Preferences{Theme: acc.Theme, Language: acc.Language, Timezone: acc.Timezone}, ps), nil
}

func (s *SettingsService) Update(ctx context.Context, id models.Identity, in SettingsInput, client models.ClientInfo) error {
	if !id.Resolved() {
		return ErrUnauthenticated
	}
	if errs := in.validate(); len(errs) > 0 {
		return invalidInput(errs)
	}
	next := in.settings()

	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	if err := s.accounts.UpdatePreferences(ctx, id.AccountID, next.Preferences(), now); err != nil {
		return mapLookup("update preferences", err)
	}
	if err := s.profiles.UpsertSettings(ctx, id.AccountID, next.ProfileSettings(), now); err != nil {
		return internal("upsert profile settings", err)
	}

	changes := current.ChangedFields(next)
	if changes == nil {
		changes = []string{}
	}
	s.audit.Record(ctx, id.AccountID, models.SettingsUpdatedDetail{Changes: changes, Timestamp: now}, true, client)
	return nil
}
