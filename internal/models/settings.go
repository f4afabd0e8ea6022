package models

// Settings is the flat preference snapshot exposed by the settings endpoints.
type Settings struct {
	Theme              Theme      `json:"theme"`
	Language           string     `json:"language"`
	Timezone           string     `json:"timezone"`
	EmailNotifications bool       `json:"emailNotifications"`
	PushNotifications  bool       `json:"pushNotifications"`
	MarketingEmails    bool       `json:"marketingEmails"`
	SecurityAlerts     bool       `json:"securityAlerts"`
	ProfileVisibility  Visibility `json:"profileVisibility"`
	ShowEmail          bool       `json:"showEmail"`
	ShowPhone          bool       `json:"showPhone"`
	ShowLocation       bool       `json:"showLocation"`
}

func NewSettings(p Preferences, ps ProfileSettings) Settings {
	return Settings{
		Theme:              p.Theme,
		Language:           p.Language,
		Timezone:           p.Timezone,
		EmailNotifications: ps.EmailNotifications,
		PushNotifications:  ps.PushNotifications,
		MarketingEmails:    ps.MarketingEmails,
		SecurityAlerts:     ps.SecurityAlerts,
		ProfileVisibility:  ps.ProfileVisibility,
		ShowEmail:          ps.ShowEmail,
		ShowPhone:          ps.ShowPhone,
		ShowLocation:       ps.ShowLocation,
	}
}

func (s Settings) Preferences() Preferences {
	return Preferences{Theme: s.Theme, Language: s.Language, Timezone: s.Timezone}
}

func (s Settings) ProfileSettings() ProfileSettings {
	return ProfileSettings{
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		MarketingEmails:    s.MarketingEmails,
		SecurityAlerts:     s.SecurityAlerts,
		ProfileVisibility:  s.ProfileVisibility,
		ShowEmail:          s.ShowEmail,
		ShowPhone:          s.ShowPhone,
		ShowLocation:       s.ShowLocation,
	}
}

// ChangedFields returns the JSON names of fields that differ between s and next, in declaration order.
func (s Settings) ChangedFields(next Settings) []string {
	var out []string
	add := func(changed bool, name string) {
		if changed {
			out = append(out, name)
		}
	}
	add(s.Theme != next.Theme, "theme")
	add(s.Language != next.Language, "language")
	add(s.Timezone != next.Timezone, "timezone")
	add(s.EmailNotifications != next.EmailNotifications, "emailNotifications")
	add(s.PushNotifications != next.PushNotifications, "pushNotifications")
	add(s.MarketingEmails != next.MarketingEmails, "marketingEmails")
	add(s.SecurityAlerts != next.SecurityAlerts, "securityAlerts")
	add(s.ProfileVisibility != next.ProfileVisibility, "profileVisibility")
	add(s.ShowEmail != next.ShowEmail, "showEmail")
	add(s.ShowPhone != next.ShowPhone, "showPhone")
	add(s.ShowLocation != next.ShowLocation, "showLocation")
	return out
}
