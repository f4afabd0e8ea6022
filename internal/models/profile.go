package models

import "time"

type Experience string

const (
	ExperienceEntry     Experience = "Entry"
	ExperienceJunior    Experience = "Junior"
	ExperienceMid       Experience = "Mid"
	ExperienceSenior    Experience = "Senior"
	ExperienceLead      Experience = "Lead"
	ExperienceExecutive Experience = "Executive"
)

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
)

type ProfessionalInfo struct {
	Occupation  *string     `json:"occupation"`
	Company     *string     `json:"company"`
	Industry    *string     `json:"industry"`
	Experience  *Experience `json:"experience"`
	LinkedinURL *string     `json:"linkedinUrl"`
	GithubURL   *string     `json:"githubUrl"`
	TwitterURL  *string     `json:"twitterUrl"`
}

// ProfileSettings are the notification, privacy and display flags kept on the profile row.
type ProfileSettings struct {
	EmailNotifications bool       `json:"emailNotifications"`
	PushNotifications  bool       `json:"pushNotifications"`
	MarketingEmails    bool       `json:"marketingEmails"`
	SecurityAlerts     bool       `json:"securityAlerts"`
	ProfileVisibility  Visibility `json:"profileVisibility"`
	ShowEmail          bool       `json:"showEmail"`
	ShowPhone          bool       `json:"showPhone"`
	ShowLocation       bool       `json:"showLocation"`
}

// DefaultProfileSettings applies when an account has no profile row yet.
func DefaultProfileSettings() ProfileSettings {
	return ProfileSettings{
		EmailNotifications: true,
		SecurityAlerts:     true,
		ProfileVisibility:  VisibilityPrivate,
	}
}

// Profile is the 1:1 companion row of an account.
type Profile struct {
	AccountID    string
	Professional ProfessionalInfo
	Settings     ProfileSettings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
