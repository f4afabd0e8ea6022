package models

import (
	"strings"
	"time"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Account is a registered user. PasswordHash never leaves the service layer.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	Bio          *string   `json:"bio"`
	Location     *string   `json:"location"`
	Phone        *string   `json:"phone"`
	Website      *string   `json:"website"`
	PasswordHash string    `json:"-"`
	Theme        Theme     `json:"theme"`
	Language     string    `json:"language"`
	Timezone     string    `json:"timezone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccountSummary is what registration hands back to the client.
type AccountSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Account) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, Name: a.Name, Email: a.Email, CreatedAt: a.CreatedAt}
}

// NormalizeEmail trims and lower-cases an address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BasicInfo is the "basic" profile section stored on the account row.
type BasicInfo struct {
	FirstName string
	LastName  string
	Bio       *string
	Location  *string
	Phone     *string
	Website   *string
}

func (b BasicInfo) FullName() string {
	return b.FirstName + " " + b.LastName
}

// Preferences are the account-level settings.
type Preferences struct {
	Theme    Theme
	Language string
	Timezone string
}

const (
	DefaultTheme    = ThemeSystem
	DefaultLanguage = "en"
	DefaultTimezone = "UTC"
)
