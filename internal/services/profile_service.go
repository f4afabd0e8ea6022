package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/api/validate"
	"github.com/baharkarakas/accounts-backend/internal/models"
	repo "github.com/baharkarakas/accounts-backend/internal/repository"
)

// ProfileUpdate is one of BasicInfoUpdate or ProfessionalInfoUpdate.
type ProfileUpdate interface {
	Section() models.ProfileSection
	validate() validate.Errs
}

type BasicInfoUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	Phone     string `json:"phone"`
}

func (BasicInfoUpdate) Section() models.ProfileSection { return models.SectionBasic }

func (u BasicInfoUpdate) validate() validate.Errs {
	return validate.Collect(
		validate.First(validate.Required("firstName", u.FirstName), validate.MaxLen("firstName", u.FirstName, 50)),
		validate.First(validate.Required("lastName", u.LastName), validate.MaxLen("lastName", u.LastName, 50)),
		validate.MaxLen("bio", u.Bio, 500),
		validate.MaxLen("location", u.Location, 100),
		validate.URL("website", u.Website),
		validate.Phone("phone", u.Phone),
	)
}

type ProfessionalInfoUpdate struct {
	Occupation  string `json:"occupation"`
	Company     string `json:"company"`
	Industry    string `json:"industry"`
	Experience  string `json:"experience"`
	LinkedinURL string `json:"linkedinUrl"`
	GithubURL   string `json:"githubUrl"`
	TwitterURL  string `json:"twitterUrl"`
}

func (ProfessionalInfoUpdate) Section() models.ProfileSection { return models.SectionProfessional }

func (u ProfessionalInfoUpdate) validate() validate.Errs {
	var exp *validate.ErrField
	if u.Experience != "" {
		exp = validate.OneOf("experience", models.Experience(u.Experience),
			models.ExperienceEntry, models.ExperienceJunior, models.ExperienceMid,
			models.ExperienceSenior, models.ExperienceLead, models.ExperienceExecutive)
	}
	return validate.Collect(
		validate.MaxLen("occupation", u.Occupation, 100),
		validate.MaxLen("company", u.Company, 100),
		validate.MaxLen("industry", u.Industry, 100),
		exp,
		validate.URL("linkedinUrl", u.LinkedinURL),
		validate.URL("githubUrl", u.GithubURL),
		validate.URL("twitterUrl", u.TwitterURL),
	)
}

type ProfileService struct {
	accounts repo.Accounts
	profiles repo.Profiles
	audit    AuditRecorder
	now      func() time.Time
}

func NewProfileService(accounts repo.Accounts, profiles repo.Profiles, a AuditRecorder) *ProfileService {
	return &ProfileService{accounts: accounts, profiles: profiles, audit: a, now: time.Now}
}

// Update applies a profile section. Basic updates return the refreshed account; professional ones return nil.
func (s *ProfileService) Update(ctx context.Context, id models.Identity, u ProfileUpdate, client models.ClientInfo) (*models.Account, error) {
	if !id.Resolved() {
		return nil, ErrUnauthenticated
	}
	if u == nil {
		return nil, invalidInputMsg("Invalid update type")
	}
	if errs := u.validate(); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	now := s.now().UTC()
	var out *models.Account
	switch u := u.(type) {
	case BasicInfoUpdate:
		acc, err := s.accounts.UpdateBasicInfo(ctx, id.AccountID, models.BasicInfo{
			FirstName: strings.TrimSpace(u.FirstName),
			LastName:  strings.TrimSpace(u.LastName),
			Bio:       nullable(u.Bio),
			Location:  nullable(u.Location),
			Phone:     nullable(u.Phone),
			Website:   nullable(u.Website),
		}, now)
		if err != nil {
			return nil, mapLookup("update basic info", err)
		}
		out = &acc
	case ProfessionalInfoUpdate:
		if _, err := s.accounts.GetByID(ctx, id.AccountID); err != nil {
			return nil, mapLookup("load account", err)
		}
		var exp *models.Experience
		if u.Experience != "" {
			e := models.Experience(u.Experience)
			exp = &e
		}
		err := s.profiles.UpsertProfessional(ctx, id.AccountID, models.ProfessionalInfo{
			Occupation:  nullable(u.Occupation),
			Company:     nullable(u.Company),
			Industry:    nullable(u.Industry),
			Experience:  exp,
			LinkedinURL: nullable(u.LinkedinURL),
			GithubURL:   nullable(u.GithubURL),
			TwitterURL:  nullable(u.TwitterURL),
		}, now)
		if err != nil {
			return nil, internal("upsert professional info", err)
		}
	default:
		return nil, invalidInputMsg("Invalid update type")
	}

	s.audit.Record(ctx, id.AccountID, models.ProfileUpdatedDetail{Section: u.Section()}, true, client)
	return out, nil
}

func mapLookup(op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return notFound(err)
	}
	return internal(op, err)
}
