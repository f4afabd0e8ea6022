package postgres

import (
	"context"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profilesRepo struct{ pool *pgxpool.Pool }

func (r *profilesRepo) Get(ctx context.Context, accountID string) (models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, occupation, company, industry, experience, linkedin_url, github_url, twitter_url,
		        email_notifications, push_notifications, marketing_emails, security_alerts,
		        profile_visibility, show_email, show_phone, show_location, created_at, updated_at
		   FROM user_profiles
		  WHERE account_id=$1`,
		accountID,
	).Scan(&p.AccountID,
		&p.Professional.Occupation, &p.Professional.Company, &p.Professional.Industry, &p.Professional.Experience,
		&p.Professional.LinkedinURL, &p.Professional.GithubURL, &p.Professional.TwitterURL,
		&p.Settings.EmailNotifications, &p.Settings.PushNotifications, &p.Settings.MarketingEmails,
		&p.Settings.SecurityAlerts, &p.Settings.ProfileVisibility, &p.Settings.ShowEmail,
		&p.Settings.ShowPhone, &p.Settings.ShowLocation, &p.CreatedAt, &p.UpdatedAt)
	return p, translate("get profile", err)
}

func (r *profilesRepo) UpsertProfessional(ctx context.Context, accountID string, info models.ProfessionalInfo, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_profiles(account_id, occupation, company, industry, experience,
		                           linkedin_url, github_url, twitter_url, created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
		 ON CONFLICT (account_id) DO UPDATE
		    SET occupation=EXCLUDED.occupation,
		        company=EXCLUDED.company,
		        industry=EXCLUDED.industry,
		        experience=EXCLUDED.experience,
		        linkedin_url=EXCLUDED.linkedin_url,
		        github_url=EXCLUDED.github_url,
		        twitter_url=EXCLUDED.twitter_url,
		        updated_at=EXCLUDED.updated_at`,
		accountID, info.Occupation, info.Company, info.Industry, info.Experience,
		info.LinkedinURL, info.GithubURL, info.TwitterURL, at,
	)
	return translate("upsert professional info", err)
}

func (r *profilesRepo) UpsertSettings(ctx context.Context, accountID string, s models.ProfileSettings, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_profiles(account_id, email_notifications, push_notifications, marketing_emails,
		                           security_alerts, profile_visibility, show_email, show_phone, show_location,
		                           created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10)
		 ON CONFLICT (account_id) DO UPDATE
		    SET email_notifications=EXCLUDED.email_notifications,
		        push_notifications=EXCLUDED.push_notifications,
		        marketing_emails=EXCLUDED.marketing_emails,
		        security_alerts=EXCLUDED.security_alerts,
		        profile_visibility=EXCLUDED.profile_visibility,
		        show_email=EXCLUDED.show_email,
		        show_phone=EXCLUDED.show_phone,
		        show_location=EXCLUDED.show_location,
		        updated_at=EXCLUDED.updated_at`,
		accountID, s.EmailNotifications, s.PushNotifications, s.MarketingEmails, s.SecurityAlerts,
		s.ProfileVisibility, s.ShowEmail, s.ShowPhone, s.ShowLocation, at,
	)
	return translate("upsert profile settings", err)
}
