package database

import (
	"context"
	"database/sql"
	"fmt"

	"startupbridge/internal/models"

	"go.uber.org/zap"
)

type seedUser struct {
	firebaseUID string
	email       string
	name        string
	role        string
	company     string
	bio         string
	location    string
}

type seedPost struct {
	ownerRole     string
	postType      string
	title         string
	description   string
	category      string
	fundingAmount int64
}

var sampleUsers = []seedUser{
	{"firebase_uid_1", "investor@example.com", "John Investor", models.RoleInvestor, "InvestCorp", "Experienced investor in tech startups", "Mumbai"},
	{"firebase_uid_2", "entrepreneur@example.com", "Sarah Startup", models.RoleEntrepreneur, "TechVenture", "Passionate about AI and ML solutions", "Bangalore"},
	{"firebase_uid_3", "banker@example.com", "Mike Finance", models.RoleBanker, "IndiaBank", "Corporate banking specialist", "Delhi"},
	{"firebase_uid_4", "advisor@example.com", "Lisa Consultant", models.RoleAdvisor, "BizConsult", "Business strategy consultant", "Pune"},
}

var samplePosts = []seedPost{
	{models.RoleEntrepreneur, models.PostTypeBusinessIdea, "AI-Powered Healthcare Platform", "Revolutionary AI platform for early disease detection using machine learning algorithms.", "healthcare", 5000000},
	{models.RoleEntrepreneur, models.PostTypeBusinessIdea, "Sustainable Agriculture App", "Mobile application connecting farmers with sustainable farming techniques and market access.", "agriculture", 2000000},
	{models.RoleInvestor, models.PostTypeInvestmentProposal, "Tech Startup Investment Fund", "Looking for promising tech startups in India for Series A funding.", "technology", 10000000},
}

// SeedSampleData inserts the demo users and posts. It is a no-op once any user exists.
func SeedSampleData(ctx context.Context, m *Manager) error {
	var existing int
	if err := m.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&existing); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if existing > 0 {
		m.logger.Debug("Skipping sample data, users already present", zap.Int("users", existing))
		return nil
	}

	return m.ExecuteTransaction(ctx, func(tx *sql.Tx) error {
		idsByRole := make(map[string]int, len(sampleUsers))
		for _, u := range sampleUsers {
			var id int
			err := tx.QueryRowContext(ctx, `
				INSERT INTO users (firebase_uid, email, name, role, company, bio, location)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id`,
				u.firebaseUID, u.email, u.name, u.role, u.company, u.bio, u.location,
			).Scan(&id)
			if err != nil {
				return fmt.Errorf("failed to insert sample user %s: %w", u.firebaseUID, err)
			}
			idsByRole[u.role] = id
		}

		for _, p := range samplePosts {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO posts (user_id, type, title, description, category, funding_amount)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				idsByRole[p.ownerRole], p.postType, p.title, p.description, p.category, p.fundingAmount,
			)
			if err != nil {
				return fmt.Errorf("failed to insert sample post %q: %w", p.title, err)
			}
		}

		m.logger.Info("Sample data inserted",
			zap.Int("users", len(sampleUsers)),
			zap.Int("posts", len(samplePosts)),
		)
		return nil
	})
}
