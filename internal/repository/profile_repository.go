package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hackathon-portal-api/internal/models"
)

const profileColumns = `id, user_id, first_name, last_name, email, university, major, graduation_year, github, linkedin, portfolio, phone, twitter, instagram, created_at, updated_at`

const insertProfileQuery = `INSERT INTO profiles (id, user_id, first_name, last_name, email, university, major, graduation_year, github, linkedin, portfolio, phone, twitter, instagram, created_at, updated_at) VALUES (:id, :user_id, :first_name, :last_name, :email, :university, :major, :graduation_year, :github, :linkedin, :portfolio, :phone, :twitter, :instagram, :created_at, :updated_at)`

// ProfileRepository reads and writes applicant profiles keyed by user id.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs the repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByUserID returns the profile owned by userID or sql.ErrNoRows.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 LIMIT 1`
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find profile by user: %w", err)
	}
	return &profile, nil
}

// Update overwrites the editable fields of the caller's profile. Email and ownership
// are left untouched. Returns sql.ErrNoRows when the user has no profile.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now().UTC()
	const query = `UPDATE profiles SET first_name = :first_name, last_name = :last_name, university = :university, major = :major, graduation_year = :graduation_year, github = :github, linkedin = :linkedin, portfolio = :portfolio, phone = :phone, twitter = :twitter, instagram = :instagram, updated_at = :updated_at WHERE user_id = :user_id`
	res, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
