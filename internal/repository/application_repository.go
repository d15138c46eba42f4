package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hackathon-portal-api/internal/models"
)

const applicationColumns = `id, created_at, user_id, profile_id, why_participate, project_idea, ai_experience, status`

const applicationRecordSelect = `SELECT a.id, a.created_at, a.user_id, a.profile_id, a.why_participate, a.project_idea, a.ai_experience, a.status,
	p.first_name AS profile_first_name, p.last_name AS profile_last_name, p.email AS profile_email,
	p.university AS profile_university, p.major AS profile_major, p.graduation_year AS profile_graduation_year
	FROM applications a JOIN profiles p ON p.id = a.profile_id`

// ApplicationRepository persists hackathon applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs the repository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts app in a single statement. The status column is left NULL, which
// reads back as pending. A second application for the same user violates
// applications_user_id_key and returns an error wrapping both ErrDuplicate and the
// driver error.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO applications (id, created_at, user_id, profile_id, why_participate, project_idea, ai_experience) VALUES (:id, :created_at, :user_id, :profile_id, :why_participate, :project_idea, :ai_experience)`
	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create application: %w: %w", ErrDuplicate, err)
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// FindByUserID returns the user's application or sql.ErrNoRows.
func (r *ApplicationRepository) FindByUserID(ctx context.Context, userID string) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`
	var app models.Application
	if err := r.db.GetContext(ctx, &app, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find application by user: %w", err)
	}
	return &app, nil
}

// ListByUserID returns the user's applications joined with their profile.
func (r *ApplicationRepository) ListByUserID(ctx context.Context, userID string) ([]models.ApplicationRecord, error) {
	query := applicationRecordSelect + ` WHERE a.user_id = $1 ORDER BY a.created_at DESC`
	var records []models.ApplicationRecord
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return records, nil
}

// FindRecordForUser returns one application owned by userID, or sql.ErrNoRows when it
// does not exist or belongs to somebody else.
func (r *ApplicationRepository) FindRecordForUser(ctx context.Context, id, userID string) (*models.ApplicationRecord, error) {
	query := applicationRecordSelect + ` WHERE a.id = $1 AND a.user_id = $2 LIMIT 1`
	var record models.ApplicationRecord
	if err := r.db.GetContext(ctx, &record, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &record, nil
}
