package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hackathon-portal-api/internal/models"
)

var profileRowColumns = []string{"id", "user_id", "first_name", "last_name", "email", "university", "major", "graduation_year", "github", "linkedin", "portfolio", "phone", "twitter", "instagram", "created_at", "updated_at"}

func TestProfileFindByUserID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(profileRowColumns).
		AddRow("p1", "u1", "Ada", "Lovelace", "ada@example.com", "UC Berkeley", "CS", 2026, "", "", "", "", "", "", now, now)
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = \\$1").WithArgs("u1").WillReturnRows(rows)

	profile, err := repo.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "p1", profile.ID)
	assert.Equal(t, 2026, profile.GraduationYear)
	assert.True(t, profile.IsComplete())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileFindByUserIDMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery("FROM profiles WHERE user_id").WithArgs("u2").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUserID(context.Background(), "u2")
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestProfileUpdateWithoutRow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectExec("UPDATE profiles SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Profile{UserID: "u1", FirstName: "Ada"})
	assert.Equal(t, sql.ErrNoRows, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectExec("UPDATE profiles SET").WillReturnResult(sqlmock.NewResult(0, 1))

	p := &models.Profile{UserID: "u1", FirstName: "Ada"}
	require.NoError(t, repo.Update(context.Background(), p))
	assert.False(t, p.UpdatedAt.IsZero())
}
