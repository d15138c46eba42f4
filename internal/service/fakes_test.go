package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/hackathon-portal-api/internal/models"
	"github.com/noah-isme/hackathon-portal-api/internal/repository"
	"github.com/noah-isme/hackathon-portal-api/pkg/mail"
)

// fakeProfiles is an in-memory profile table keyed by user id.
type fakeProfiles struct {
	mu        sync.Mutex
	byUser    map[string]*models.Profile
	findErr   error
	updateErr error
	names     map[string][2]string
}

func newFakeProfiles(profiles ...models.Profile) *fakeProfiles {
	f := &fakeProfiles{byUser: map[string]*models.Profile{}, names: map[string][2]string{}}
	for i := range profiles {
		p := profiles[i]
		f.byUser[p.UserID] = &p
	}
	return f
}

func (f *fakeProfiles) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.byUser[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProfiles) Update(ctx context.Context, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.byUser[profile.UserID]
	if !ok {
		return sql.ErrNoRows
	}
	email := stored.Email
	clone := *profile
	clone.Email = email
	clone.UpdatedAt = time.Now().UTC()
	f.byUser[profile.UserID] = &clone
	return nil
}

func (f *fakeProfiles) UpdateName(ctx context.Context, id, firstName, lastName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names[id] = [2]string{firstName, lastName}
	return nil
}

// fakeApplications enforces one application per user like applications_user_id_key.
type fakeApplications struct {
	mu        sync.Mutex
	byUser    map[string]*models.Application
	profiles  *fakeProfiles
	createErr error
	findErr   error
	creates   int
}

func newFakeApplications(profiles *fakeProfiles) *fakeApplications {
	return &fakeApplications{byUser: map[string]*models.Application{}, profiles: profiles}
}

func (f *fakeApplications) Create(ctx context.Context, app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byUser[app.UserID]; exists {
		return fmt.Errorf("create application: %w: %w", repository.ErrDuplicate,
			errors.New(`pq: duplicate key value violates unique constraint "applications_user_id_key"`))
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.CreatedAt = time.Now().UTC()
	clone := *app
	f.byUser[app.UserID] = &clone
	return nil
}

func (f *fakeApplications) FindByUserID(ctx context.Context, userID string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	app, ok := f.byUser[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *app
	return &clone, nil
}

func (f *fakeApplications) ListByUserID(ctx context.Context, userID string) ([]models.ApplicationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	app, ok := f.byUser[userID]
	if !ok {
		return []models.ApplicationRecord{}, nil
	}
	return []models.ApplicationRecord{f.record(app)}, nil
}

func (f *fakeApplications) FindRecordForUser(ctx context.Context, id, userID string) (*models.ApplicationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.byUser[userID]
	if !ok || app.ID != id {
		return nil, sql.ErrNoRows
	}
	record := f.record(app)
	return &record, nil
}

func (f *fakeApplications) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byUser)
}

func (f *fakeApplications) record(app *models.Application) models.ApplicationRecord {
	record := models.ApplicationRecord{Application: *app}
	if f.profiles != nil {
		if p, ok := f.profiles.byUser[app.UserID]; ok {
			record.ProfileFirstName = p.FirstName
			record.ProfileLastName = p.LastName
			record.ProfileEmail = p.Email
			record.ProfileUniversity = p.University
			record.ProfileMajor = p.Major
			record.ProfileGraduationYear = p.GraduationYear
		}
	}
	return record
}

type fakeLocks struct {
	mu   sync.Mutex
	held map[string]string
	err  error
}

func (f *fakeLocks) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", false, f.err
	}
	if f.held == nil {
		f.held = map[string]string{}
	}
	if _, taken := f.held[key]; taken {
		return "", false, nil
	}
	token := uuid.NewString()
	f.held[key] = token
	return token, true, nil
}

func (f *fakeLocks) Release(ctx context.Context, key, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] == token {
		delete(f.held, key)
	}
	return nil
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []*models.AuditLog
}

func (f *fakeAudit) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, log)
	return nil
}

type fakeMailer struct {
	mu        sync.Mutex
	sent      []mail.Message
	err       error
	deadlines []time.Time
}

func (f *fakeMailer) Send(ctx context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if deadline, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, deadline)
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func completeProfile(userID string) models.Profile {
	return models.Profile{
		ID:             "profile-" + userID,
		UserID:         userID,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		University:     "UC Berkeley",
		Major:          "Computer Science",
		GraduationYear: 2026,
	}
}

func sessionFor(userID string) *models.JWTClaims {
	return &models.JWTClaims{UserID: userID, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
}
