package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/hackathon-portal-api/internal/dto"
	"github.com/noah-isme/hackathon-portal-api/internal/models"
	appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"
	"github.com/noah-isme/hackathon-portal-api/pkg/export"
)

type applicationReader interface {
	ListByUserID(ctx context.Context, userID string) ([]models.ApplicationRecord, error)
	FindRecordForUser(ctx context.Context, id, userID string) (*models.ApplicationRecord, error)
}

// ApplicationService lists the caller's applications and renders receipts. Users only
// ever see their own records.
type ApplicationService struct {
	repo          applicationReader
	renderers     map[dto.ReceiptFormat]export.Renderer
	hackathonName string
	logger        *zap.Logger
}

// NewApplicationService constructs the service with PDF and CSV receipt renderers.
func NewApplicationService(repo applicationReader, hackathonName string, logger *zap.Logger) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		repo: repo,
		renderers: map[dto.ReceiptFormat]export.Renderer{
			dto.ReceiptPDF: export.NewPDFExporter(),
			dto.ReceiptCSV: export.NewCSVExporter(),
		},
		hackathonName: hackathonName,
		logger:        logger,
	}
}

// List returns the caller's applications, newest first.
func (s *ApplicationService) List(ctx context.Context, claims *models.JWTClaims) ([]dto.ApplicationView, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthenticated
	}
	records, err := s.repo.ListByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, storeError(err)
	}
	views := make([]dto.ApplicationView, 0, len(records))
	for i := range records {
		views = append(views, s.view(&records[i]))
	}
	return views, nil
}

// Get returns one of the caller's applications. Other users' records read as not found.
func (s *ApplicationService) Get(ctx context.Context, claims *models.JWTClaims, id string) (*dto.ApplicationView, error) {
	record, err := s.find(ctx, claims, id)
	if err != nil {
		return nil, err
	}
	view := s.view(record)
	return &view, nil
}

// Receipt renders a printable confirmation of one of the caller's applications.
func (s *ApplicationService) Receipt(ctx context.Context, claims *models.JWTClaims, id string, format dto.ReceiptFormat) (*dto.Receipt, error) {
	if format == "" {
		format = dto.ReceiptPDF
	}
	renderer, ok := s.renderers[dto.ReceiptFormat(strings.ToLower(string(format)))]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be pdf or csv")
	}

	record, err := s.find(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	view := s.view(record)
	body, err := renderer.Render(s.receipt(view))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render receipt")
	}
	return &dto.Receipt{
		Filename:    fmt.Sprintf("application-%s.%s", record.ID, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func (s *ApplicationService) find(ctx context.Context, claims *models.JWTClaims, id string) (*models.ApplicationRecord, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthenticated
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
	}
	record, err := s.repo.FindRecordForUser(ctx, id, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return nil, storeError(err)
	}
	return record, nil
}

func (s *ApplicationService) view(record *models.ApplicationRecord) dto.ApplicationView {
	if _, ok := record.Status(); !ok {
		s.logger.Warn("unrecognized application status",
			zap.String("application_id", record.ID),
			zap.String("status", record.StoredStatus.String))
	}
	return *newApplicationView(record.Application, &dto.ApplicationProfileSummary{
		FirstName:      record.ProfileFirstName,
		LastName:       record.ProfileLastName,
		Email:          record.ProfileEmail,
		University:     record.ProfileUniversity,
		Major:          record.ProfileMajor,
		GraduationYear: record.ProfileGraduationYear,
	})
}

func (s *ApplicationService) receipt(view dto.ApplicationView) export.Receipt {
	title := "Application Receipt"
	if s.hackathonName != "" {
		title = s.hackathonName + " - " + title
	}
	fields := []export.Field{
		{Label: "Application ID", Value: view.ID},
		{Label: "Submitted", Value: view.CreatedAt.UTC().Format("2006-01-02 15:04 MST")},
		{Label: "Status", Value: view.StatusLabel},
	}
	if p := view.Profile; p != nil {
		fields = append(fields,
			export.Field{Label: "Name", Value: strings.TrimSpace(p.FirstName + " " + p.LastName)},
			export.Field{Label: "Email", Value: p.Email},
			export.Field{Label: "University", Value: p.University},
			export.Field{Label: "Major", Value: p.Major},
			export.Field{Label: "Graduation Year", Value: strconv.Itoa(p.GraduationYear)},
		)
	}
	return export.Receipt{
		Title:  title,
		Fields: fields,
		Sections: []export.Field{
			{Label: "Why do you want to participate?", Value: view.WhyParticipate},
			{Label: "Project idea", Value: view.ProjectIdea},
			{Label: "AI/ML experience", Value: view.AIExperience},
		},
	}
}

func newApplicationView(app models.Application, summary *dto.ApplicationProfileSummary) *dto.ApplicationView {
	status, _ := app.Status()
	return &dto.ApplicationView{
		ID:             app.ID,
		CreatedAt:      app.CreatedAt,
		ProfileID:      app.ProfileID,
		Status:         string(status),
		StatusLabel:    status.Label(),
		WhyParticipate: app.WhyParticipate,
		ProjectIdea:    app.ProjectIdea,
		AIExperience:   app.AIExperience,
		Profile:        summary,
	}
}

func profileSummary(p *models.Profile) *dto.ApplicationProfileSummary {
	if p == nil {
		return nil
	}
	return &dto.ApplicationProfileSummary{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		University:     p.University,
		Major:          p.Major,
		GraduationYear: p.GraduationYear,
	}
}
