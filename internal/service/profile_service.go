package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hackathon-portal-api/internal/dto"
	"github.com/noah-isme/hackathon-portal-api/internal/models"
	appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"
)

type profileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

type profileAccountRepository interface {
	UpdateName(ctx context.Context, id, firstName, lastName string) error
}

// ProfileConfig carries profile save defaults.
type ProfileConfig struct {
	DefaultGraduationYear int
}

// ProfileService reads, saves and checks applicant profiles.
type ProfileService struct {
	profiles  profileRepository
	accounts  profileAccountRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    ProfileConfig
}

// NewProfileService constructs the service.
func NewProfileService(profiles profileRepository, accounts profileAccountRepository, validate *validator.Validate, logger *zap.Logger, config ProfileConfig) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.DefaultGraduationYear <= 0 {
		config.DefaultGraduationYear = 2025
	}
	return &ProfileService{profiles: profiles, accounts: accounts, validator: validate, logger: logger, config: config}
}

// Get returns the caller's profile. Blank names are filled from the session identity.
func (s *ProfileService) Get(ctx context.Context, claims *models.JWTClaims) (*models.Profile, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthenticated
	}
	profile, err := s.load(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(profile.FirstName) == "" {
		profile.FirstName = claims.FirstName
	}
	if strings.TrimSpace(profile.LastName) == "" {
		profile.LastName = claims.LastName
	}
	return profile, nil
}

// Save overwrites the editable profile fields. Email always stays as stored.
func (s *ProfileService) Save(ctx context.Context, claims *models.JWTClaims, req dto.SaveProfileRequest) (*models.Profile, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	profile, err := s.load(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = strings.TrimSpace(req.FirstName)
	profile.LastName = strings.TrimSpace(req.LastName)
	profile.University = strings.TrimSpace(req.University)
	profile.Major = strings.TrimSpace(req.Major)
	profile.GraduationYear = req.GraduationYear
	if profile.GraduationYear == 0 {
		profile.GraduationYear = s.config.DefaultGraduationYear
	}
	profile.Github = strings.TrimSpace(req.Github)
	profile.Linkedin = strings.TrimSpace(req.Linkedin)
	profile.Portfolio = strings.TrimSpace(req.Portfolio)
	profile.Phone = strings.TrimSpace(req.Phone)
	profile.Twitter = strings.TrimSpace(req.Twitter)
	profile.Instagram = strings.TrimSpace(req.Instagram)

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save profile")
	}

	if profile.FirstName != "" && profile.LastName != "" {
		if err := s.accounts.UpdateName(ctx, claims.UserID, profile.FirstName, profile.LastName); err != nil {
			s.logger.Warn("failed to sync account name", zap.String("user_id", claims.UserID), zap.Error(err))
		}
	}

	return profile, nil
}

// Completeness checks the stored profile. A missing session or profile row reports
// ProfileNotFound.
func (s *ProfileService) Completeness(ctx context.Context, claims *models.JWTClaims) (*models.ProfileCompleteness, error) {
	if claims == nil {
		return nil, appErrors.ErrProfileNotFound
	}
	profile, err := s.load(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	result := models.NewProfileCompleteness(profile)
	return &result, nil
}

func (s *ProfileService) load(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return profile, nil
}
