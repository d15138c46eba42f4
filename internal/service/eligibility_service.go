package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/hackathon-portal-api/internal/models"
	appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"
)

type eligibilityProfileReader interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
}

type eligibilityApplicationReader interface {
	FindByUserID(ctx context.Context, userID string) (*models.Application, error)
}

// EligibilityService evaluates the application gate against stored state.
type EligibilityService struct {
	profiles     eligibilityProfileReader
	applications eligibilityApplicationReader
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewEligibilityService constructs the service.
func NewEligibilityService(profiles eligibilityProfileReader, applications eligibilityApplicationReader, metrics *MetricsService, logger *zap.Logger) *EligibilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EligibilityService{profiles: profiles, applications: applications, metrics: metrics, logger: logger}
}

// Evaluate reports whether the session's user may submit an application right now.
func (s *EligibilityService) Evaluate(ctx context.Context, claims *models.JWTClaims) (*models.Eligibility, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthenticated
	}
	profile, existing, err := s.Snapshot(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, appErrors.ErrProfileNotFound
	}
	result := models.Decide(profile, existing)
	s.metrics.RecordEligibility(string(result.Decision))
	return &result, nil
}

// Snapshot fetches the stored profile and existing application concurrently. Either
// may be nil when absent. Failures are store errors.
func (s *EligibilityService) Snapshot(ctx context.Context, userID string) (*models.Profile, *models.Application, error) {
	var (
		profile  *models.Profile
		existing *models.Application
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.FindByUserID(gctx, userID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		a, err := s.applications.FindByUserID(gctx, userID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		existing = a
		return nil
	})
	err := g.Wait()
	s.metrics.ObserveDBQuery("eligibility_snapshot", time.Since(start))
	if err != nil {
		return nil, nil, storeError(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if existing != nil {
		if _, ok := existing.Status(); !ok {
			s.logger.Warn("unrecognized application status",
				zap.String("application_id", existing.ID),
				zap.String("status", existing.StoredStatus.String))
		}
	}
	return profile, existing, nil
}
