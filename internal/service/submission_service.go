package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hackathon-portal-api/internal/dto"
	"github.com/noah-isme/hackathon-portal-api/internal/models"
	"github.com/noah-isme/hackathon-portal-api/internal/repository"
	appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"
	"github.com/noah-isme/hackathon-portal-api/pkg/mail"
)

type applicationWriter interface {
	Create(ctx context.Context, app *models.Application) error
}

type submissionStateReader interface {
	Snapshot(ctx context.Context, userID string) (*models.Profile, *models.Application, error)
}

type submissionLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key, token string) error
}

type auditRepository interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// SubmissionConfig tunes the submission workflow.
type SubmissionConfig struct {
	LockTTL       time.Duration
	MailTimeout   time.Duration
	HackathonName string
	PortalURL     string
}

// SubmissionService accepts application submissions.
type SubmissionService struct {
	applications applicationWriter
	state        submissionStateReader
	locks        submissionLocker
	audit        auditRepository
	mailer       mail.Sender
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
	config       SubmissionConfig
}

// NewSubmissionService constructs the service.
func NewSubmissionService(
	applications applicationWriter,
	state submissionStateReader,
	locks submissionLocker,
	audit auditRepository,
	mailer mail.Sender,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
	config SubmissionConfig,
) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if mailer == nil {
		mailer = mail.NopSender{}
	}
	if config.LockTTL <= 0 {
		config.LockTTL = 15 * time.Second
	}
	if config.MailTimeout <= 0 {
		config.MailTimeout = 5 * time.Second
	}
	return &SubmissionService{
		applications: applications,
		state:        state,
		locks:        locks,
		audit:        audit,
		mailer:       mailer,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
		config:       config,
	}
}

// Submit validates and stores the caller's application. Checks run in a fixed order
// and the first failure is returned. Nothing is written unless every check passes.
func (s *SubmissionService) Submit(ctx context.Context, claims *models.JWTClaims, req dto.SubmitApplicationRequest) (*dto.ApplicationView, error) {
	if !req.Profile.ToProfile().IsComplete() {
		s.metrics.RecordSubmission(OutcomeProfileIncomplete)
		return nil, appErrors.ErrProfileIncomplete
	}
	if blank(req.Essay1) || blank(req.Essay2) || blank(req.Essay3) {
		s.metrics.RecordSubmission(OutcomeEssaysIncomplete)
		return nil, appErrors.ErrEssaysIncomplete
	}
	if claims == nil {
		s.metrics.RecordSubmission(OutcomeUnauthenticated)
		return nil, appErrors.ErrUnauthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}

	profile, existing, err := s.state.Snapshot(ctx, claims.UserID)
	if err != nil {
		s.metrics.RecordSubmission(OutcomeStoreError)
		return nil, err
	}
	if profile == nil {
		s.metrics.RecordSubmission(OutcomeProfileMissing)
		return nil, appErrors.ErrProfileRecordMissing
	}
	if decision := models.Decide(profile, existing); !decision.Allowed() {
		s.metrics.RecordSubmission(outcomeFor(decision.Decision))
		return nil, decision.Err()
	}

	lockKey := "submission:" + claims.UserID
	token, acquired, err := s.locks.Acquire(ctx, lockKey, s.config.LockTTL)
	switch {
	case err != nil:
		s.logger.Warn("submission lock unavailable", zap.String("user_id", claims.UserID), zap.Error(err))
	case !acquired:
		s.metrics.RecordLockContention()
		s.metrics.RecordSubmission(OutcomeAlreadyApplied)
		return nil, appErrors.Clone(appErrors.ErrAlreadyApplied, "an application submission is already in progress")
	default:
		defer func() {
			if err := s.locks.Release(context.WithoutCancel(ctx), lockKey, token); err != nil {
				s.logger.Warn("failed to release submission lock", zap.String("user_id", claims.UserID), zap.Error(err))
			}
		}()
	}

	app := &models.Application{
		UserID:         claims.UserID,
		ProfileID:      profile.ID,
		WhyParticipate: req.Essay1,
		ProjectIdea:    req.Essay2,
		AIExperience:   req.Essay3,
	}
	start := time.Now()
	err = s.applications.Create(ctx, app)
	s.metrics.ObserveDBQuery("application_insert", time.Since(start))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.metrics.RecordSubmission(OutcomeAlreadyApplied)
			return nil, appErrors.ErrAlreadyApplied
		}
		s.metrics.RecordSubmission(OutcomeStoreError)
		s.logger.Error("failed to store application", zap.String("user_id", claims.UserID), zap.Error(err))
		return nil, storeError(err)
	}

	s.metrics.RecordSubmission(OutcomeSubmitted)
	s.logger.Info("application submitted", zap.String("user_id", claims.UserID), zap.String("application_id", app.ID))

	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &claims.UserID,
		Action:     models.AuditActionApplicationSubmit,
		Resource:   "application",
		ResourceID: &app.ID,
		NewValues:  []byte(fmt.Sprintf(`{"profileId":%q}`, profile.ID)),
		IPAddress:  req.IP,
		UserAgent:  req.UserAgent,
	}); err != nil {
		s.logger.Warn("failed to record submission audit log", zap.Error(err))
	}

	s.sendConfirmation(ctx, profile, app)

	return newApplicationView(*app, profileSummary(profile)), nil
}

func (s *SubmissionService) sendConfirmation(ctx context.Context, profile *models.Profile, app *models.Application) {
	name := strings.TrimSpace(profile.FirstName + " " + profile.LastName)
	msg := mail.Message{
		ToEmail: profile.Email,
		ToName:  name,
		Subject: fmt.Sprintf("We received your %s application", s.config.HackathonName),
		PlainText: fmt.Sprintf("Hi %s,\n\nThanks for applying to %s. Your application (%s) is now %s.\nYou can follow its status at %s.\n",
			profile.FirstName, s.config.HackathonName, app.ID, models.LabelPending, s.config.PortalURL),
	}
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.MailTimeout)
	defer cancel()
	if err := s.mailer.Send(mailCtx, msg); err != nil {
		s.logger.Warn("failed to send submission confirmation", zap.String("application_id", app.ID), zap.Error(err))
	}
}

func outcomeFor(decision models.EligibilityDecision) string {
	if decision == models.EligibilityAlreadyApplied {
		return OutcomeAlreadyApplied
	}
	return OutcomeProfileIncomplete
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
