package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hackathon-portal-api/internal/dto"
	"github.com/noah-isme/hackathon-portal-api/internal/models"
	appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"
	"github.com/noah-isme/hackathon-portal-api/pkg/response"
)

type profileService interface {
	Get(ctx context.Context, claims *models.JWTClaims) (*models.Profile, error)
	Save(ctx context.Context, claims *models.JWTClaims, req dto.SaveProfileRequest) (*models.Profile, error)
	Completeness(ctx context.Context, claims *models.JWTClaims) (*models.ProfileCompleteness, error)
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Get godoc
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// Save godoc
// @Summary Save profile
// @Description Overwrites the editable profile fields. Email cannot be changed.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SaveProfileRequest true "Profile"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /profile [put]
func (h *ProfileHandler) Save(c *gin.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	profile, err := h.service.Save(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// Completeness godoc
// @Summary Check profile completeness
// @Description Reports which required fields are still missing
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /profile/completeness [get]
func (h *ProfileHandler) Completeness(c *gin.Context) {
	result, err := h.service.Completeness(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
