package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hackathon-portal-api/internal/dto"
	"github.com/noah-isme/hackathon-portal-api/internal/middleware"
	"github.com/noah-isme/hackathon-portal-api/internal/models"
	appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"
	"github.com/noah-isme/hackathon-portal-api/pkg/response"
)

type applicationService interface {
	List(ctx context.Context, claims *models.JWTClaims) ([]dto.ApplicationView, error)
	Get(ctx context.Context, claims *models.JWTClaims, id string) (*dto.ApplicationView, error)
	Receipt(ctx context.Context, claims *models.JWTClaims, id string, format dto.ReceiptFormat) (*dto.Receipt, error)
}

type submissionService interface {
	Submit(ctx context.Context, claims *models.JWTClaims, req dto.SubmitApplicationRequest) (*dto.ApplicationView, error)
}

type eligibilityService interface {
	Evaluate(ctx context.Context, claims *models.JWTClaims) (*models.Eligibility, error)
}

// ApplicationHandler serves application submission and the caller's application list.
type ApplicationHandler struct {
	applications applicationService
	submissions  submissionService
	eligibility  eligibilityService
}

// NewApplicationHandler constructs the handler.
func NewApplicationHandler(applications applicationService, submissions submissionService, eligibility eligibilityService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, submissions: submissions, eligibility: eligibility}
}

// RegisterRoutes mounts the application endpoints under api. Submission takes an
// optional session so the form checks answer before the session check does.
func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup, tokens middleware.TokenValidator) {
	api.POST("/applications", middleware.OptionalJWT(tokens), h.Submit)

	secured := api.Group("/applications", middleware.JWT(tokens))
	secured.GET("", h.List)
	secured.GET("/eligibility", h.Eligibility)
	secured.GET("/:id", h.Get)
	secured.GET("/:id/receipt", h.Receipt)
}

// List godoc
// @Summary List my applications
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	views, err := h.applications.List(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, map[string]interface{}{"total": len(views)})
}

// Submit godoc
// @Summary Submit application
// @Description Submits the caller's single hackathon application
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SubmitApplicationRequest true "Application"
// @Success 201 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid application payload"))
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	view, err := h.submissions.Submit(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Eligibility godoc
// @Summary Check eligibility
// @Description Whether the caller may submit right now
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/eligibility [get]
func (h *ApplicationHandler) Eligibility(c *gin.Context) {
	result, err := h.eligibility.Evaluate(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Get godoc
// @Summary Get one of my applications
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	view, err := h.applications.Get(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Receipt godoc
// @Summary Download application receipt
// @Tags Applications
// @Produce application/pdf
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param format query string false "pdf or csv" default(pdf)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/{id}/receipt [get]
func (h *ApplicationHandler) Receipt(c *gin.Context) {
	format := dto.ReceiptFormat(c.DefaultQuery("format", string(dto.ReceiptPDF)))
	receipt, err := h.applications.Receipt(c.Request.Context(), claimsFromContext(c), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, receipt.Filename, receipt.ContentType, receipt.Body)
}
