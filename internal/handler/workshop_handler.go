package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workshop-portal/stats-api/internal/dto"
	"github.com/workshop-portal/stats-api/internal/models"
	"github.com/workshop-portal/stats-api/internal/service"
	"github.com/workshop-portal/stats-api/pkg/export"
	appErrors "github.com/workshop-portal/stats-api/pkg/errors"
	"github.com/workshop-portal/stats-api/pkg/response"
)

type workshopService interface {
	Criteria(raw dto.WorkshopFilterParams) (models.FilterCriteria, error)
	List(ctx context.Context, criteria models.FilterCriteria, claims *models.JWTClaims, page, pageSize int) (*dto.WorkshopListResponse, *models.Pagination, error)
	Summary(ctx context.Context, criteria models.FilterCriteria, claims *models.JWTClaims) (*models.WorkshopSummary, error)
	Export(ctx context.Context, criteria models.FilterCriteria, claims *models.JWTClaims, format export.Format) (*service.ExportResult, error)
	ProposalWindow() dto.ProposalWindowResponse
	Propose(ctx context.Context, req dto.ProposalRequest, claims *models.JWTClaims) (*models.Workshop, error)
}

// WorkshopHandler exposes workshop statistics and proposal endpoints.
type WorkshopHandler struct {
	service workshopService
}

// NewWorkshopHandler builds a new handler.
func NewWorkshopHandler(service workshopService) *WorkshopHandler {
	return &WorkshopHandler{service: service}
}

// List godoc
// @Summary List accepted workshops
// @Tags Statistics
// @Produce json
// @Param from_date query string false "Start date (YYYY-MM-DD), defaults to today"
// @Param to_date query string false "End date (YYYY-MM-DD), defaults to today + 15 days"
// @Param workshop_type query string false "Workshop type ID"
// @Param state query string false "State code, e.g. IN-MH"
// @Param show_workshops query bool false "Only workshops of the signed-in user"
// @Param sort query string false "date or -date"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /statistics/workshops [get]
func (h *WorkshopHandler) List(c *gin.Context) {
	criteria, ok := h.criteria(c)
	if !ok {
		return
	}
	result, pagination, err := h.service.List(c.Request.Context(), criteria, claimsFromContext(c),
		queryInt(c, "page", "page"), queryInt(c, "page_size", "pageSize"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, pagination)
}

// Summary godoc
// @Summary Count accepted workshops per state and type
// @Tags Statistics
// @Produce json
// @Param from_date query string false "Start date (YYYY-MM-DD)"
// @Param to_date query string false "End date (YYYY-MM-DD)"
// @Param workshop_type query string false "Workshop type ID"
// @Param state query string false "State code"
// @Param show_workshops query bool false "Only workshops of the signed-in user"
// @Success 200 {object} response.Envelope
// @Router /statistics/workshops/summary [get]
func (h *WorkshopHandler) Summary(c *gin.Context) {
	criteria, ok := h.criteria(c)
	if !ok {
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), criteria, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Export godoc
// @Summary Export accepted workshops
// @Tags Statistics
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /statistics/workshops/export [get]
func (h *WorkshopHandler) Export(c *gin.Context) {
	criteria, ok := h.criteria(c)
	if !ok {
		return
	}
	format := export.Format(strings.ToLower(c.DefaultQuery("format", string(export.FormatCSV))))
	result, err := h.service.Export(c.Request.Context(), criteria, claimsFromContext(c), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, result.Filename, result.ContentType, result.Body)
}

// ProposalWindow godoc
// @Summary Date range a proposal may target today
// @Tags Proposals
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /workshops/proposals/window [get]
func (h *WorkshopHandler) ProposalWindow(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ProposalWindow(), nil)
}

// Propose godoc
// @Summary Propose a workshop
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ProposalRequest true "Proposal payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /workshops/proposals [post]
func (h *WorkshopHandler) Propose(c *gin.Context) {
	var req dto.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.WithDetails(appErrors.ErrFieldErrors, bindFieldErrors(err)))
		return
	}
	workshop, err := h.service.Propose(c.Request.Context(), req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, workshop)
}

func (h *WorkshopHandler) criteria(c *gin.Context) (models.FilterCriteria, bool) {
	criteria, err := h.service.Criteria(filterParams(c))
	if err != nil {
		response.Error(c, err)
		return criteria, false
	}
	return criteria, true
}

// bindFieldErrors maps JSON decoding failures onto the proposal field they concern.
func bindFieldErrors(err error) dto.FieldErrors {
	var errs dto.FieldErrors
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		errs.Add("body", "Submit a JSON object.")
		return errs
	}
	switch typeErr.Field {
	case "date":
		errs.Add(typeErr.Field, dto.MsgInvalidDate)
	case "tnc_accepted":
		errs.Add(typeErr.Field, dto.MsgInvalidBool)
	default:
		errs.Add(typeErr.Field, dto.MsgInvalidChoice)
	}
	return errs
}

func filterParams(c *gin.Context) dto.WorkshopFilterParams {
	return dto.WorkshopFilterParams{
		FromDate:      pickQuery(c, "from_date", "fromDate"),
		ToDate:        pickQuery(c, "to_date", "toDate"),
		WorkshopType:  pickQuery(c, "workshop_type", "workshopType"),
		State:         c.Query("state"),
		ShowWorkshops: pickQuery(c, "show_workshops", "showMine"),
		Sort:          c.Query("sort"),
	}
}
