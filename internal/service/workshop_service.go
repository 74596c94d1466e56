package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/workshop-portal/stats-api/internal/dto"
	"github.com/workshop-portal/stats-api/internal/models"
	"github.com/workshop-portal/stats-api/pkg/export"
	appErrors "github.com/workshop-portal/stats-api/pkg/errors"
)

type workshopRepository interface {
	List(ctx context.Context, filter models.WorkshopFilter) ([]models.Workshop, int, error)
	Summary(ctx context.Context, filter models.WorkshopFilter) (*models.WorkshopSummary, error)
	Create(ctx context.Context, workshop *models.Workshop) error
}

type workshopTypeLookup interface {
	Get(ctx context.Context, id string) (*models.WorkshopType, error)
}

// WorkshopServiceConfig tunes statistics listings and proposal rules.
type WorkshopServiceConfig struct {
	Location         *time.Location
	Rules            ProposalRules
	DefaultRangeDays int
	PageLimit        int
	SummaryCacheTTL  time.Duration
}

// WorkshopService serves the statistics listing and accepts workshop proposals.
type WorkshopService struct {
	repo      workshopRepository
	types     workshopTypeLookup
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       WorkshopServiceConfig
	now       func() time.Time
}

// NewWorkshopService constructs the service.
func NewWorkshopService(repo workshopRepository, types workshopTypeLookup, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg WorkshopServiceConfig) *WorkshopService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Rules == (ProposalRules{}) {
		cfg.Rules = DefaultProposalRules
	}
	if cfg.DefaultRangeDays <= 0 {
		cfg.DefaultRangeDays = 15
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 200
	}
	return &WorkshopService{
		repo:      repo,
		types:     types,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Today returns the current calendar date in the workshop timezone.
func (s *WorkshopService) Today() time.Time {
	return models.DateOf(s.now().In(s.cfg.Location))
}

// InitialFilter returns the values a statistics query falls back to when a
// parameter is not supplied.
func (s *WorkshopService) InitialFilter() dto.WorkshopFilterParams {
	today := s.Today()
	return dto.WorkshopFilterParams{
		FromDate: today.Format(models.DateLayout),
		ToDate:   models.AddDays(today, s.cfg.DefaultRangeDays).Format(models.DateLayout),
		Sort:     string(models.SortDateAscending),
	}
}

// Criteria merges raw with the initial values and builds FilterCriteria.
func (s *WorkshopService) Criteria(raw dto.WorkshopFilterParams) (models.FilterCriteria, error) {
	criteria, err := BuildFilterCriteria(raw.Merge(s.InitialFilter()))
	if err != nil {
		var fieldErrs dto.FieldErrors
		if errors.As(err, &fieldErrs) {
			return criteria, appErrors.WithDetails(appErrors.ErrFieldErrors, fieldErrs)
		}
		return criteria, err
	}
	return criteria, nil
}

// List returns accepted workshops matching criteria.
func (s *WorkshopService) List(ctx context.Context, criteria models.FilterCriteria, claims *models.JWTClaims, page, pageSize int) (*dto.WorkshopListResponse, *models.Pagination, error) {
	filter, err := s.repositoryFilter(criteria, claims)
	if err != nil {
		return nil, nil, err
	}
	filter.Page, filter.PageSize = s.normalisePage(page, pageSize)

	start := time.Now()
	workshops, total, err := s.repo.List(ctx, filter)
	s.metrics.ObserveDBQuery("workshops_list", time.Since(start))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list workshops")
	}

	resp := &dto.WorkshopListResponse{
		Filter: echoFilter(criteria),
		Items:  make([]dto.WorkshopListItem, 0, len(workshops)),
	}
	for _, w := range workshops {
		resp.Items = append(resp.Items, toListItem(w))
	}
	return resp, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// Summary counts accepted workshops matching criteria per state and per type.
// Summaries for public criteria are cached; per-user summaries are not.
func (s *WorkshopService) Summary(ctx context.Context, criteria models.FilterCriteria, claims *models.JWTClaims) (*models.WorkshopSummary, error) {
	filter, err := s.repositoryFilter(criteria, claims)
	if err != nil {
		return nil, err
	}

	cacheable := filter.OwnerID == ""
	key := summaryCacheKey(criteria)
	if cacheable {
		var cached models.WorkshopSummary
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	start := time.Now()
	summary, err := s.repo.Summary(ctx, filter)
	s.metrics.ObserveDBQuery("workshops_summary", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to summarise workshops")
	}
	for i := range summary.ByState {
		summary.ByState[i].Label = models.StateCode(summary.ByState[i].Key).Name()
	}

	if cacheable {
		_ = s.cache.Set(ctx, key, summary, s.cfg.SummaryCacheTTL)
	}
	return summary, nil
}

// ExportResult is a rendered export document.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Export renders every workshop matching criteria, up to the page limit, in format.
func (s *WorkshopService) Export(ctx context.Context, criteria models.FilterCriteria, claims *models.JWTClaims, format export.Format) (*ExportResult, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	listing, _, err := s.List(ctx, criteria, claims, 1, s.cfg.PageLimit)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Title: fmt.Sprintf("Workshops %s to %s",
			criteria.FromDate.Format(models.DateLayout), criteria.ToDate.Format(models.DateLayout)),
		Headers: []string{"Date", "Workshop Type", "State", "Coordinator", "Instructor"},
		Rows:    make([]map[string]string, 0, len(listing.Items)),
	}
	for _, item := range listing.Items {
		instructor := ""
		if item.InstructorName != nil {
			instructor = *item.InstructorName
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":          item.Date,
			"Workshop Type": item.WorkshopTypeName,
			"State":         item.StateName,
			"Coordinator":   item.CoordinatorName,
			"Instructor":    instructor,
		})
	}

	body, err := renderer.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportResult{
		Filename: fmt.Sprintf("workshops_%s_%s.%s",
			criteria.FromDate.Format("20060102"), criteria.ToDate.Format("20060102"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

// ProposalWindow returns the date range a proposal submitted today may target.
func (s *WorkshopService) ProposalWindow() dto.ProposalWindowResponse {
	today := s.Today()
	window := s.cfg.Rules.Window(today)
	return dto.ProposalWindowResponse{
		MinDate: window.MinDate.Format(models.DateLayout),
		MaxDate: window.MaxDate.Format(models.DateLayout),
		Today:   today.Format(models.DateLayout),
	}
}

// Propose validates a proposal and records it as a pending workshop owned by
// the requesting coordinator.
func (s *WorkshopService) Propose(ctx context.Context, req dto.ProposalRequest, claims *models.JWTClaims) (*models.Workshop, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if claims.Role != models.RoleCoordinator {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only coordinators can propose workshops")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, proposalFieldErrors(validationFieldErrors(err), req)
	}
	proposed, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, proposalFieldErrors(dto.FieldErrors{{Field: "date", Message: dto.MsgInvalidDate}}, req)
	}

	input := models.ProposalInput{
		WorkshopTypeID: strings.ToLower(req.WorkshopTypeID),
		ProposedDate:   models.DateOf(proposed),
		TermsAccepted:  req.TermsAccepted,
	}
	if err := s.cfg.Rules.Validate(input, s.Today()); err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			s.metrics.RecordProposal(rejection.Reasons...)
			s.logger.Info("workshop proposal rejected",
				zap.String("coordinator_id", claims.UserID),
				zap.String("date", req.Date),
				zap.Error(rejection))
			return nil, appErrors.WithDetails(appErrors.ErrProposalRejected, rejectionDetails(rejection))
		}
		return nil, err
	}

	workshopType, err := s.types.Get(ctx, input.WorkshopTypeID)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.WithDetails(appErrors.ErrFieldErrors, dto.FieldErrors{{Field: "workshop_type_id", Message: dto.MsgInvalidChoice}})
		}
		return nil, err
	}

	workshop := &models.Workshop{
		WorkshopTypeID:   workshopType.ID,
		WorkshopTypeName: workshopType.Name,
		CoordinatorID:    claims.UserID,
		CoordinatorName:  claims.FullName,
		Date:             input.ProposedDate,
		Status:           models.WorkshopStatusPending,
		TermsAccepted:    input.TermsAccepted,
	}
	if err := s.repo.Create(ctx, workshop); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save workshop proposal")
	}

	s.metrics.RecordProposal()
	s.logger.Info("workshop proposal accepted",
		zap.String("workshop_id", workshop.ID),
		zap.String("coordinator_id", claims.UserID),
		zap.String("workshop_type_id", workshop.WorkshopTypeID),
		zap.Time("date", workshop.Date))
	return workshop, nil
}

func (s *WorkshopService) repositoryFilter(criteria models.FilterCriteria, claims *models.JWTClaims) (models.WorkshopFilter, error) {
	filter := models.WorkshopFilter{
		FilterCriteria: criteria,
		Statuses:       []models.WorkshopStatus{models.WorkshopStatusAccepted},
	}
	if criteria.ShowMine {
		if claims == nil {
			return filter, appErrors.Clone(appErrors.ErrUnauthorized, "sign in to show your workshops")
		}
		filter.OwnerID = claims.UserID
	}
	return filter, nil
}

func (s *WorkshopService) normalisePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > s.cfg.PageLimit {
		pageSize = s.cfg.PageLimit
	}
	return page, pageSize
}

func summaryCacheKey(c models.FilterCriteria) string {
	workshopType, state := "*", "*"
	if c.WorkshopTypeID != nil {
		workshopType = *c.WorkshopTypeID
	}
	if c.State != nil {
		state = string(*c.State)
	}
	return fmt.Sprintf("workshops:summary:%s:%s:%s:%s",
		c.FromDate.Format(models.DateLayout), c.ToDate.Format(models.DateLayout), workshopType, state)
}

func echoFilter(c models.FilterCriteria) dto.WorkshopFilterEcho {
	echo := dto.WorkshopFilterEcho{
		FromDate:      c.FromDate.Format(models.DateLayout),
		ToDate:        c.ToDate.Format(models.DateLayout),
		WorkshopType:  c.WorkshopTypeID,
		ShowWorkshops: c.ShowMine,
		Sort:          string(c.Sort),
		SortLabel:     c.Sort.Label(),
	}
	if c.State != nil {
		state := string(*c.State)
		echo.State = &state
	}
	return echo
}

func toListItem(w models.Workshop) dto.WorkshopListItem {
	return dto.WorkshopListItem{
		ID:               w.ID,
		Date:             w.Date.Format(models.DateLayout),
		WorkshopTypeID:   w.WorkshopTypeID,
		WorkshopTypeName: w.WorkshopTypeName,
		State:            string(w.State),
		StateName:        w.State.Name(),
		CoordinatorName:  w.CoordinatorName,
		InstructorName:   w.InstructorName,
		Status:           string(w.Status),
	}
}

func rejectionDetails(rejection *RejectionError) dto.ProposalRejectionDetails {
	messages := rejection.Messages()
	out := make([]dto.ProposalRejection, len(rejection.Reasons))
	for i, reason := range rejection.Reasons {
		out[i] = dto.ProposalRejection{Reason: string(reason), Field: reason.Field(), Message: messages[i]}
	}
	return dto.ProposalRejectionDetails{Reasons: out}
}

// proposalFieldErrors reports malformed fields together with an unaccepted
// terms flag, so the terms error is never hidden behind a date error.
func proposalFieldErrors(errs dto.FieldErrors, req dto.ProposalRequest) *appErrors.Error {
	field := models.RejectionTermsNotAccepted.Field()
	if !req.TermsAccepted && !errs.Has(field) {
		errs.Add(field, models.RejectionTermsNotAccepted.Message())
	}
	return appErrors.WithDetails(appErrors.ErrFieldErrors, errs)
}

// validationFieldErrors maps validator tag failures onto client field errors.
func validationFieldErrors(err error) dto.FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dto.FieldErrors{{Field: "body", Message: err.Error()}}
	}
	var out dto.FieldErrors
	for _, fe := range verrs {
		field := jsonFieldNames[fe.Field()]
		if field == "" {
			field = strings.ToLower(fe.Field())
		}
		switch fe.Tag() {
		case "required":
			out.Add(field, dto.MsgRequired)
		case "datetime":
			out.Add(field, dto.MsgInvalidDate)
		default:
			out.Add(field, dto.MsgInvalidChoice)
		}
	}
	return out
}

var jsonFieldNames = map[string]string{
	"WorkshopTypeID": "workshop_type_id",
	"Date":           "date",
	"TermsAccepted":  "tnc_accepted",
}
