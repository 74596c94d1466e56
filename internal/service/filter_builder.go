package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workshop-portal/stats-api/internal/dto"
	"github.com/workshop-portal/stats-api/internal/models"
)

// dateInputFormats mirrors the date formats accepted by the HTML date input
// and the legacy US-style forms.
var dateInputFormats = []string{models.DateLayout, "01/02/2006", "01/02/06"}

// BuildFilterCriteria coerces raw statistics query values into FilterCriteria.
// Every malformed field contributes its own entry to the returned dto.FieldErrors.
// No cross-field checks are made: a from_date after to_date is passed through.
func BuildFilterCriteria(raw dto.WorkshopFilterParams) (models.FilterCriteria, error) {
	var (
		criteria models.FilterCriteria
		errs     dto.FieldErrors
	)

	if date, msg := parseRequiredDate(raw.FromDate); msg != "" {
		errs.Add("from_date", msg)
	} else {
		criteria.FromDate = date
	}

	if date, msg := parseRequiredDate(raw.ToDate); msg != "" {
		errs.Add("to_date", msg)
	} else {
		criteria.ToDate = date
	}

	if value := strings.TrimSpace(raw.WorkshopType); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			errs.Add("workshop_type", dto.MsgInvalidChoice)
		} else {
			idStr := id.String()
			criteria.WorkshopTypeID = &idStr
		}
	}

	if value := strings.TrimSpace(raw.State); value != "" {
		code, ok := models.ParseStateCode(value)
		if !ok {
			errs.Add("state", dto.MsgInvalidChoice)
		} else {
			criteria.State = &code
		}
	}

	show, ok := parseCheckbox(raw.ShowWorkshops)
	if !ok {
		errs.Add("show_workshops", dto.MsgInvalidBool)
	}
	criteria.ShowMine = show

	switch sort := models.SortOrder(strings.TrimSpace(raw.Sort)); sort {
	case "":
		criteria.Sort = models.SortDateAscending
	case models.SortDateAscending, models.SortDateDescending:
		criteria.Sort = sort
	default:
		errs.Add("sort", dto.MsgInvalidChoice)
	}

	if len(errs) > 0 {
		return criteria, errs
	}
	return criteria, nil
}

func parseRequiredDate(raw string) (time.Time, string) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, dto.MsgRequired
	}
	for _, layout := range dateInputFormats {
		if parsed, err := time.Parse(layout, value); err == nil {
			return models.DateOf(parsed), ""
		}
	}
	return time.Time{}, dto.MsgInvalidDate
}

// parseCheckbox accepts the values browsers and API clients send for a
// checkbox. An absent value is false.
func parseCheckbox(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "off", "no":
		return false, true
	case "1", "true", "on", "yes":
		return true, true
	default:
		return false, false
	}
}
