package dto

// WorkshopFilterParams carries the raw, unparsed statistics query values.
// Empty strings mean "not supplied".
type WorkshopFilterParams struct {
	FromDate      string
	ToDate        string
	WorkshopType  string
	State         string
	ShowWorkshops string
	Sort          string
}

// Merge returns p with every empty value taken from initial.
func (p WorkshopFilterParams) Merge(initial WorkshopFilterParams) WorkshopFilterParams {
	pick := func(value, fallback string) string {
		if value != "" {
			return value
		}
		return fallback
	}
	return WorkshopFilterParams{
		FromDate:      pick(p.FromDate, initial.FromDate),
		ToDate:        pick(p.ToDate, initial.ToDate),
		WorkshopType:  pick(p.WorkshopType, initial.WorkshopType),
		State:         pick(p.State, initial.State),
		ShowWorkshops: pick(p.ShowWorkshops, initial.ShowWorkshops),
		Sort:          pick(p.Sort, initial.Sort),
	}
}

// Client-facing field error messages.
const (
	MsgRequired      = "This field is required."
	MsgInvalidDate   = "Enter a valid date."
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	MsgInvalidBool   = "Enter a valid boolean."
)

// FieldError reports a single malformed or missing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the per-field error list returned to the client.
type FieldErrors []FieldError

// Add appends a field error.
func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Has reports whether field has at least one error.
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// ProposalRequest is the body of a workshop proposal submission.
type ProposalRequest struct {
	WorkshopTypeID string `json:"workshop_type_id" validate:"required,uuid"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	TermsAccepted  bool   `json:"tnc_accepted"`
}

// ProposalRejection lists each failed proposal rule.
type ProposalRejection struct {
	Reason  string `json:"reason"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProposalRejectionDetails is attached to a rejected proposal response.
type ProposalRejectionDetails struct {
	Reasons []ProposalRejection `json:"reasons"`
}

// ProposalWindowResponse exposes the selectable date range for the proposal date input.
type ProposalWindowResponse struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
	Today   string `json:"today"`
}

// WorkshopListItem is a statistics row.
type WorkshopListItem struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	WorkshopTypeID   string  `json:"workshop_type_id"`
	WorkshopTypeName string  `json:"workshop_type_name"`
	State            string  `json:"state"`
	StateName        string  `json:"state_name"`
	CoordinatorName  string  `json:"coordinator_name"`
	InstructorName   *string `json:"instructor_name,omitempty"`
	Status           string  `json:"status"`
}

// WorkshopListResponse bundles the listing with the criteria that produced it,
// so clients can pre-populate the filter form.
type WorkshopListResponse struct {
	Filter WorkshopFilterEcho `json:"filter"`
	Items  []WorkshopListItem `json:"items"`
}

// WorkshopFilterEcho is the normalised filter sent back to clients.
type WorkshopFilterEcho struct {
	FromDate      string  `json:"from_date"`
	ToDate        string  `json:"to_date"`
	WorkshopType  *string `json:"workshop_type,omitempty"`
	State         *string `json:"state,omitempty"`
	ShowWorkshops bool    `json:"show_workshops"`
	Sort          string  `json:"sort"`
	SortLabel     string  `json:"sort_label"`
}

// Error implements error so a non-empty list can be returned directly.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no field errors"
	}
	msg := e[0].Field + ": " + e[0].Message
	if len(e) > 1 {
		msg += " (and more)"
	}
	return msg
}
