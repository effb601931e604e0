package report

import (
	"time"

	"github.com/andinaops/attendance-backend-go/internal/pkg/validator"
)

// DailySummary is the per-person per-civil-day projection of raw marks.
// It is recomputed on every query and never persisted; days with zero
// marks produce no summary at all.
type DailySummary struct {
	PersonID   string
	PersonName string
	SiteID     string
	SiteName   string
	DayKey     string // YYYY-MM-DD in the policy timezone

	FirstIn  *time.Time
	LastOut  *time.Time
	LunchOut *time.Time
	LunchIn  *time.Time

	WorkedMinutes int
	LunchMinutes  int
	Present       bool
}

// ComplianceRow is one line of the compliance report: either one civil
// day of one person (RowDaily) or that person's range subtotal
// (RowSubtotal, sorted after their daily rows).
type ComplianceRow struct {
	RowType    RowType `json:"row_type"`
	PersonID   string  `json:"person_id"`
	PersonName string  `json:"person_name"`
	SiteName   string  `json:"site_name"`
	Date       string  `json:"date,omitempty"` // empty on subtotal rows

	FirstIn  *string `json:"first_in,omitempty"`  // HH:MM local
	LastOut  *string `json:"last_out,omitempty"`  // HH:MM local
	LunchOut *string `json:"lunch_out,omitempty"` // HH:MM local
	LunchIn  *string `json:"lunch_in,omitempty"`  // HH:MM local

	WorkedMinutes     int  `json:"worked_minutes"`
	ExpectedMinutes   int  `json:"expected_minutes"`
	LateMinutes       int  `json:"late_minutes"`
	EarlyLeaveMinutes int  `json:"early_leave_minutes"`
	Present           bool `json:"present"`
	CompliancePct     int  `json:"compliance_pct"`
}

type RowType string

const (
	RowDaily    RowType = "daily"
	RowSubtotal RowType = "subtotal"
)

type ComplianceReportRequest struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	SiteID     *string `json:"site_id,omitempty"`
	PersonName *string `json:"person_name,omitempty"`
}

func (r *ComplianceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		} else if end.Sub(start) > 366*24*time.Hour {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "date range must not exceed one year",
			})
		}
	}

	if r.SiteID != nil && validator.IsEmpty(*r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id must not be blank when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ComplianceReportResponse struct {
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	GeneratedAt string          `json:"generated_at"` // RFC3339
	Rows        []ComplianceRow `json:"rows"`
}
