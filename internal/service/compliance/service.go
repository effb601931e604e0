package compliance

import (
	"context"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/domain/report"
	"github.com/andinaops/attendance-backend-go/internal/pkg/civiltime"
	"github.com/andinaops/attendance-backend-go/internal/service/summary"
)

// ReportServiceImpl recomputes the compliance report from raw marks on
// every call. Nothing is cached or persisted; the mark store is the only
// source of truth.
type ReportServiceImpl struct {
	markRepo   attendance.MarkRepository
	cal        *civiltime.Calendar
	aggregator *summary.Aggregator
	calculator *Calculator
	now        func() time.Time
}

func NewReportService(
	markRepo attendance.MarkRepository,
	cal *civiltime.Calendar,
	aggregator *summary.Aggregator,
	calculator *Calculator,
) report.ReportService {
	return &ReportServiceImpl{
		markRepo:   markRepo,
		cal:        cal,
		aggregator: aggregator,
		calculator: calculator,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetComplianceReport implements report.ReportService.
func (s *ReportServiceImpl) GetComplianceReport(ctx context.Context, req report.ComplianceReportRequest) (report.ComplianceReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ComplianceReportResponse{}, err
	}

	// The fetch window is the UTC span of the local civil-day range:
	// local midnight of the start day up to (exclusive) local midnight
	// after the end day.
	startMidnight, err := s.cal.ParseDayKey(req.StartDate)
	if err != nil {
		return report.ComplianceReportResponse{}, err
	}
	endMidnight, err := s.cal.ParseDayKey(req.EndDate)
	if err != nil {
		return report.ComplianceReportResponse{}, err
	}
	from := startMidnight.UTC()
	to := endMidnight.AddDate(0, 0, 1).UTC()

	marks, err := s.markRepo.ListForReport(ctx, from, to, req.SiteID, req.PersonName)
	if err != nil {
		return report.ComplianceReportResponse{}, err
	}

	summaries := s.aggregator.BuildDailySummaries(marks)

	dayKeys, err := s.cal.DayKeys(req.StartDate, req.EndDate)
	if err != nil {
		return report.ComplianceReportResponse{}, err
	}

	rows, err := s.calculator.BuildRows(summaries, dayKeys)
	if err != nil {
		return report.ComplianceReportResponse{}, err
	}

	return report.ComplianceReportResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: s.now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}
