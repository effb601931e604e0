package report

import "context"

type ReportService interface {
	// GetComplianceReport recomputes daily summaries and compliance rows
	// for the requested range. Pure projection over the mark store: the
	// same marks always produce the same rows.
	GetComplianceReport(ctx context.Context, req ComplianceReportRequest) (ComplianceReportResponse, error)
}
