package http

import (
	"net/http"

	"github.com/andinaops/attendance-backend-go/internal/domain/report"
	"github.com/andinaops/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := report.ComplianceReportRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if siteID := q.Get("site_id"); siteID != "" {
		req.SiteID = &siteID
	}
	if name := q.Get("name"); name != "" {
		req.PersonName = &name
	}

	result, err := h.reportService.GetComplianceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
