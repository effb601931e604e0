package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/domain/report"
	"github.com/andinaops/attendance-backend-go/internal/pkg/civiltime"
	"github.com/andinaops/attendance-backend-go/internal/pkg/validator"
	"github.com/andinaops/attendance-backend-go/internal/service/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarkRepo struct {
	marks []attendance.Mark

	gotFrom       time.Time
	gotTo         time.Time
	gotSiteID     *string
	gotPersonName *string
}

func (r *stubMarkRepo) Create(ctx context.Context, mark attendance.Mark) (attendance.Mark, error) {
	return mark, nil
}

func (r *stubMarkRepo) ListForReport(ctx context.Context, from, to time.Time, siteID, personName *string) ([]attendance.Mark, error) {
	r.gotFrom = from
	r.gotTo = to
	r.gotSiteID = siteID
	r.gotPersonName = personName
	return r.marks, nil
}

func newTestService(t *testing.T, repo *stubMarkRepo) report.ReportService {
	t.Helper()
	cal, err := civiltime.NewCalendar("America/La_Paz")
	require.NoError(t, err)

	return NewReportService(repo, cal, summary.NewAggregator(cal), NewCalculator(cal, testStartMin, testEndMin))
}

func TestGetComplianceReport_EndToEnd(t *testing.T) {
	cal, err := civiltime.NewCalendar("America/La_Paz")
	require.NoError(t, err)

	name := "Maria Quispe"
	siteName := "Sucursal Centro"
	mark := func(id string, typ attendance.MarkType, clock string) attendance.Mark {
		instant, err := time.ParseInLocation("2006-01-02 15:04", "2024-03-15 "+clock, cal.Location())
		require.NoError(t, err)
		return attendance.Mark{
			ID:         id,
			PersonID:   "p1",
			SiteID:     "site-1",
			Type:       typ,
			ObservedAt: instant.UTC(),
			PersonName: &name,
			SiteName:   &siteName,
		}
	}

	repo := &stubMarkRepo{marks: []attendance.Mark{
		mark("m1", attendance.MarkIn, "08:40"),
		mark("m2", attendance.MarkOut, "18:10"),
	}}
	svc := newTestService(t, repo)

	resp, err := svc.GetComplianceReport(context.Background(), report.ComplianceReportRequest{
		StartDate: "2024-03-15",
		EndDate:   "2024-03-15",
	})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	daily := resp.Rows[0]
	assert.Equal(t, report.RowDaily, daily.RowType)
	assert.Equal(t, "Maria Quispe", daily.PersonName)
	assert.Equal(t, "Sucursal Centro", daily.SiteName)
	assert.Equal(t, 570, daily.WorkedMinutes)
	assert.Equal(t, 10, daily.LateMinutes)
	assert.Equal(t, 20, daily.EarlyLeaveMinutes)
	assert.Equal(t, 95, daily.CompliancePct)
	assert.Equal(t, report.RowSubtotal, resp.Rows[1].RowType)
	assert.NotEmpty(t, resp.GeneratedAt)
}

func TestGetComplianceReport_FetchWindowCoversLocalDays(t *testing.T) {
	repo := &stubMarkRepo{}
	svc := newTestService(t, repo)

	_, err := svc.GetComplianceReport(context.Background(), report.ComplianceReportRequest{
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
	})
	require.NoError(t, err)

	// La Paz is UTC-4: local midnight of the 15th is 04:00Z, and the
	// exclusive upper bound is local midnight of the 17th.
	wantFrom := time.Date(2024, 3, 15, 4, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 3, 17, 4, 0, 0, 0, time.UTC)
	assert.True(t, repo.gotFrom.Equal(wantFrom), "from = %v", repo.gotFrom)
	assert.True(t, repo.gotTo.Equal(wantTo), "to = %v", repo.gotTo)
}

func TestGetComplianceReport_ForwardsFilters(t *testing.T) {
	repo := &stubMarkRepo{}
	svc := newTestService(t, repo)

	siteID := "site-1"
	personName := "Maria"
	_, err := svc.GetComplianceReport(context.Background(), report.ComplianceReportRequest{
		StartDate:  "2024-03-15",
		EndDate:    "2024-03-15",
		SiteID:     &siteID,
		PersonName: &personName,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotSiteID)
	assert.Equal(t, "site-1", *repo.gotSiteID)
	require.NotNil(t, repo.gotPersonName)
	assert.Equal(t, "Maria", *repo.gotPersonName)
}

func TestGetComplianceReport_InvalidRange(t *testing.T) {
	repo := &stubMarkRepo{}
	svc := newTestService(t, repo)

	_, err := svc.GetComplianceReport(context.Background(), report.ComplianceReportRequest{
		StartDate: "2024-03-15",
		EndDate:   "2024-03-10",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
