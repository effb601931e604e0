package compliance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/report"
	"github.com/andinaops/attendance-backend-go/internal/pkg/civiltime"
)

// Calculator scores daily summaries against the fixed work schedule and
// rolls them up into per-person subtotals. Sundays are rest days: a rest
// day contributes nothing to either side of the compliance ratio, even
// when someone worked it.
type Calculator struct {
	cal              *civiltime.Calendar
	scheduleStartMin int
	scheduleEndMin   int
}

func NewCalculator(cal *civiltime.Calendar, scheduleStartMin, scheduleEndMin int) *Calculator {
	return &Calculator{
		cal:              cal,
		scheduleStartMin: scheduleStartMin,
		scheduleEndMin:   scheduleEndMin,
	}
}

type personRollup struct {
	personID   string
	personName string
	siteName   string

	daily []report.ComplianceRow

	workedMinutes     int
	lateMinutes       int
	earlyLeaveMinutes int
	presentDays       int
}

// BuildRows turns daily summaries into the flat report row set: the daily
// rows of each person followed by that person's subtotal row, persons
// ordered by (site name, person name, person ID). dayKeys is the full
// inclusive range being reported; it drives the subtotal denominator, so
// absent days still count against compliance.
func (c *Calculator) BuildRows(summaries []report.DailySummary, dayKeys []string) ([]report.ComplianceRow, error) {
	nonRestDays := 0
	restDay := make(map[string]bool, len(dayKeys))
	for _, key := range dayKeys {
		midnight, err := c.cal.ParseDayKey(key)
		if err != nil {
			return nil, err
		}
		rest := c.cal.IsRestDay(midnight)
		restDay[key] = rest
		if !rest {
			nonRestDays++
		}
	}

	rollups := make(map[string]*personRollup)
	for i := range summaries {
		s := summaries[i]
		ru, ok := rollups[s.PersonID]
		if !ok {
			// The person's site for grouping is the site of their earliest
			// summary; aggregator output is already ordered by day.
			ru = &personRollup{
				personID:   s.PersonID,
				personName: s.PersonName,
				siteName:   s.SiteName,
			}
			rollups[s.PersonID] = ru
		}

		rest, known := restDay[s.DayKey]
		if !known {
			return nil, fmt.Errorf("summary day %s outside report range", s.DayKey)
		}

		row := c.dailyRow(s, rest)
		ru.daily = append(ru.daily, row)

		if rest {
			continue
		}
		ru.workedMinutes += row.WorkedMinutes
		ru.lateMinutes += row.LateMinutes
		ru.earlyLeaveMinutes += row.EarlyLeaveMinutes
		if row.Present {
			ru.presentDays++
		}
	}

	ordered := make([]*personRollup, 0, len(rollups))
	for _, ru := range rollups {
		ordered = append(ordered, ru)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].siteName != ordered[j].siteName {
			return ordered[i].siteName < ordered[j].siteName
		}
		if ordered[i].personName != ordered[j].personName {
			return ordered[i].personName < ordered[j].personName
		}
		return ordered[i].personID < ordered[j].personID
	})

	expectedPerDay := c.scheduleEndMin - c.scheduleStartMin
	rows := make([]report.ComplianceRow, 0, len(summaries)+len(ordered))
	for _, ru := range ordered {
		sort.Slice(ru.daily, func(i, j int) bool {
			return ru.daily[i].Date < ru.daily[j].Date
		})
		rows = append(rows, ru.daily...)

		expected := expectedPerDay * nonRestDays
		rows = append(rows, report.ComplianceRow{
			RowType:           report.RowSubtotal,
			PersonID:          ru.personID,
			PersonName:        ru.personName,
			SiteName:          ru.siteName,
			WorkedMinutes:     ru.workedMinutes,
			ExpectedMinutes:   expected,
			LateMinutes:       ru.lateMinutes,
			EarlyLeaveMinutes: ru.earlyLeaveMinutes,
			Present:           ru.presentDays > 0,
			CompliancePct:     compliancePct(ru.workedMinutes, expected),
		})
	}

	return rows, nil
}

func (c *Calculator) dailyRow(s report.DailySummary, rest bool) report.ComplianceRow {
	row := report.ComplianceRow{
		RowType:       report.RowDaily,
		PersonID:      s.PersonID,
		PersonName:    s.PersonName,
		SiteName:      s.SiteName,
		Date:          s.DayKey,
		FirstIn:       c.clock(s.FirstIn),
		LastOut:       c.clock(s.LastOut),
		LunchOut:      c.clock(s.LunchOut),
		LunchIn:       c.clock(s.LunchIn),
		WorkedMinutes: s.WorkedMinutes,
		Present:       s.Present,
	}

	if rest {
		// Working a rest day is neither late nor compliant nor owed.
		return row
	}

	row.ExpectedMinutes = c.scheduleEndMin - c.scheduleStartMin
	if s.FirstIn != nil {
		row.LateMinutes = max(0, c.cal.MinutesOfDay(*s.FirstIn)-c.scheduleStartMin)
	}
	if s.LastOut != nil {
		row.EarlyLeaveMinutes = max(0, c.scheduleEndMin-c.cal.MinutesOfDay(*s.LastOut))
	}
	row.CompliancePct = compliancePct(s.WorkedMinutes, row.ExpectedMinutes)

	return row
}

func (c *Calculator) clock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.In(c.cal.Location()).Format("15:04")
	return &v
}

// compliancePct is worked over expected, rounded, clamped to [0, 100].
func compliancePct(worked, expected int) int {
	if expected <= 0 {
		return 0
	}
	pct := int(math.Round(float64(worked) / float64(expected) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
