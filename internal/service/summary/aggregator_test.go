package summary

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/pkg/civiltime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAggregator(t *testing.T) (*Aggregator, *civiltime.Calendar) {
	t.Helper()
	cal, err := civiltime.NewCalendar("America/La_Paz")
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	return NewAggregator(cal), cal
}

// markAt builds a mark at local La Paz clock time on the given date.
func markAt(t *testing.T, cal *civiltime.Calendar, id, personID string, typ attendance.MarkType, date, clock string) attendance.Mark {
	t.Helper()
	instant, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, cal.Location())
	if err != nil {
		t.Fatalf("parse %s %s: %v", date, clock, err)
	}
	return attendance.Mark{
		ID:         id,
		PersonID:   personID,
		SiteID:     "site-1",
		Type:       typ,
		ObservedAt: instant.UTC(),
	}
}

func TestBuildDailySummaries_TypedInOut(t *testing.T) {
	agg, cal := testAggregator(t)
	marks := []attendance.Mark{
		markAt(t, cal, "m2", "p1", attendance.MarkOut, "2024-03-15", "18:10"),
		markAt(t, cal, "m1", "p1", attendance.MarkIn, "2024-03-15", "08:40"),
	}

	summaries := agg.BuildDailySummaries(marks)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "2024-03-15", s.DayKey)
	assert.Equal(t, 570, s.WorkedMinutes)
	assert.Equal(t, 0, s.LunchMinutes)
	assert.True(t, s.Present)
	assert.Equal(t, 520, cal.MinutesOfDay(*s.FirstIn)) // 08:40
	assert.Equal(t, 1090, cal.MinutesOfDay(*s.LastOut)) // 18:10
}

func TestBuildDailySummaries_LunchDeduction(t *testing.T) {
	agg, cal := testAggregator(t)
	marks := []attendance.Mark{
		markAt(t, cal, "m1", "p1", attendance.MarkIn, "2024-03-15", "08:30"),
		markAt(t, cal, "m2", "p1", attendance.MarkLunchOut, "2024-03-15", "12:00"),
		markAt(t, cal, "m3", "p1", attendance.MarkLunchIn, "2024-03-15", "13:00"),
		markAt(t, cal, "m4", "p1", attendance.MarkOut, "2024-03-15", "18:30"),
	}

	summaries := agg.BuildDailySummaries(marks)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 60, s.LunchMinutes)
	assert.Equal(t, 540, s.WorkedMinutes) // 600 raw minus 60 lunch
}

func TestBuildDailySummaries_TypedMarksTakePriority(t *testing.T) {
	agg, cal := testAggregator(t)
	// An untyped swipe precedes the typed "in"; typed must win for firstIn.
	marks := []attendance.Mark{
		markAt(t, cal, "m1", "p1", attendance.MarkUnknown, "2024-03-15", "07:50"),
		markAt(t, cal, "m2", "p1", attendance.MarkIn, "2024-03-15", "08:40"),
		markAt(t, cal, "m3", "p1", attendance.MarkOut, "2024-03-15", "18:00"),
	}

	summaries := agg.BuildDailySummaries(marks)
	require.Len(t, summaries, 1)

	assert.Equal(t, 520, cal.MinutesOfDay(*summaries[0].FirstIn)) // 08:40, not 07:50
}

func TestBuildDailySummaries_FallbackWhenNoTypedIn(t *testing.T) {
	agg, cal := testAggregator(t)
	// Only a single "out" mark. The chronological-first fallback treats it
	// as the arrival; it is also the last out. Worked time is zero.
	marks := []attendance.Mark{
		markAt(t, cal, "m1", "p1", attendance.MarkOut, "2024-03-15", "09:00"),
	}

	summaries := agg.BuildDailySummaries(marks)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 540, cal.MinutesOfDay(*s.FirstIn)) // 09:00
	assert.Equal(t, 540, cal.MinutesOfDay(*s.LastOut))
	assert.Equal(t, 0, s.WorkedMinutes)
	assert.True(t, s.Present)
}

func TestBuildDailySummaries_DuplicateMarks(t *testing.T) {
	agg, cal := testAggregator(t)
	// First typed "in" wins; last typed "out" wins.
	marks := []attendance.Mark{
		markAt(t, cal, "m1", "p1", attendance.MarkIn, "2024-03-15", "08:30"),
		markAt(t, cal, "m2", "p1", attendance.MarkIn, "2024-03-15", "08:45"),
		markAt(t, cal, "m3", "p1", attendance.MarkOut, "2024-03-15", "17:00"),
		markAt(t, cal, "m4", "p1", attendance.MarkOut, "2024-03-15", "18:30"),
	}

	summaries := agg.BuildDailySummaries(marks)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 510, cal.MinutesOfDay(*s.FirstIn))  // 08:30
	assert.Equal(t, 1110, cal.MinutesOfDay(*s.LastOut)) // 18:30
	assert.Equal(t, 600, s.WorkedMinutes)
}

func TestBuildDailySummaries_MarksBelongToOwnCivilDay(t *testing.T) {
	agg, cal := testAggregator(t)
	// A shift crossing local midnight is not stitched: the 23:50 "in" and
	// the 00:10 "out" land on different civil days.
	marks := []attendance.Mark{
		markAt(t, cal, "m1", "p1", attendance.MarkIn, "2024-03-15", "23:50"),
		markAt(t, cal, "m2", "p1", attendance.MarkOut, "2024-03-16", "00:10"),
	}

	summaries := agg.BuildDailySummaries(marks)
	require.Len(t, summaries, 2)

	assert.Equal(t, "2024-03-15", summaries[0].DayKey)
	assert.Equal(t, "2024-03-16", summaries[1].DayKey)
	// On the 15th the lone "in" is also the fallback lastOut.
	assert.Equal(t, 0, summaries[0].WorkedMinutes)
	assert.Equal(t, 0, summaries[1].WorkedMinutes)
}

func TestBuildDailySummaries_MultiplePersons(t *testing.T) {
	agg, cal := testAggregator(t)
	marks := []attendance.Mark{
		markAt(t, cal, "m1", "p2", attendance.MarkIn, "2024-03-15", "09:00"),
		markAt(t, cal, "m2", "p1", attendance.MarkIn, "2024-03-15", "08:30"),
		markAt(t, cal, "m3", "p1", attendance.MarkOut, "2024-03-15", "18:30"),
		markAt(t, cal, "m4", "p2", attendance.MarkOut, "2024-03-15", "17:00"),
	}

	summaries := agg.BuildDailySummaries(marks)
	require.Len(t, summaries, 2)
	assert.Equal(t, "p1", summaries[0].PersonID)
	assert.Equal(t, "p2", summaries[1].PersonID)
	assert.Equal(t, 600, summaries[0].WorkedMinutes)
	assert.Equal(t, 480, summaries[1].WorkedMinutes)
}

func TestBuildDailySummaries_Deterministic(t *testing.T) {
	agg, cal := testAggregator(t)

	var marks []attendance.Mark
	for day := 10; day < 20; day++ {
		date := fmt.Sprintf("2024-03-%02d", day)
		for p := 1; p <= 3; p++ {
			pid := fmt.Sprintf("p%d", p)
			marks = append(marks,
				markAt(t, cal, fmt.Sprintf("%s-%s-a", pid, date), pid, attendance.MarkIn, date, "08:30"),
				markAt(t, cal, fmt.Sprintf("%s-%s-b", pid, date), pid, attendance.MarkOut, date, "18:30"),
			)
		}
	}

	first := agg.BuildDailySummaries(marks)
	second := agg.BuildDailySummaries(marks)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the identical mark set produced different summaries")
	}
}

func TestBuildDailySummaries_Empty(t *testing.T) {
	agg, _ := testAggregator(t)
	summaries := agg.BuildDailySummaries(nil)
	assert.Empty(t, summaries)
}
