package summary

import (
	"sort"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/domain/report"
	"github.com/andinaops/attendance-backend-go/internal/pkg/civiltime"
)

// Aggregator folds an unordered set of raw marks into one DailySummary
// per (person, civil day). It is a pure function of its input: the same
// mark set always yields byte-identical summaries, in a deterministic
// order, so reports can be recomputed at any time.
type Aggregator struct {
	cal *civiltime.Calendar
}

func NewAggregator(cal *civiltime.Calendar) *Aggregator {
	return &Aggregator{cal: cal}
}

type dayKeyPair struct {
	personID string
	dayKey   string
}

// BuildDailySummaries buckets marks by person and civil day and resolves
// first-in/last-out per day. Days with zero marks produce no summary;
// absence is represented by omission.
//
// Typed marks take priority: firstIn is the earliest mark typed "in" and
// only falls back to the chronologically first mark of the day when no
// typed "in" exists (the first swipe is assumed to be an arrival even if
// mistyped). Symmetrically for lastOut. This is not the same as ignoring
// types altogether.
func (a *Aggregator) BuildDailySummaries(marks []attendance.Mark) []report.DailySummary {
	buckets := make(map[dayKeyPair][]attendance.Mark)
	for _, m := range marks {
		key := dayKeyPair{personID: m.PersonID, dayKey: a.cal.CivilDayKey(m.ObservedAt)}
		buckets[key] = append(buckets[key], m)
	}

	summaries := make([]report.DailySummary, 0, len(buckets))
	for key, dayMarks := range buckets {
		summaries = append(summaries, a.summarizeDay(key.personID, key.dayKey, dayMarks))
	}

	// Map iteration order is random; fix it for determinism.
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].PersonID != summaries[j].PersonID {
			return summaries[i].PersonID < summaries[j].PersonID
		}
		return summaries[i].DayKey < summaries[j].DayKey
	})

	return summaries
}

func (a *Aggregator) summarizeDay(personID, dayKey string, dayMarks []attendance.Mark) report.DailySummary {
	// Chronological order; tie-break on ID so duplicate instants are stable.
	sort.Slice(dayMarks, func(i, j int) bool {
		if !dayMarks[i].ObservedAt.Equal(dayMarks[j].ObservedAt) {
			return dayMarks[i].ObservedAt.Before(dayMarks[j].ObservedAt)
		}
		return dayMarks[i].ID < dayMarks[j].ID
	})

	s := report.DailySummary{
		PersonID: personID,
		DayKey:   dayKey,
		Present:  true,
	}

	first := dayMarks[0]
	s.SiteID = first.SiteID
	if first.PersonName != nil {
		s.PersonName = *first.PersonName
	}
	if first.SiteName != nil {
		s.SiteName = *first.SiteName
	}

	for i := range dayMarks {
		m := dayMarks[i]
		t := m.ObservedAt
		switch m.Type {
		case attendance.MarkIn:
			// First typed "in" wins.
			if s.FirstIn == nil {
				s.FirstIn = &t
			}
		case attendance.MarkOut:
			// Last typed "out" wins.
			s.LastOut = &t
		case attendance.MarkLunchOut:
			// First typed "lunch_out" wins.
			if s.LunchOut == nil {
				s.LunchOut = &t
			}
		case attendance.MarkLunchIn:
			// Last typed "lunch_in" wins.
			s.LunchIn = &t
		}
	}

	// Fallback heuristics for mistyped or missing in/out labels.
	if s.FirstIn == nil {
		t := dayMarks[0].ObservedAt
		s.FirstIn = &t
	}
	if s.LastOut == nil {
		t := dayMarks[len(dayMarks)-1].ObservedAt
		s.LastOut = &t
	}

	if s.FirstIn != nil && s.LastOut != nil {
		worked := a.cal.MinutesOfDay(*s.LastOut) - a.cal.MinutesOfDay(*s.FirstIn)
		if worked < 0 {
			worked = 0
		}
		s.WorkedMinutes = worked
	}

	if s.LunchOut != nil && s.LunchIn != nil {
		lunch := a.cal.MinutesOfDay(*s.LunchIn) - a.cal.MinutesOfDay(*s.LunchOut)
		if lunch < 0 {
			lunch = 0
		}
		s.LunchMinutes = lunch
		s.WorkedMinutes -= lunch
		if s.WorkedMinutes < 0 {
			s.WorkedMinutes = 0
		}
	}

	return s
}
