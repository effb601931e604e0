package attendance

import (
	"strings"
	"time"
)

// Mark is one raw, immutable attendance event. Marks are the only durable
// source of truth: summaries and compliance rows are recomputed from them
// on every query and never written back.
type Mark struct {
	ID             string
	PersonID       string
	SiteID         string
	Type           MarkType
	ObservedAt     time.Time
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
	DeviceID       string
	EvidencePath   *string
	CreatedAt      time.Time

	// DTO
	PersonName *string
	SiteName   *string
}

type MarkType string

const (
	MarkIn       MarkType = "in"
	MarkOut      MarkType = "out"
	MarkLunchOut MarkType = "lunch_out"
	MarkLunchIn  MarkType = "lunch_in"
	MarkUnknown  MarkType = "unknown"
)

// markLabels maps the raw labels legacy clients send to the closed mark
// enumeration.
var markLabels = map[string]MarkType{
	"in":        MarkIn,
	"clock_in":  MarkIn,
	"entrada":   MarkIn,
	"out":       MarkOut,
	"clock_out": MarkOut,
	"salida":    MarkOut,
	"lunch_out": MarkLunchOut,
	"lunch_in":  MarkLunchIn,
}

// ParseMarkType is total: every input maps to a variant, with anything
// unrecognized becoming MarkUnknown rather than silently coercing to a
// default. Check-in accepts only MarkIn and MarkOut; the aggregator
// tolerates MarkUnknown through its chronological fallback.
func ParseMarkType(raw string) MarkType {
	if t, ok := markLabels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t
	}
	return MarkUnknown
}
