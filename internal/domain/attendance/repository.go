package attendance

import (
	"context"
	"time"
)

// MarkRepository is the append-only mark store. Marks are never updated
// or deleted by this core.
type MarkRepository interface {
	// Create inserts one mark and returns it with the persisted timestamps.
	Create(ctx context.Context, mark Mark) (Mark, error)

	// ListForReport retrieves all marks observed in [from, to), joined with
	// person and site names, optionally filtered by site and by a partial
	// person-name match. Order is not guaranteed; callers sort.
	ListForReport(ctx context.Context, from, to time.Time, siteID *string, personName *string) ([]Mark, error)
}
