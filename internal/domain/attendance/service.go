package attendance

import "context"

type CheckinService interface {
	// CheckIn runs the full validation pipeline and, if every gate passes,
	// persists one mark with its evidence.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)
}
