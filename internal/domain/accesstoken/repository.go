package accesstoken

import (
	"context"
	"time"
)

type AccessTokenRepository interface {
	// Create stores a freshly issued token.
	Create(ctx context.Context, token AccessToken) (AccessToken, error)

	// FindUsable retrieves the token matching (siteID, code) that is still
	// valid at now; returns ErrTokenInvalidOrExpired otherwise.
	FindUsable(ctx context.Context, siteID string, code string, now time.Time) (AccessToken, error)
}
