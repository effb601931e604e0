package accesstoken

import "time"

// AccessToken is the site-scoped, time-limited code behind the QR a site
// kiosk displays. Codes are unique per (site, code); two sites sharing a
// code value is fine and does not collide.
type AccessToken struct {
	ID        string
	SiteID    string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Usable reports whether the token can authorize a check-in at now.
func (t AccessToken) Usable(now time.Time) bool {
	return now.Before(t.ExpiresAt)
}
