package site

import "errors"

var (
	ErrSiteNotFound = errors.New("site not found")

	// ErrSiteUnavailable covers both inactive sites and sites with no
	// registered center; geofencing fails closed either way.
	ErrSiteUnavailable = errors.New("site is not available for check-in")
)
