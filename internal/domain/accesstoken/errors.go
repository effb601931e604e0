package accesstoken

import "errors"

var (
	// ErrTokenInvalidOrExpired deliberately does not distinguish "no such
	// code" from "expired": the client feedback is identical and the
	// distinction would leak which codes exist.
	ErrTokenInvalidOrExpired = errors.New("access token is invalid or expired")
)
