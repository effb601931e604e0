package attendance

import (
	"errors"
	"fmt"
)

// Check-in pipeline errors
var (
	ErrAccuracyTooLow       = errors.New("GPS accuracy is too low to trust the reported position")
	ErrEvidenceUploadFailed = errors.New("failed to store check-in evidence")
	ErrMarkInsertFailed     = errors.New("failed to record attendance mark")
)

// OutsideGeofenceError carries the measured distance so operators can see
// how far off a rejected check-in was.
type OutsideGeofenceError struct {
	DistanceMeters float64
	RadiusMeters   float64
	AccuracyMeters float64
}

func (e *OutsideGeofenceError) Error() string {
	return fmt.Sprintf("position is %.0f m from the site center, outside the %.0f m geofence", e.DistanceMeters, e.RadiusMeters)
}
