package geofence

import (
	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/domain/site"
	"github.com/andinaops/attendance-backend-go/internal/pkg/geo"
)

// Validator decides whether a reported position is an acceptable presence
// claim for a site.
type Validator struct {
	accuracyCeilingM float64
}

func NewValidator(accuracyCeilingM float64) *Validator {
	return &Validator{accuracyCeilingM: accuracyCeilingM}
}

// Admit returns the measured distance to the site center when the claim
// is acceptable. Gates run in a fixed order:
//
//  1. The site must be active and have a registered center (fail closed).
//  2. The reported accuracy must be within the ceiling. This runs before
//     any distance math: a low-confidence reading cannot be trusted even
//     if it lands inside the radius.
//  3. The haversine distance must be within the site radius.
//
// Rejections are never widened; the geofence error carries the measured
// distance and radius for operator troubleshooting.
func (v *Validator) Admit(s site.Site, lat, lng, accuracyM float64) (float64, error) {
	if !s.IsActive || !s.HasCenter() {
		return 0, site.ErrSiteUnavailable
	}

	if accuracyM > v.accuracyCeilingM {
		return 0, attendance.ErrAccuracyTooLow
	}

	d := geo.DistanceMeters(lat, lng, *s.Latitude, *s.Longitude)
	if d > s.RadiusMeters {
		return 0, &attendance.OutsideGeofenceError{
			DistanceMeters: d,
			RadiusMeters:   s.RadiusMeters,
			AccuracyMeters: accuracyM,
		}
	}

	return d, nil
}
