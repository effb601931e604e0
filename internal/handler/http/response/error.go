package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andinaops/attendance-backend-go/internal/domain/accesstoken"
	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/domain/person"
	"github.com/andinaops/attendance-backend-go/internal/domain/site"
	"github.com/andinaops/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		// A failure carrying its own code (e.g. type_invalid) wins when it
		// is the only defect; mixed failures stay generic.
		code := "missing_field"
		if len(validationErrs) == 1 && validationErrs[0].Code != "" {
			code = validationErrs[0].Code
		}
		BadRequest(w, code, "Validation failed", validationErrs.ToMap())
		return
	}

	// Geofence rejections carry diagnostics for operator troubleshooting.
	var geofenceErr *attendance.OutsideGeofenceError
	if errors.As(err, &geofenceErr) {
		Forbidden(w, "outside_geofence", "Reported position is outside the site geofence", map[string]string{
			"distance_m":      strconv.FormatFloat(geofenceErr.DistanceMeters, 'f', 1, 64),
			"required_radius": strconv.FormatFloat(geofenceErr.RadiusMeters, 'f', 1, 64),
			"accuracy":        strconv.FormatFloat(geofenceErr.AccuracyMeters, 'f', 1, 64),
		})
		return
	}

	switch {
	// Input errors
	case errors.Is(err, attendance.ErrAccuracyTooLow):
		BadRequest(w, "accuracy_too_high", "GPS accuracy is too poor to trust the reported position", nil)

	// Eligibility / authorization errors
	case errors.Is(err, person.ErrPersonInactive):
		Forbidden(w, "person_inactive", "Person is not active", nil)
	case errors.Is(err, person.ErrRoleNotAllowed):
		Forbidden(w, "role_not_allowed", "Role is not allowed to check in here", nil)
	case errors.Is(err, site.ErrSiteUnavailable):
		Forbidden(w, "site_unavailable", "Site is inactive or has no registered location", nil)
	case errors.Is(err, accesstoken.ErrTokenInvalidOrExpired):
		Forbidden(w, "qr_invalid_or_expired", "QR code is invalid or expired", nil)

	// Not found
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "person_not_found", "Person not found")
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "site_not_found", "Site not found")

	// Infrastructure errors
	case errors.Is(err, attendance.ErrEvidenceUploadFailed):
		InternalServerError(w, "upload_failed", "Failed to store check-in evidence")
	case errors.Is(err, attendance.ErrMarkInsertFailed):
		InternalServerError(w, "insert_failed", "Failed to record the attendance mark")

	// Default
	default:
		InternalServerError(w, "internal_error", "An unexpected error occurred")
	}
}
