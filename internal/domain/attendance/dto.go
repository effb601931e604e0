package attendance

import (
	"github.com/andinaops/attendance-backend-go/internal/pkg/validator"
)

// CheckInRequest is the raw check-in payload from the mobile/web client.
type CheckInRequest struct {
	PersonID       string  `json:"person_id"`
	SiteID         string  `json:"site_id"`
	Type           string  `json:"type"` // "in" or "out"
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	AccuracyMeters float64 `json:"accuracy"`
	DeviceID       string  `json:"device_id"`
	SelfieBase64   string  `json:"selfie_base64"`
	QRCode         string  `json:"qr_code"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	switch ParseMarkType(r.Type) {
	case MarkIn, MarkOut:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: in, out",
			Code:    "type_invalid",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng must be between -180 and 180",
		})
	}

	if r.AccuracyMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must be a positive number of meters",
		})
	}

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if validator.IsEmpty(r.SelfieBase64) {
		errs = append(errs, validator.ValidationError{
			Field:   "selfie_base64",
			Message: "selfie_base64 is required",
		})
	}

	if validator.IsEmpty(r.QRCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "qr_code",
			Message: "qr_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckInResponse confirms the accepted mark back to the client UI.
type CheckInResponse struct {
	MarkID         string  `json:"mark_id"`
	DistanceMeters float64 `json:"distance_m"`
	RecordedAt     string  `json:"recorded_at"` // RFC3339
}
