package accesstoken

import (
	"github.com/andinaops/attendance-backend-go/internal/pkg/validator"
)

type IssueTokenRequest struct {
	SiteID string `json:"-"`
}

func (r *IssueTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	SiteID    string `json:"site_id"`
	Code      string `json:"code"`
	ExpiresAt string `json:"expires_at"` // RFC3339
}
