package accesstoken

import (
	"context"
	"fmt"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/accesstoken"
	"github.com/andinaops/attendance-backend-go/internal/domain/site"
	"github.com/google/uuid"
)

// Service validates check-in codes and issues fresh ones. Validation is
// the hot path (every check-in); issuance is called by the kiosk/admin UI
// when it rotates the displayed QR.
type Service interface {
	// Validate checks that (siteID, code) names a token still usable at
	// now. No redemption tracking: a code may authorize any number of
	// check-ins inside its window.
	Validate(ctx context.Context, siteID string, code string, now time.Time) error

	// Issue mints a new code for the site with the configured TTL.
	Issue(ctx context.Context, req accesstoken.IssueTokenRequest) (accesstoken.TokenResponse, error)
}

type serviceImpl struct {
	tokenRepo accesstoken.AccessTokenRepository
	siteRepo  site.SiteRepository
	tokenTTL  time.Duration
}

func NewService(tokenRepo accesstoken.AccessTokenRepository, siteRepo site.SiteRepository, tokenTTL time.Duration) Service {
	return &serviceImpl{
		tokenRepo: tokenRepo,
		siteRepo:  siteRepo,
		tokenTTL:  tokenTTL,
	}
}

// Validate implements Service.
func (s *serviceImpl) Validate(ctx context.Context, siteID string, code string, now time.Time) error {
	token, err := s.tokenRepo.FindUsable(ctx, siteID, code, now)
	if err != nil {
		return err
	}
	if !token.Usable(now) {
		return accesstoken.ErrTokenInvalidOrExpired
	}
	return nil
}

// Issue implements Service.
func (s *serviceImpl) Issue(ctx context.Context, req accesstoken.IssueTokenRequest) (accesstoken.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return accesstoken.TokenResponse{}, err
	}

	// Only real, active sites get codes.
	siteData, err := s.siteRepo.GetByID(ctx, req.SiteID)
	if err != nil {
		return accesstoken.TokenResponse{}, err
	}
	if !siteData.IsActive {
		return accesstoken.TokenResponse{}, site.ErrSiteUnavailable
	}

	token := accesstoken.AccessToken{
		SiteID:    siteData.ID,
		Code:      uuid.New().String(),
		ExpiresAt: time.Now().Add(s.tokenTTL),
	}

	created, err := s.tokenRepo.Create(ctx, token)
	if err != nil {
		return accesstoken.TokenResponse{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	return accesstoken.TokenResponse{
		SiteID:    created.SiteID,
		Code:      created.Code,
		ExpiresAt: created.ExpiresAt.Format(time.RFC3339),
	}, nil
}
