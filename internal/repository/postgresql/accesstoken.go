package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/accesstoken"
	"github.com/andinaops/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accessTokenRepository struct {
	db *database.DB
}

func NewAccessTokenRepository(db *database.DB) accesstoken.AccessTokenRepository {
	return &accessTokenRepository{db: db}
}

// Create implements accesstoken.AccessTokenRepository.
func (r *accessTokenRepository) Create(ctx context.Context, token accesstoken.AccessToken) (accesstoken.AccessToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO access_tokens (site_id, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		token.SiteID,
		token.Code,
		token.ExpiresAt,
	).Scan(&token.ID, &token.CreatedAt)

	if err != nil {
		return accesstoken.AccessToken{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return token, nil
}

// FindUsable implements accesstoken.AccessTokenRepository.
// Codes are scoped per site: the same code value at another site never
// matches.
func (r *accessTokenRepository) FindUsable(ctx context.Context, siteID string, code string, now time.Time) (accesstoken.AccessToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, code, expires_at, created_at
		FROM access_tokens
		WHERE site_id = $1
		  AND code = $2
		  AND expires_at > $3
		ORDER BY expires_at DESC
		LIMIT 1
	`

	var t accesstoken.AccessToken
	err := q.QueryRow(ctx, query, siteID, code, now).Scan(
		&t.ID, &t.SiteID, &t.Code, &t.ExpiresAt, &t.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accesstoken.AccessToken{}, accesstoken.ErrTokenInvalidOrExpired
		}
		return accesstoken.AccessToken{}, fmt.Errorf("failed to look up access token: %w", err)
	}

	return t, nil
}
