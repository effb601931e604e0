package site

import "context"

// SiteRepository reads collaborator-owned site records.
type SiteRepository interface {
	// GetByID retrieves a site by ID; returns ErrSiteNotFound when absent.
	GetByID(ctx context.Context, id string) (Site, error)
}
