package site

import "time"

// Site is owned by the admin collaborator; this service only reads it.
// Coordinates are nullable in the source table; a site without both set
// cannot be used for geofencing.
type Site struct {
	ID           string
	Name         string
	Latitude     *float64
	Longitude    *float64
	RadiusMeters float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCenter reports whether the site has a registered geofence center.
func (s Site) HasCenter() bool {
	return s.Latitude != nil && s.Longitude != nil
}
