package geofence

import (
	"errors"
	"testing"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/domain/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSite(lat, lng, radius float64) site.Site {
	return site.Site{
		ID:           "site-1",
		Name:         "Sucursal Centro",
		Latitude:     &lat,
		Longitude:    &lng,
		RadiusMeters: radius,
		IsActive:     true,
	}
}

func TestAdmit_AtCenter(t *testing.T) {
	v := NewValidator(60)
	s := activeSite(-16.5, -68.15, 100)

	d, err := v.Admit(s, -16.5, -68.15, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestAdmit_InactiveSiteFailsClosed(t *testing.T) {
	v := NewValidator(60)
	s := activeSite(-16.5, -68.15, 100)
	s.IsActive = false

	// Even a position exactly at the center is rejected.
	_, err := v.Admit(s, -16.5, -68.15, 10)
	assert.ErrorIs(t, err, site.ErrSiteUnavailable)
}

func TestAdmit_MissingCenterFailsClosed(t *testing.T) {
	v := NewValidator(60)
	s := activeSite(-16.5, -68.15, 100)
	s.Latitude = nil

	_, err := v.Admit(s, -16.5, -68.15, 10)
	assert.ErrorIs(t, err, site.ErrSiteUnavailable)
}

func TestAdmit_AccuracyCheckedBeforeDistance(t *testing.T) {
	v := NewValidator(60)
	s := activeSite(-16.5, -68.15, 100)

	// Distance is zero but accuracy is just over the ceiling.
	_, err := v.Admit(s, -16.5, -68.15, 61)
	assert.ErrorIs(t, err, attendance.ErrAccuracyTooLow)
}

func TestAdmit_OutsideGeofenceCarriesDiagnostics(t *testing.T) {
	v := NewValidator(60)
	s := activeSite(-16.5, -68.15, 50)

	// ~111 m north of center, radius 50 m.
	_, err := v.Admit(s, -16.501, -68.15, 10)
	require.Error(t, err)

	var geofenceErr *attendance.OutsideGeofenceError
	require.True(t, errors.As(err, &geofenceErr))
	assert.InDelta(t, 111, geofenceErr.DistanceMeters, 5)
	assert.Equal(t, 50.0, geofenceErr.RadiusMeters)
	assert.Equal(t, 10.0, geofenceErr.AccuracyMeters)
}

func TestAdmit_MonotonicInRadius(t *testing.T) {
	v := NewValidator(60)

	// Position ~111 m from center. Growing the radius must never turn an
	// admitted claim into a rejection.
	admitted := false
	for _, radius := range []float64{10, 50, 100, 112, 500, 10000} {
		s := activeSite(-16.5, -68.15, radius)
		_, err := v.Admit(s, -16.501, -68.15, 10)
		if err == nil {
			admitted = true
		} else if admitted {
			t.Fatalf("radius %f rejected after a smaller radius admitted", radius)
		}
	}
	assert.True(t, admitted, "largest radius should admit")
}

func TestAdmit_AccuracyAtCeilingPasses(t *testing.T) {
	v := NewValidator(60)
	s := activeSite(-16.5, -68.15, 100)

	_, err := v.Admit(s, -16.5, -68.15, 60)
	assert.NoError(t, err)
}
