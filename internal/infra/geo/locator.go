// Package geo provides domain.Locator implementations.
package geo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/runoshun/nearby/internal/domain"
)

// Environment variables read by Env.
const (
	EnvLatitude  = "NEARBY_LAT"
	EnvLongitude = "NEARBY_LON"
)

// Ensure locators implement domain.Locator.
var (
	_ domain.Locator = (*Static)(nil)
	_ domain.Locator = (*Env)(nil)
	_ domain.Locator = Chain(nil)
)

// Static reports a fixed position, typically from the [location] config
// section or command line flags.
type Static struct {
	Latitude  *float64
	Longitude *float64
	Enabled   bool
}

// NewStatic creates a Static locator from the location config.
func NewStatic(cfg domain.LocationConfig) *Static {
	return &Static{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Enabled:   cfg.Enabled,
	}
}

// Locate implements domain.Locator.
func (s *Static) Locate(ctx context.Context) (domain.GeoReading, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeoReading{}, err
	}
	if !s.Enabled {
		return domain.GeoReading{}, domain.ErrGeolocationDenied
	}
	if s.Latitude == nil || s.Longitude == nil {
		return domain.GeoReading{}, fmt.Errorf("%w: no position configured", domain.ErrGeolocationUnavailable)
	}
	return reading(*s.Latitude, *s.Longitude)
}

// Env reads the position from NEARBY_LAT and NEARBY_LON.
type Env struct {
	lookup func(string) (string, bool)
}

// NewEnv creates an Env locator backed by the process environment.
func NewEnv() *Env {
	return &Env{lookup: os.LookupEnv}
}

// NewEnvWithLookup creates an Env locator with a custom lookup.
// This is useful for testing.
func NewEnvWithLookup(lookup func(string) (string, bool)) *Env {
	return &Env{lookup: lookup}
}

// Locate implements domain.Locator.
func (e *Env) Locate(ctx context.Context) (domain.GeoReading, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeoReading{}, err
	}
	latStr, okLat := e.lookup(EnvLatitude)
	lonStr, okLon := e.lookup(EnvLongitude)
	if !okLat || !okLon || strings.TrimSpace(latStr) == "" || strings.TrimSpace(lonStr) == "" {
		return domain.GeoReading{}, fmt.Errorf("%w: %s/%s not set", domain.ErrGeolocationUnavailable, EnvLatitude, EnvLongitude)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.GeoReading{}, fmt.Errorf("%w: invalid %s: %q", domain.ErrGeolocationUnavailable, EnvLatitude, latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return domain.GeoReading{}, fmt.Errorf("%w: invalid %s: %q", domain.ErrGeolocationUnavailable, EnvLongitude, lonStr)
	}
	return reading(lat, lon)
}

// Chain tries each locator in order and returns the first fix.
// A denial stops the chain. If every locator is unavailable, the last
// error is returned.
type Chain []domain.Locator

// Locate implements domain.Locator.
func (c Chain) Locate(ctx context.Context) (domain.GeoReading, error) {
	err := error(domain.ErrGeolocationUnavailable)
	for _, l := range c {
		var r domain.GeoReading
		r, err = l.Locate(ctx)
		if err == nil {
			return r, nil
		}
		if errors.Is(err, domain.ErrGeolocationDenied) || ctx.Err() != nil {
			return domain.GeoReading{}, err
		}
	}
	return domain.GeoReading{}, err
}

func reading(lat, lon float64) (domain.GeoReading, error) {
	r := domain.NewGeoReading(lat, lon)
	if !r.Valid() {
		return domain.GeoReading{}, fmt.Errorf("%w: position %s out of range", domain.ErrGeolocationUnavailable, r.Coordinate)
	}
	return r, nil
}
