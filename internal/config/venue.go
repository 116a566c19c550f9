package config

import (
	"fmt"
	"time"
)

// VenueConfig holds venue-local time configuration. Event dates and times are
// stored without a timezone and interpreted in the venue's location.
type VenueConfig struct {
	// Timezone is an IANA timezone name (e.g. "Europe/Dublin").
	Timezone string
}

// LoadVenueConfigFromEnv loads venue configuration from environment variables.
func LoadVenueConfigFromEnv() VenueConfig {
	return VenueConfig{
		Timezone: GetEnv("VENUE_TIMEZONE", "Europe/Dublin"),
	}
}

// Location resolves the configured timezone.
func (c VenueConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid VENUE_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate validates venue configuration.
func (c VenueConfig) Validate() error {
	_, err := c.Location()
	return err
}
