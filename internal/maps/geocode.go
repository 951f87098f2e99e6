package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves street addresses to coordinates through the
// Google Geocoding API. Catalog imports use it to fill in coordinates
// for rows that ship without them.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode returns the coordinates of the first match for the address.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (float64, float64, error) {
	r := &maps.GeocodingRequest{
		Address:  address,
		Language: "ko",
		Region:   "KR",
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", address)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
