// README: Catalog service; sampling queries plus dataset reload from spreadsheets.
package place

import (
	"context"

	"go.uber.org/zap"
)

// Geocoder resolves a street address to coordinates. Used during ingest for
// rows whose GPS cell is missing or malformed.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

type Service struct {
	store    *Store
	geocoder Geocoder
	log      *zap.SugaredLogger
}

// NewService creates the catalog service. geocoder may be nil, in which case
// rows without usable GPS data keep zero coordinates.
func NewService(store *Store, geocoder Geocoder, log *zap.SugaredLogger) *Service {
	return &Service{store: store, geocoder: geocoder, log: log}
}

func (s *Service) SampleAttractions(ctx context.Context, area, category string, limit int) ([]Attraction, error) {
	return s.store.SampleAttractions(ctx, area, category, limit)
}

func (s *Service) SampleEateries(ctx context.Context, limit int) ([]Eatery, error) {
	return s.store.SampleEateries(ctx, limit)
}

func (s *Service) GetAttraction(ctx context.Context, id int64) (*Attraction, error) {
	return s.store.GetAttraction(ctx, id)
}

func (s *Service) GetEatery(ctx context.Context, id int64) (*Eatery, error) {
	return s.store.GetEatery(ctx, id)
}

func (s *Service) ListAttractions(ctx context.Context) ([]Attraction, error) {
	return s.store.ListAttractions(ctx)
}

func (s *Service) ListEateries(ctx context.Context) ([]Eatery, error) {
	return s.store.ListEateries(ctx)
}

func (s *Service) ClearAttractions(ctx context.Context) error {
	return s.store.DeleteAllAttractions(ctx)
}

func (s *Service) ClearEateries(ctx context.Context) error {
	return s.store.DeleteAllEateries(ctx)
}
