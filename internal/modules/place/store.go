// README: Catalog store backed by PostgreSQL.
package place

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("place not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SampleAttractions returns up to limit random attractions matching the given
// area and, when non-empty, category. Randomized so repeated plan requests see
// different candidate pools.
func (s *Store) SampleAttractions(ctx context.Context, area, category string, limit int) ([]Attraction, error) {
	query := `
		SELECT id, name, address, latitude, longitude, description, reference_date, area, category, image_url
		FROM attractions
		WHERE area = $1 AND ($2 = '' OR category = $2)
		ORDER BY random()
		LIMIT $3`
	rows, err := s.db.Query(ctx, query, area, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttractions(rows)
}

// SampleEateries returns up to limit random eateries with no area filter.
func (s *Store) SampleEateries(ctx context.Context, limit int) ([]Eatery, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, address, detail_address, location, type, latitude, longitude
		FROM eateries
		ORDER BY random()
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEateries(rows)
}

func (s *Store) GetAttraction(ctx context.Context, id int64) (*Attraction, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, address, latitude, longitude, description, reference_date, area, category, image_url
		FROM attractions WHERE id = $1`, id)
	var a Attraction
	err := row.Scan(&a.ID, &a.Name, &a.Address, &a.Latitude, &a.Longitude,
		&a.Description, &a.ReferenceDate, &a.Area, &a.Category, &a.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) GetEatery(ctx context.Context, id int64) (*Eatery, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, address, detail_address, location, type, latitude, longitude
		FROM eateries WHERE id = $1`, id)
	var e Eatery
	err := row.Scan(&e.ID, &e.Name, &e.Address, &e.DetailAddress, &e.Location,
		&e.Type, &e.Latitude, &e.Longitude)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) ListAttractions(ctx context.Context) ([]Attraction, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, address, latitude, longitude, description, reference_date, area, category, image_url
		FROM attractions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttractions(rows)
}

func (s *Store) ListEateries(ctx context.Context) ([]Eatery, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, address, detail_address, location, type, latitude, longitude
		FROM eateries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEateries(rows)
}

// BatchInsertAttractions inserts rows in chunks so a full dataset reload stays
// inside reasonable statement sizes.
func (s *Store) BatchInsertAttractions(ctx context.Context, items []Attraction) error {
	const chunk = 1000
	for start := 0; start < len(items); start += chunk {
		end := start + chunk
		if end > len(items) {
			end = len(items)
		}
		batch := &pgx.Batch{}
		for _, a := range items[start:end] {
			batch.Queue(`
				INSERT INTO attractions (name, address, latitude, longitude, description, reference_date, area, category, image_url)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				a.Name, a.Address, a.Latitude, a.Longitude, a.Description,
				a.ReferenceDate, a.Area, a.Category, a.ImageURL)
		}
		if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) BatchInsertEateries(ctx context.Context, items []Eatery) error {
	const chunk = 1000
	for start := 0; start < len(items); start += chunk {
		end := start + chunk
		if end > len(items) {
			end = len(items)
		}
		batch := &pgx.Batch{}
		for _, e := range items[start:end] {
			batch.Queue(`
				INSERT INTO eateries (name, address, detail_address, location, type, latitude, longitude)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				e.Name, e.Address, e.DetailAddress, e.Location, e.Type, e.Latitude, e.Longitude)
		}
		if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) DeleteAllAttractions(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM attractions`)
	return err
}

func (s *Store) DeleteAllEateries(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM eateries`)
	return err
}

func scanAttractions(rows pgx.Rows) ([]Attraction, error) {
	var out []Attraction
	for rows.Next() {
		var a Attraction
		if err := rows.Scan(&a.ID, &a.Name, &a.Address, &a.Latitude, &a.Longitude,
			&a.Description, &a.ReferenceDate, &a.Area, &a.Category, &a.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanEateries(rows pgx.Rows) ([]Eatery, error) {
	var out []Eatery
	for rows.Next() {
		var e Eatery
		if err := rows.Scan(&e.ID, &e.Name, &e.Address, &e.DetailAddress, &e.Location,
			&e.Type, &e.Latitude, &e.Longitude); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
