// README: Spreadsheet ingestion; parses the municipal xlsx datasets and reloads the catalog.
package place

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Attraction sheet columns: name, address, GPS("lat,lng"), description,
// reference date, area, category, image URL. First row is the header.
const (
	colAttrName = iota
	colAttrAddress
	colAttrGPS
	colAttrDescription
	colAttrRefDate
	colAttrArea
	colAttrCategory
	colAttrImageURL
)

// Eatery sheet columns: the first cell is a row number from the source file.
const (
	colEateryName = iota + 1
	colEateryAddress
	colEateryDetailAddress
	colEateryLocation
	colEateryType
	colEateryLng
	colEateryLat
)

// ImportAttractions replaces the attraction catalog with the contents of the
// given xlsx file. Rows missing GPS data are geocoded when a geocoder is
// configured; rows that still have no coordinates are kept with zero coords.
func (s *Service) ImportAttractions(ctx context.Context, r io.Reader) (int, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return 0, err
	}

	items := s.parseAttractionRows(ctx, rows)
	if err := s.store.DeleteAllAttractions(ctx); err != nil {
		return 0, fmt.Errorf("clear attractions: %w", err)
	}
	if err := s.store.BatchInsertAttractions(ctx, items); err != nil {
		return 0, fmt.Errorf("insert attractions: %w", err)
	}
	s.log.Infow("attraction catalog reloaded", "rows", len(items))
	return len(items), nil
}

// ImportEateries replaces the eatery catalog with the contents of the given
// xlsx file.
func (s *Service) ImportEateries(ctx context.Context, r io.Reader) (int, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return 0, err
	}

	items := parseEateryRows(rows)
	if err := s.store.DeleteAllEateries(ctx); err != nil {
		return 0, fmt.Errorf("clear eateries: %w", err)
	}
	if err := s.store.BatchInsertEateries(ctx, items); err != nil {
		return 0, fmt.Errorf("insert eateries: %w", err)
	}
	s.log.Infow("eatery catalog reloaded", "rows", len(items))
	return len(items), nil
}

func sheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func (s *Service) parseAttractionRows(ctx context.Context, rows [][]string) []Attraction {
	var items []Attraction
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		name := cell(row, colAttrName)
		if name == "" {
			continue
		}
		a := Attraction{
			Name:          name,
			Address:       cell(row, colAttrAddress),
			Description:   cell(row, colAttrDescription),
			ReferenceDate: cell(row, colAttrRefDate),
			Area:          cell(row, colAttrArea),
			Category:      cell(row, colAttrCategory),
			ImageURL:      cell(row, colAttrImageURL),
		}

		if lat, lng, ok := parseGPS(cell(row, colAttrGPS)); ok {
			a.Latitude, a.Longitude = lat, lng
		} else if s.geocoder != nil && a.Address != "" {
			lat, lng, err := s.geocoder.Geocode(ctx, a.Address)
			if err != nil {
				s.log.Warnw("geocode failed", "name", a.Name, "address", a.Address, "err", err)
			} else {
				a.Latitude, a.Longitude = lat, lng
			}
		}

		items = append(items, a)
	}
	return items
}

func parseEateryRows(rows [][]string) []Eatery {
	var items []Eatery
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		name := cell(row, colEateryName)
		if name == "" {
			continue
		}
		e := Eatery{
			Name:          name,
			Address:       cell(row, colEateryAddress),
			DetailAddress: cell(row, colEateryDetailAddress),
			Location:      cell(row, colEateryLocation),
			Type:          cell(row, colEateryType),
		}
		if v, err := strconv.ParseFloat(cell(row, colEateryLng), 64); err == nil {
			e.Longitude = v
		}
		if v, err := strconv.ParseFloat(cell(row, colEateryLat), 64); err == nil {
			e.Latitude = v
		}
		items = append(items, e)
	}
	return items
}

// parseGPS splits a "lat,lng" cell into coordinates.
func parseGPS(gps string) (lat, lng float64, ok bool) {
	parts := strings.SplitN(gps, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
