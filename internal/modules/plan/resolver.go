// README: Entity resolver; binds model-named stops back to canonical catalog records.
package plan

import "daytrip/internal/modules/place"

// eateryAliases are type tokens the model emits that all mean "가게".
var eateryAliases = []string{"가게", "식당", "맛집", "음식점", "카페", "상점"}

// attractionAliases are type tokens that all mean "관광지".
var attractionAliases = []string{"관광지", "명소", "여행지"}

// NormalizeType collapses aliased type tokens to the canonical TypeAttraction
// or TypeEatery. Returns "" for unrecognized types.
func NormalizeType(t string) string {
	for _, a := range eateryAliases {
		if t == a {
			return TypeEatery
		}
	}
	for _, a := range attractionAliases {
		if t == a {
			return TypeAttraction
		}
	}
	return ""
}

// Resolve matches a raw item against the candidate set by exact name equality,
// first match in list order. Returns nil when the type is unrecognized or no
// candidate carries the name; callers drop nil results and rely on repair
// backfill. Resolution is deterministic for a fixed candidate set.
func Resolve(raw RawCourseItem, c CandidateSet) *CourseItem {
	switch NormalizeType(raw.Type) {
	case TypeAttraction:
		for _, a := range c.Attractions {
			if a.Name == raw.Name {
				item := attractionCourseItem(a, raw.Order)
				item.Description = raw.Description
				return &item
			}
		}
	case TypeEatery:
		for _, e := range c.Eateries {
			if e.Name == raw.Name {
				item := eateryCourseItem(e, raw.Order)
				item.Description = raw.Description
				return &item
			}
		}
	}
	return nil
}

func attractionCourseItem(a place.Attraction, order int) CourseItem {
	return CourseItem{
		Order:     order,
		CatalogID: a.ID,
		Type:      TypeAttraction,
		Name:      a.Name,
		Address:   a.Address,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		ImageURL:  a.ImageURL,
	}
}

func eateryCourseItem(e place.Eatery, order int) CourseItem {
	return CourseItem{
		Order:     order,
		CatalogID: e.ID,
		Type:      TypeEatery,
		Name:      e.Name,
		Address:   e.Address,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
		Tag:       e.Type,
	}
}
