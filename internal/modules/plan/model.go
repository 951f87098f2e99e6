// README: Itinerary pipeline types; raw model output vs catalog-bound course items.
package plan

import "daytrip/internal/modules/place"

// Catalog item type tokens as they appear in prompts and model output.
const (
	TypeAttraction = "관광지"
	TypeEatery     = "가게"
)

// CourseLength is the fixed number of stops per plan. The requested stop
// pattern is 관광지-가게-관광지-관광지-가게, i.e. two eateries per course.
const (
	CourseLength = 5
	MinEateries  = 2
)

// TravelConditions is the structured intent derived from one free-text
// request. Created fresh per request and never persisted. Empty string means
// the field could not be determined; Duration always has a value.
type TravelConditions struct {
	Companion string
	Theme     string
	Duration  string
	Area      string
}

// CandidateSet is the catalog sample drawn for a single orchestration run.
// Shared by the prompt builder, resolver, and repairer; treated as immutable.
type CandidateSet struct {
	Attractions []place.Attraction
	Eateries    []place.Eatery
}

// RawCourseItem is one course entry as decoded from model output, before any
// validation. Type may arrive misspelled or aliased.
type RawCourseItem struct {
	Order       int
	Type        string
	Name        string
	Description string
}

// RawPlan is one plan as decoded from model output.
type RawPlan struct {
	Summary string
	Course  []RawCourseItem
}

// CourseItem is the validated, catalog-bound form of a course entry.
// ImageURL is set only for attractions, Tag only for eateries.
type CourseItem struct {
	Order       int     `json:"order"`
	CatalogID   int64   `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Tag         string  `json:"tag,omitempty"`
}

// ItineraryPlan is one repaired plan returned to the caller. Course holds
// CourseLength items after repair unless the candidate pool ran out.
type ItineraryPlan struct {
	Summary string       `json:"summary"`
	Course  []CourseItem `json:"course"`
}
