package plan

import (
	"reflect"
	"testing"

	"daytrip/internal/modules/place"
)

// testCandidates builds a small fixed candidate set shared by resolver and
// repair tests.
func testCandidates() CandidateSet {
	return CandidateSet{
		Attractions: []place.Attraction{
			{ID: 1, Name: "간월암", Address: "서산시 부석면", Latitude: 36.6, Longitude: 126.4, Category: "사찰", Area: "바다", ImageURL: "http://img/1.jpg"},
			{ID: 2, Name: "해미읍성", Address: "서산시 해미면", Latitude: 36.7, Longitude: 126.5, Category: "유적", Area: "내륙", ImageURL: "http://img/2.jpg"},
			{ID: 3, Name: "개심사", Address: "서산시 운산면", Latitude: 36.8, Longitude: 126.6, Category: "사찰", Area: "내륙", ImageURL: "http://img/3.jpg"},
			{ID: 4, Name: "팔봉산", Address: "서산시 팔봉면", Latitude: 36.9, Longitude: 126.3, Category: "자연", Area: "내륙", ImageURL: "http://img/4.jpg"},
		},
		Eateries: []place.Eatery{
			{ID: 11, Name: "양평해장국", Address: "서산시 동문동", Type: "한식당", Latitude: 36.78, Longitude: 126.45},
			{ID: 12, Name: "바다카페", Address: "서산시 대산읍", Type: "카페", Latitude: 36.91, Longitude: 126.41},
			{ID: 13, Name: "서산횟집", Address: "서산시 부석면", Type: "횟집", Latitude: 36.62, Longitude: 126.39},
		},
	}
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"관광지", TypeAttraction},
		{"명소", TypeAttraction},
		{"가게", TypeEatery},
		{"식당", TypeEatery},
		{"맛집", TypeEatery},
		{"카페", TypeEatery},
		{"알수없음", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeType(tt.in); got != tt.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolve_AttractionMatch(t *testing.T) {
	c := testCandidates()
	raw := RawCourseItem{Order: 1, Type: "관광지", Name: "간월암", Description: "노을이 아름다운 암자"}

	got := Resolve(raw, c)
	if got == nil {
		t.Fatal("Resolve() = nil, want match")
	}
	if got.CatalogID != 1 || got.Address != "서산시 부석면" {
		t.Errorf("catalog fields not bound: %+v", got)
	}
	if got.Description != raw.Description {
		t.Errorf("Description = %q, want the model's text", got.Description)
	}
	if got.ImageURL == "" || got.Tag != "" {
		t.Errorf("attraction must carry ImageURL and no Tag: %+v", got)
	}
}

func TestResolve_EateryMatchViaAlias(t *testing.T) {
	c := testCandidates()
	raw := RawCourseItem{Order: 2, Type: "식당", Name: "양평해장국", Description: "속 풀리는 한 그릇"}

	got := Resolve(raw, c)
	if got == nil {
		t.Fatal("Resolve() = nil, want match")
	}
	if got.Type != TypeEatery || got.CatalogID != 11 {
		t.Errorf("item = %+v", got)
	}
	if got.Tag != "한식당" || got.ImageURL != "" {
		t.Errorf("eatery must carry Tag and no ImageURL: %+v", got)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	c := testCandidates()
	tests := []struct {
		name string
		raw  RawCourseItem
	}{
		{"unknown name", RawCourseItem{Type: "관광지", Name: "없는곳"}},
		{"unknown type", RawCourseItem{Type: "숙소", Name: "간월암"}},
		{"wrong list for type", RawCourseItem{Type: "가게", Name: "간월암"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.raw, c); got != nil {
				t.Errorf("Resolve() = %+v, want nil", got)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	c := testCandidates()
	raw := RawCourseItem{Order: 3, Type: "관광지", Name: "해미읍성", Description: "d"}

	first := Resolve(raw, c)
	second := Resolve(raw, c)
	if first == nil || second == nil {
		t.Fatal("Resolve() = nil, want match")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolution not deterministic: %+v vs %+v", first, second)
	}
}
