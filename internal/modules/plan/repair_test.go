package plan

import (
	"testing"

	"daytrip/internal/modules/place"
)

func countType(items []CourseItem, typ string) int {
	n := 0
	for _, it := range items {
		if it.Type == typ {
			n++
		}
	}
	return n
}

func TestRepair_BackfillsEmptyCourse(t *testing.T) {
	c := testCandidates()
	used := make(map[string]bool)

	got := Repair(nil, c, used)

	if len(got) != CourseLength {
		t.Fatalf("course length = %d, want %d", len(got), CourseLength)
	}
	if n := countType(got, TypeEatery); n < MinEateries {
		t.Errorf("eatery count = %d, want >= %d", n, MinEateries)
	}
	for i, it := range got {
		if it.Order != i+1 {
			t.Errorf("item %d order = %d, want %d", i, it.Order, i+1)
		}
	}
}

func TestRepair_PrefersRestaurantTaggedEateries(t *testing.T) {
	c := testCandidates()
	used := make(map[string]bool)

	got := Repair(nil, c, used)

	// 양평해장국 (한식당) and 서산횟집 (횟집) should be pulled before 바다카페.
	for _, it := range got {
		if it.Name == "바다카페" {
			t.Errorf("café chosen while restaurant-tagged eateries were unused")
		}
	}
}

func TestRepair_DropsCrossPlanDuplicates(t *testing.T) {
	c := testCandidates()
	used := make(map[string]bool)

	itemA := attractionCourseItem(c.Attractions[0], 1)
	first := Repair([]CourseItem{itemA}, c, used)
	second := Repair([]CourseItem{itemA}, c, used)

	seen := make(map[string]bool)
	for _, it := range first {
		seen[it.Name] = true
	}
	for _, it := range second {
		if seen[it.Name] {
			t.Errorf("name %q appears in both plans", it.Name)
		}
	}
}

func TestRepair_DropsInPlanDuplicates(t *testing.T) {
	c := testCandidates()
	used := make(map[string]bool)

	itemA := attractionCourseItem(c.Attractions[0], 1)
	got := Repair([]CourseItem{itemA, itemA, itemA}, c, used)

	names := make(map[string]int)
	for _, it := range got {
		names[it.Name]++
	}
	if names[itemA.Name] != 1 {
		t.Errorf("duplicate name kept %d times, want 1", names[itemA.Name])
	}
}

func TestRepair_EateryPoolExhaustion(t *testing.T) {
	// Only one eatery exists in the whole candidate set: the plan cannot
	// reach two eatery stops, but the length invariant still holds.
	c := CandidateSet{
		Attractions: testCandidates().Attractions,
		Eateries:    []place.Eatery{{ID: 11, Name: "양평해장국", Type: "한식당"}},
	}
	used := make(map[string]bool)

	got := Repair(nil, c, used)

	if len(got) != CourseLength {
		t.Fatalf("course length = %d, want %d", len(got), CourseLength)
	}
	if n := countType(got, TypeEatery); n != 1 {
		t.Errorf("eatery count = %d, want 1 (pool exhausted)", n)
	}
}

func TestRepair_TotalPoolExhaustion(t *testing.T) {
	// Two attractions and one eatery in total: the course stays short.
	c := CandidateSet{
		Attractions: testCandidates().Attractions[:2],
		Eateries:    []place.Eatery{{ID: 11, Name: "양평해장국", Type: "한식당"}},
	}
	used := make(map[string]bool)

	got := Repair(nil, c, used)

	if len(got) != 3 {
		t.Fatalf("course length = %d, want 3 with exhausted pools", len(got))
	}
	for i, it := range got {
		if it.Order != i+1 {
			t.Errorf("item %d order = %d, want %d", i, it.Order, i+1)
		}
	}
}

func TestRepair_AllAttractionCourseStillGetsEateries(t *testing.T) {
	// Five resolved attractions already fill the course; the eatery top-up
	// must survive the cut, displacing tail attractions instead.
	c := serviceCandidates()
	used := make(map[string]bool)

	var items []CourseItem
	for i := 0; i < CourseLength; i++ {
		items = append(items, attractionCourseItem(c.Attractions[i], i+1))
	}
	got := Repair(items, c, used)

	if len(got) != CourseLength {
		t.Fatalf("course length = %d, want %d", len(got), CourseLength)
	}
	if n := countType(got, TypeEatery); n < MinEateries {
		t.Errorf("eatery count = %d, want >= %d", n, MinEateries)
	}
	for i, it := range got {
		if it.Order != i+1 {
			t.Errorf("item %d order = %d, want %d", i, it.Order, i+1)
		}
	}
}

func TestRepair_TruncationReleasesDroppedNames(t *testing.T) {
	c := serviceCandidates()
	used := make(map[string]bool)

	var items []CourseItem
	for i := 0; i < CourseLength; i++ {
		items = append(items, attractionCourseItem(c.Attractions[i], i+1))
	}
	got := Repair(items, c, used)

	kept := make(map[string]bool, len(got))
	for _, it := range got {
		kept[it.Name] = true
	}
	for i := 0; i < CourseLength; i++ {
		name := c.Attractions[i].Name
		if !kept[name] && used[name] {
			t.Errorf("dropped name %q still claimed in used set", name)
		}
	}
}

func TestRepair_TruncatesOverfullCourse(t *testing.T) {
	c := testCandidates()
	used := make(map[string]bool)

	// Six resolved attractions: repair adds eateries then truncates.
	items := []CourseItem{
		attractionCourseItem(c.Attractions[0], 1),
		attractionCourseItem(c.Attractions[1], 2),
		attractionCourseItem(c.Attractions[2], 3),
		attractionCourseItem(c.Attractions[3], 4),
		eateryCourseItem(c.Eateries[0], 5),
		eateryCourseItem(c.Eateries[2], 6),
	}
	got := Repair(items, c, used)

	if len(got) != CourseLength {
		t.Fatalf("course length = %d, want %d", len(got), CourseLength)
	}
	if got[CourseLength-1].Order != CourseLength {
		t.Errorf("last order = %d, want %d", got[CourseLength-1].Order, CourseLength)
	}
}
