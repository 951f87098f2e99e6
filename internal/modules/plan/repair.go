// README: Course repairer; enforces the structural invariants the model is not
// trusted to honor.
package plan

import "strings"

// restaurantHints mark eatery tags that plausibly serve a meal. Backfill
// prefers these over cafés and retail when a course is short on eateries.
var restaurantHints = []string{
	"식당", "한식", "중식", "일식", "양식", "분식", "해장국", "횟집", "음식",
}

func looksLikeRestaurant(tag string) bool {
	for _, h := range restaurantHints {
		if strings.Contains(tag, h) {
			return true
		}
	}
	return false
}

// Repair forces one resolved course into shape: exactly CourseLength items,
// at least MinEateries eatery stops when the pool allows, no name reused
// within the plan or across plans sharing the used set. used is the
// cross-plan accumulator; the caller threads one instance through all plans
// of a run, so whichever plan is repaired first claims a contested name.
// The requested stop-type sequence is not re-validated after backfill; the
// binding invariant is count-based only.
func Repair(items []CourseItem, c CandidateSet, used map[string]bool) []CourseItem {
	// 1. Drop duplicates, claim surviving names.
	kept := make([]CourseItem, 0, CourseLength)
	for _, it := range items {
		if used[it.Name] {
			continue
		}
		used[it.Name] = true
		kept = append(kept, it)
	}

	// 2. Ensure the minimum eatery count, restaurant-tagged candidates first.
	eateries := 0
	for _, it := range kept {
		if it.Type == TypeEatery {
			eateries++
		}
	}
	for _, preferRestaurant := range []bool{true, false} {
		for _, e := range c.Eateries {
			if eateries >= MinEateries {
				break
			}
			if used[e.Name] || (preferRestaurant && !looksLikeRestaurant(e.Type)) {
				continue
			}
			used[e.Name] = true
			kept = append(kept, eateryCourseItem(e, 0))
			eateries++
		}
	}

	// 3. Backfill to full length: unused attractions first, then eateries.
	for _, a := range c.Attractions {
		if len(kept) >= CourseLength {
			break
		}
		if used[a.Name] {
			continue
		}
		used[a.Name] = true
		kept = append(kept, attractionCourseItem(a, 0))
	}
	for _, e := range c.Eateries {
		if len(kept) >= CourseLength {
			break
		}
		if used[e.Name] {
			continue
		}
		used[e.Name] = true
		kept = append(kept, eateryCourseItem(e, 0))
	}

	// 4. Trim the surplus, dropping attraction stops before eatery stops so
	// the minimum eatery count survives the cut. Dropped names are released
	// so later plans in the run can still use them.
	if len(kept) > CourseLength {
		surplus := len(kept) - CourseLength
		drop := make(map[int]bool, surplus)
		for _, typ := range []string{TypeAttraction, TypeEatery} {
			for i := len(kept) - 1; i >= 0 && surplus > 0; i-- {
				if drop[i] || kept[i].Type != typ {
					continue
				}
				drop[i] = true
				surplus--
			}
		}
		trimmed := make([]CourseItem, 0, CourseLength)
		for i, it := range kept {
			if drop[i] {
				delete(used, it.Name)
				continue
			}
			trimmed = append(trimmed, it)
		}
		kept = trimmed
	}

	// 5. Renumber positionally.
	for i := range kept {
		kept[i].Order = i + 1
	}
	return kept
}
