// README: Plan orchestrator; extract, sample, generate, parse, resolve, repair.
package plan

import (
	"context"

	"go.uber.org/zap"

	"daytrip/internal/ai"
	"daytrip/internal/modules/place"
)

// Catalog is the sampling surface the pipeline needs from the place module.
// Either query may return fewer items than limit.
type Catalog interface {
	SampleAttractions(ctx context.Context, area, category string, limit int) ([]place.Attraction, error)
	SampleEateries(ctx context.Context, limit int) ([]place.Eatery, error)
}

// Limits bounds the candidate sample drawn for one request.
type Limits struct {
	Attractions int
	Eateries    int
}

// DefaultLimits fits three 5-stop plans with headroom for repair backfill.
var DefaultLimits = Limits{Attractions: 15, Eateries: 20}

// PlanCount is how many plans one orchestration run requests and returns.
const PlanCount = 3

type Service struct {
	catalog   Catalog
	provider  ai.CompletionProvider
	extractor *Extractor
	limits    Limits
	log       *zap.SugaredLogger
}

func NewService(catalog Catalog, provider ai.CompletionProvider, extractor *Extractor, limits Limits, log *zap.SugaredLogger) *Service {
	if limits.Attractions <= 0 {
		limits.Attractions = DefaultLimits.Attractions
	}
	if limits.Eateries <= 0 {
		limits.Eateries = DefaultLimits.Eateries
	}
	return &Service{
		catalog:   catalog,
		provider:  provider,
		extractor: extractor,
		limits:    limits,
		log:       log,
	}
}

// GeneratePlans runs the full pipeline for one request. Every failure mode
// degrades to fewer or zero plans; nothing here is fatal to the caller, which
// renders "no plan available" on an empty result. The used-name set is scoped
// to this call, so concurrent requests stay isolated.
func (s *Service) GeneratePlans(ctx context.Context, freeText, area, category string) []ItineraryPlan {
	cond := s.extractor.Extract(ctx, freeText)

	// Extracted values win over caller parameters; both absent falls back to
	// the coastal default.
	if cond.Area == "" {
		cond.Area = area
	}
	if cond.Area == "" {
		cond.Area = AreaCoast
	}
	sampleCategory := cond.Theme
	if sampleCategory == "" {
		sampleCategory = category
	}

	attractions, err := s.catalog.SampleAttractions(ctx, cond.Area, sampleCategory, s.limits.Attractions)
	if err != nil {
		s.log.Errorw("sample attractions failed", "area", cond.Area, "err", err)
		return []ItineraryPlan{}
	}
	eateries, err := s.catalog.SampleEateries(ctx, s.limits.Eateries)
	if err != nil {
		s.log.Errorw("sample eateries failed", "err", err)
		return []ItineraryPlan{}
	}
	candidates := CandidateSet{Attractions: attractions, Eateries: eateries}

	// One completion call covers all plans.
	prompt := BuildPrompt(cond, candidates)
	completion, err := s.provider.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		s.log.Errorw("completion call failed", "err", err)
		return []ItineraryPlan{}
	}

	rawPlans, err := ParsePlans(completion)
	if err != nil {
		s.log.Warnw("completion unparsable", "err", err)
		return []ItineraryPlan{}
	}
	if len(rawPlans) > PlanCount {
		rawPlans = rawPlans[:PlanCount]
	}

	used := make(map[string]bool)
	plans := make([]ItineraryPlan, 0, len(rawPlans))
	for _, rp := range rawPlans {
		resolved := make([]CourseItem, 0, len(rp.Course))
		for _, raw := range rp.Course {
			if item := Resolve(raw, candidates); item != nil {
				resolved = append(resolved, *item)
			}
		}
		course := Repair(resolved, candidates, used)
		plans = append(plans, ItineraryPlan{Summary: rp.Summary, Course: course})
	}

	s.log.Infow("plans generated",
		"count", len(plans), "area", cond.Area, "theme", cond.Theme,
		"companion", cond.Companion, "duration", cond.Duration)
	return plans
}
