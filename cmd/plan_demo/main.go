// README: CLI demo; runs the full condition-extraction and plan-generation pipeline without a database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"daytrip/internal/ai"
	"daytrip/internal/modules/place"
	"daytrip/internal/modules/plan"
)

func main() {
	sentence := flag.String("text", "가족과 당일치기로 바다 쪽 감성적인 곳 가고 싶어", "travel request sentence")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	logger, _ := zap.NewDevelopment()
	sugar := logger.Sugar()

	extractor := plan.NewExtractor(plan.DefaultVocabulary(), provider, sugar)

	fmt.Printf("User: %s\n", *sentence)
	cond := extractor.Extract(ctx, *sentence)
	fmt.Printf("Companion: %s\n", cond.Companion)
	fmt.Printf("Theme: %s\n", cond.Theme)
	fmt.Printf("Duration: %s\n", cond.Duration)
	fmt.Printf("Area: %s\n", cond.Area)

	candidates := sampleCandidates()
	prompt := plan.BuildPrompt(cond, candidates)

	raw, err := provider.Complete(ctx, plan.SystemPrompt, prompt)
	if err != nil {
		log.Fatalf("Error generating plans: %v", err)
	}

	rawPlans, err := plan.ParsePlans(raw)
	if err != nil {
		log.Fatalf("Error parsing model output: %v", err)
	}

	used := make(map[string]bool)
	for i, rp := range rawPlans {
		fmt.Printf("\n== Plan %d: %s ==\n", i+1, rp.Summary)
		var items []plan.CourseItem
		for _, rawItem := range rp.Course {
			if item := plan.Resolve(rawItem, candidates); item != nil {
				items = append(items, *item)
			}
		}
		for _, item := range plan.Repair(items, candidates, used) {
			fmt.Printf("%d. [%s] %s - %s\n", item.Order, item.Type, item.Name, item.Description)
		}
	}
}

// sampleCandidates is a small fixed catalog so the demo runs without Postgres.
func sampleCandidates() plan.CandidateSet {
	return plan.CandidateSet{
		Attractions: []place.Attraction{
			{ID: 1, Name: "간월암", Area: "바다", Category: "감성적인", Description: "서해 낙조가 아름다운 암자"},
			{ID: 2, Name: "해미읍성", Area: "내륙", Category: "역사", Description: "조선시대 읍성"},
			{ID: 3, Name: "개심사", Area: "내륙", Category: "힐링", Description: "봄 왕벚꽃 명소"},
			{ID: 4, Name: "팔봉산", Area: "내륙", Category: "액티비티", Description: "여덟 봉우리 등산 코스"},
			{ID: 5, Name: "황금산", Area: "바다", Category: "자연", Description: "코끼리바위 해안 절경"},
		},
		Eateries: []place.Eatery{
			{ID: 1, Name: "서산횟집", Type: "횟집", Location: "바다"},
			{ID: 2, Name: "양평해장국", Type: "한식당", Location: "내륙"},
			{ID: 3, Name: "바다카페", Type: "카페", Location: "바다"},
		},
	}
}
