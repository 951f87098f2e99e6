// README: Condition extractor; free-text sentence to structured travel preferences.
package plan

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"daytrip/internal/ai"
)

// Extractor derives TravelConditions from a free-form sentence. It never
// fails: fields that cannot be determined stay empty, except Duration which
// always defaults to DefaultDuration.
type Extractor struct {
	vocab      Vocabulary
	classifier ai.CompletionProvider
	log        *zap.SugaredLogger
}

// NewExtractor builds an Extractor. classifier is used only for the last-tier
// theme fallback and may be nil, in which case the fallback is skipped.
func NewExtractor(vocab Vocabulary, classifier ai.CompletionProvider, log *zap.SugaredLogger) *Extractor {
	return &Extractor{vocab: vocab, classifier: classifier, log: log}
}

// Extract computes each condition field independently from the normalized
// sentence. The only network dependency is the optional theme classification
// fallback; its failure is swallowed and leaves Theme empty.
func (e *Extractor) Extract(ctx context.Context, sentence string) TravelConditions {
	normalized := normalizeSpace(sentence)

	cond := TravelConditions{Duration: DefaultDuration}
	if normalized == "" {
		return cond
	}

	cond.Companion = e.extractCompanion(normalized)
	cond.Duration = e.extractDuration(normalized)
	cond.Area = e.extractArea(normalized)
	cond.Theme = e.extractTheme(ctx, normalized)
	return cond
}

func (e *Extractor) extractCompanion(s string) string {
	for _, token := range e.vocab.Companions {
		if strings.Contains(s, token) {
			return token
		}
	}
	if e.vocab.CompanionParticle != nil {
		if m := e.vocab.CompanionParticle.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return ""
}

func (e *Extractor) extractDuration(s string) string {
	if m := durationNightsRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s박 %s일", m[1], m[2])
	}
	switch {
	case strings.Contains(s, "당일치기"), strings.Contains(s, "당일"), strings.Contains(s, "오늘"):
		return "당일치기"
	case strings.Contains(s, "주말"):
		return "주말"
	}
	return DefaultDuration
}

func (e *Extractor) extractArea(s string) string {
	for _, m := range e.vocab.Areas {
		if strings.Contains(s, m.Keyword) {
			return m.Area
		}
	}
	return ""
}

func (e *Extractor) extractTheme(ctx context.Context, s string) string {
	// Tier 1: literal containment against the closed vocabulary.
	for _, kw := range e.vocab.Themes {
		if strings.Contains(s, kw) {
			if strings.HasPrefix(kw, e.vocab.SentimentalRoot) {
				return e.vocab.SentimentalTheme
			}
			return kw
		}
	}

	// Tier 2: regex table for inflected or variant word forms.
	for _, tp := range e.vocab.ThemePatterns {
		if tp.Pattern.MatchString(s) {
			return tp.Theme
		}
	}

	// Tier 3: single classification call. Absence is a normal outcome here,
	// so any failure degrades to an empty theme instead of propagating.
	if e.classifier == nil {
		return ""
	}
	theme, err := e.classifyTheme(ctx, s)
	if err != nil {
		e.log.Warnw("theme classification failed", "err", err)
		return ""
	}
	return theme
}

func (e *Extractor) classifyTheme(ctx context.Context, s string) (string, error) {
	system := "당신은 여행 문장에서 테마를 분류하는 분류기입니다."
	user := fmt.Sprintf(
		"다음 문장의 여행 테마를 [%s] 중 하나로만 답해줘. 해당 없으면 '없음'이라고 답해줘.\n문장: %s",
		strings.Join(e.vocab.Themes, ", "), s)

	out, err := e.classifier.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}
	theme := strings.TrimSpace(out)
	if theme == "" || theme == "없음" {
		return "", nil
	}
	if strings.HasPrefix(theme, e.vocab.SentimentalRoot) {
		return e.vocab.SentimentalTheme, nil
	}
	return theme, nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
