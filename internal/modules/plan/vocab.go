// README: Extraction vocabulary; companion/theme/area keyword tables injected into the extractor.
package plan

import "regexp"

// AreaMapping maps one surface keyword to a canonical area label. Mappings are
// an ordered slice, not a map: the first keyword contained in the sentence wins.
type AreaMapping struct {
	Keyword string
	Area    string
}

// ThemePattern pairs a canonical theme with a regex covering its inflected or
// variant word forms.
type ThemePattern struct {
	Theme   string
	Pattern *regexp.Regexp
}

// Vocabulary is the immutable keyword configuration for condition extraction.
// Construct alternates in tests; production code uses DefaultVocabulary.
type Vocabulary struct {
	// Companions is scanned in order for substring containment.
	Companions []string
	// CompanionParticle captures "<noun><particle>" phrasings like 엄마랑, 친구와.
	CompanionParticle *regexp.Regexp
	// Themes is the closed theme vocabulary, scanned in order.
	Themes []string
	// SentimentalRoot: any theme keyword starting with this root collapses to
	// SentimentalTheme (감성, 감성적, 감성적인 are all the same theme).
	SentimentalRoot  string
	SentimentalTheme string
	// ThemePatterns is the second-tier regex table, scanned in order.
	ThemePatterns []ThemePattern
	// Areas is the area synonym table, scanned in order.
	Areas []AreaMapping
}

// Canonical area labels.
const (
	AreaCoast  = "바다"
	AreaInland = "내륙"
)

// DefaultDuration is assumed when the sentence carries no duration at all.
const DefaultDuration = "당일치기"

var (
	durationNightsRe  = regexp.MustCompile(`([0-9]+)\s*박\s*([0-9]+)\s*일`)
	companionSuffixRe = regexp.MustCompile(`([가-힣]{1,6})(?:이랑|랑|와|과|하고)(?:\s|$)`)
)

// DefaultVocabulary returns the production keyword tables for Seosan trips.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Companions: []string{
			"엄마", "아빠", "어머니", "아버지", "부모님",
			"가족", "친구", "연인", "남자친구", "여자친구",
			"아이", "애기", "형", "누나", "동생", "혼자",
		},
		CompanionParticle: companionSuffixRe,
		Themes: []string{
			"감성적인", "감성", "힐링", "먹방", "역사", "자연", "액티비티",
		},
		SentimentalRoot:  "감성",
		SentimentalTheme: "감성적인",
		ThemePatterns: []ThemePattern{
			{Theme: "감성적인", Pattern: regexp.MustCompile(`감성(적|스러)`)},
			{Theme: "힐링", Pattern: regexp.MustCompile(`힐링|휴식|쉬(고|러|면서)|여유`)},
			{Theme: "먹방", Pattern: regexp.MustCompile(`먹방|맛집|먹(으러|거리)`)},
			{Theme: "역사", Pattern: regexp.MustCompile(`역사|유적|문화재`)},
			{Theme: "자연", Pattern: regexp.MustCompile(`자연|숲|산책`)},
			{Theme: "액티비티", Pattern: regexp.MustCompile(`액티비티|체험|레저`)},
		},
		Areas: []AreaMapping{
			{Keyword: "바다", Area: AreaCoast},
			{Keyword: "바닷가", Area: AreaCoast},
			{Keyword: "해변", Area: AreaCoast},
			{Keyword: "해안", Area: AreaCoast},
			{Keyword: "서해", Area: AreaCoast},
			{Keyword: "내륙", Area: AreaInland},
			{Keyword: "산", Area: AreaInland},
			{Keyword: "시내", Area: AreaInland},
			{Keyword: "도심", Area: AreaInland},
		},
	}
}
