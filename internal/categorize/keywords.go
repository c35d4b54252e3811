package categorize

import (
	"strings"

	"github.com/hisabkitab/bills-tracker/internal/entity"
)

// Keyword fallback is the last categorization tier: it needs no CSV row and
// no trained model, only the keyword lists stored on the categories.

const (
	keywordDamping = 0.8
	keywordCap     = 0.95
)

// ScoreKeywords matches a category's keyword list against the bill text
// and returns a confidence in [0, keywordCap]. Longer keywords count for
// more since they are less likely to collide by accident.
func ScoreKeywords(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(text)

	var score float64
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, kw) {
			score += float64(len(kw))/10.0 + 1.0
		}
	}
	if score == 0 {
		return 0
	}

	conf := score / float64(len(keywords)) * keywordDamping
	if conf > keywordCap {
		conf = keywordCap
	}
	return conf
}

// BestKeywordCategory scores every category against the text and returns
// the winner, or ok=false when nothing matched at all.
func BestKeywordCategory(text string, categories []entity.Category) (name string, confidence float64, ok bool) {
	for _, cat := range categories {
		conf := ScoreKeywords(text, cat.KeywordsList())
		if conf > confidence {
			name = cat.Name
			confidence = conf
		}
	}
	return name, confidence, confidence > 0
}
