package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/internal/entity"
)

func TestScoreKeywordsFormula(t *testing.T) {
	// One hit: (6/10 + 1) / 2 keywords * 0.8.
	conf := ScoreKeywords("COFFEE shop downtown", []string{"coffee", "tea"})
	assert.InDelta(t, (0.6+1.0)/2.0*0.8, conf, 1e-9)

	// Two hits over three keywords stay under the cap.
	conf = ScoreKeywords("coffee and tea house", []string{"coffee", "tea", "juice"})
	assert.InDelta(t, ((0.6+1.0)+(0.3+1.0))/3.0*0.8, conf, 1e-9)

	// Two hits over two keywords would score 1.16; the cap clamps it.
	conf = ScoreKeywords("coffee and tea house", []string{"coffee", "tea"})
	assert.InDelta(t, 0.95, conf, 1e-9)
}

func TestScoreKeywordsCap(t *testing.T) {
	// A single long keyword hit over a one-element list would exceed the cap.
	conf := ScoreKeywords("supercalifragilistic purchase", []string{"supercalifragilistic"})
	assert.InDelta(t, 0.95, conf, 1e-9)
}

func TestScoreKeywordsNoHits(t *testing.T) {
	assert.Zero(t, ScoreKeywords("totally unrelated", []string{"coffee", "tea"}))
	assert.Zero(t, ScoreKeywords("anything", nil))
}

func TestBestKeywordCategory(t *testing.T) {
	categories := []entity.Category{
		{ID: 1, Name: "Food & Dining", Keywords: "restaurant,cafe,food,lunch"},
		{ID: 2, Name: "Transportation", Keywords: "fuel,taxi,parking"},
	}

	name, conf, ok := BestKeywordCategory("lunch at the cafe", categories)
	require.True(t, ok)
	assert.Equal(t, "Food & Dining", name)
	assert.Greater(t, conf, 0.3)

	name, _, ok = BestKeywordCategory("taxi fare and parking", categories)
	require.True(t, ok)
	assert.Equal(t, "Transportation", name)

	_, _, ok = BestKeywordCategory("nothing matches here", categories)
	assert.False(t, ok)
}
