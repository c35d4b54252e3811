package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/entity"
)

func testCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Name: "Food & Dining", Keywords: "restaurant,cafe,food,lunch,coffee"},
		{ID: 2, Name: "Transportation", Keywords: "fuel,petrol,taxi,parking"},
	}
}

func newTestEngine(t *testing.T, csv string) *Engine {
	t.Helper()
	vm, err := NewVendorMap(writeVendorCSV(t, csv))
	require.NoError(t, err)
	return NewEngine(vm, testCategories())
}

func TestCategorizeStrongCSVMappingSkipsModel(t *testing.T) {
	e := newTestEngine(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n")

	a := e.Categorize(Input{Vendor: "Starbucks", OCRText: "grande latte"})
	assert.Equal(t, "Food & Dining", a.Category)
	assert.InDelta(t, 0.95, a.Confidence, 1e-9)
	assert.Equal(t, constants.MethodCSVMapping, a.Method)
}

func TestCategorizeCSVWithoutModel(t *testing.T) {
	// Weak mapping, no model attached: the mapping still wins, tagged as a
	// plain CSV assignment.
	e := newTestEngine(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.6\n")

	a := e.Categorize(Input{Vendor: "Starbucks"})
	assert.Equal(t, "Food & Dining", a.Category)
	assert.InDelta(t, 0.6, a.Confidence, 1e-9)
	assert.Equal(t, constants.MethodCSVMapping, a.Method)
}

func TestCategorizeAgreementBoost(t *testing.T) {
	e := newTestEngine(t, "vendor,category,confidence\nbakery cafe,Food & Dining,0.7\n")

	m, err := Train(trainingFixture(), t.TempDir())
	require.NoError(t, err)
	e.SetModel(m)

	a := e.Categorize(Input{
		Vendor:  "Bakery Cafe",
		OCRText: "coffee latte sandwich meal",
		Amount:  dec("12.50"),
	})
	assert.Equal(t, "Food & Dining", a.Category)
	assert.Equal(t, constants.MethodCSVMLAgreement, a.Method)
	assert.Greater(t, a.Confidence, 0.7)
	assert.LessOrEqual(t, a.Confidence, maxConfidence)
}

func TestCategorizeModelWinsWithoutMapping(t *testing.T) {
	e := newTestEngine(t, "vendor,category,confidence\n")

	m, err := Train(trainingFixture(), t.TempDir())
	require.NoError(t, err)
	e.SetModel(m)

	a := e.Categorize(Input{
		Vendor:  "Chevron Gas",
		OCRText: "petrol diesel litres pump",
		Amount:  dec("4200.00"),
	})
	assert.Equal(t, "Transportation", a.Category)
	assert.Equal(t, constants.MethodMLModel, a.Method)
	assert.GreaterOrEqual(t, a.Confidence, modelMinConfidence)
}

func TestCategorizeKeywordFallback(t *testing.T) {
	e := newTestEngine(t, "vendor,category,confidence\n")

	a := e.Categorize(Input{Vendor: "Corner Shop", OCRText: "petrol and parking receipt"})
	assert.Equal(t, "Transportation", a.Category)
	assert.Equal(t, constants.MethodKeywordFallback, a.Method)
	assert.Greater(t, a.Confidence, 0.0)
}

func TestCategorizeNothingMatches(t *testing.T) {
	e := newTestEngine(t, "vendor,category,confidence\n")

	a := e.Categorize(Input{Vendor: "zzzz", OCRText: "qqqq"})
	assert.Empty(t, a.Category)
	assert.False(t, a.Accepted(constants.MinConfidence))
}

func TestAssignmentAccepted(t *testing.T) {
	assert.True(t, Assignment{Category: "Food & Dining", Confidence: 0.31}.Accepted(0.3))
	assert.False(t, Assignment{Category: "Food & Dining", Confidence: 0.3}.Accepted(0.3))
	assert.False(t, Assignment{Confidence: 0.9}.Accepted(0.3))
}

func TestLoadModelMissingIsNonFatal(t *testing.T) {
	e := newTestEngine(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n")
	e.LoadModel(t.TempDir())

	a := e.Categorize(Input{Vendor: "starbucks"})
	assert.Equal(t, constants.MethodCSVMapping, a.Method)
}
