package categorize

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/internal/common"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func trainingFixture() []TrainingSample {
	food := []string{"STARBUCKS", "Himalayan Java", "Bakery Cafe", "McDonalds", "KFC Restaurant", "Roadhouse Cafe"}
	fuel := []string{"Shell Station", "Exxon Fuel", "Chevron Gas", "NOC Petrol Pump", "Total Fuel Stop", "BP Station"}

	var samples []TrainingSample
	for _, v := range food {
		samples = append(samples, TrainingSample{
			Vendor:   v,
			OCRText:  v + " coffee latte sandwich meal",
			Amount:   dec("12.50"),
			Category: "Food & Dining",
		})
	}
	for _, v := range fuel {
		samples = append(samples, TrainingSample{
			Vendor:   v,
			OCRText:  v + " petrol diesel litres pump",
			Amount:   dec("4500.00"),
			Category: "Transportation",
		})
	}
	return samples
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Starbucks", "grande latte", "INV-42", dec("12.50"))

	assert.Contains(t, tokens, "starbucks")
	assert.Contains(t, tokens, "latte")
	assert.Contains(t, tokens, "starbucks_grande")
	assert.Contains(t, tokens, "amt_low")
	// Pure digit runs are dropped; the hyphen splits the invoice number.
	assert.Contains(t, tokens, "inv")
	assert.NotContains(t, tokens, "42")
}

func TestAmountBuckets(t *testing.T) {
	assert.Equal(t, "amt_unknown", amountBucket(nil))
	assert.Equal(t, "amt_low", amountBucket(dec("99.99")))
	assert.Equal(t, "amt_medium", amountBucket(dec("100")))
	assert.Equal(t, "amt_high", amountBucket(dec("9999.99")))
	assert.Equal(t, "amt_very_high", amountBucket(dec("10000")))
}

func TestTrainRequiresEnoughSamples(t *testing.T) {
	_, err := Train(trainingFixture()[:5], t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInsufficientData))
}

func TestTrainRequiresTwoClasses(t *testing.T) {
	samples := trainingFixture()[:6]
	for len(samples) < 10 {
		samples = append(samples, samples[0])
	}
	_, err := Train(samples, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInsufficientData))
}

func TestTrainSaveLoadPredict(t *testing.T) {
	dir := t.TempDir()

	m, err := Train(trainingFixture(), dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, classifierFile))
	assert.FileExists(t, filepath.Join(dir, manifestFile))
	assert.Len(t, m.Manifest().Checksum, 64)
	assert.ElementsMatch(t, []string{"Food & Dining", "Transportation"}, m.Manifest().Classes)
	assert.Equal(t, 12, m.Manifest().Samples)

	loaded, err := Load(dir)
	require.NoError(t, err)

	cat, conf := loaded.Predict("Bakery Cafe", "coffee latte meal", "", dec("15.00"))
	assert.Equal(t, "Food & Dining", cat)
	assert.Greater(t, conf, 0.5)

	cat, _ = loaded.Predict("Shell Station", "petrol pump litres", "", dec("5000.00"))
	assert.Equal(t, "Transportation", cat)
}

func TestRetrainKeepsBackupPair(t *testing.T) {
	dir := t.TempDir()

	first, err := Train(trainingFixture(), dir)
	require.NoError(t, err)

	_, err = Train(trainingFixture(), dir)
	require.NoError(t, err)

	// The new pair loads; the previous pair survives beside it.
	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Manifest().Samples)

	assert.FileExists(t, filepath.Join(dir, classifierFile+backupSuffix))
	raw, err := os.ReadFile(filepath.Join(dir, manifestFile+backupSuffix))
	require.NoError(t, err)
	var backup Manifest
	require.NoError(t, json.Unmarshal(raw, &backup))
	assert.Equal(t, first.Manifest().Checksum, backup.Checksum)
}

func TestLoadRejectsMissingArtifact(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoModel))
}

func TestLoadRejectsTamperedGob(t *testing.T) {
	dir := t.TempDir()
	_, err := Train(trainingFixture(), dir)
	require.NoError(t, err)

	f, err := os.OpenFile(filepath.Join(dir, classifierFile), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte{0x00})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoModel))
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	_, err := Train(trainingFixture(), dir)
	require.NoError(t, err)

	// Strip a required field.
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFile), []byte(`{"classes":["a","b"]}`), 0o644))

	_, err = Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoModel))
}
