package categorize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jbrukh/bayesian"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"

	"github.com/hisabkitab/bills-tracker/internal/common"
)

// The trained-model tier is a TF-IDF naive Bayes classifier persisted as a
// gob artifact plus a manifest. The manifest pins the gob's checksum so a
// partially written or hand-edited artifact is rejected at load time and
// the cascade degrades to the keyword tier instead of mispredicting.

const (
	classifierFile = "classifier.gob"
	manifestFile   = "manifest.json"
	backupSuffix   = ".bak"

	minTrainingSamples = 10
	holdoutFraction    = 0.2
)

// manifestSchema validates manifest.json before the gob is trusted.
const manifestSchema = `{
	"type": "object",
	"required": ["classes", "samples", "accuracy", "checksum", "trained_at"],
	"properties": {
		"classes":    {"type": "array", "items": {"type": "string"}, "minItems": 2},
		"samples":    {"type": "integer", "minimum": 1},
		"accuracy":   {"type": "number", "minimum": 0, "maximum": 1},
		"checksum":   {"type": "string", "pattern": "^[0-9a-f]{64}$"},
		"trained_at": {"type": "string"}
	}
}`

var compiledManifestSchema = jsonschema.MustCompileString("manifest.schema.json", manifestSchema)

// Manifest describes a persisted classifier artifact.
type Manifest struct {
	Classes   []string `json:"classes"`
	Samples   int      `json:"samples"`
	Accuracy  float64  `json:"accuracy"`
	Checksum  string   `json:"checksum"`
	TrainedAt string   `json:"trained_at"`
}

// TrainingSample is one manually labeled bill used to fit the model.
type TrainingSample struct {
	Vendor        string
	OCRText       string
	InvoiceNumber string
	Amount        *decimal.Decimal
	Category      string
}

// Model wraps a fitted classifier together with its manifest.
type Model struct {
	classifier *bayesian.Classifier
	manifest   Manifest
}

// Manifest returns the artifact metadata the model was loaded with.
func (m *Model) Manifest() Manifest { return m.manifest }

var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize turns a labeled or unlabeled bill into classifier features:
// unigrams and bigrams over the vendor name, OCR text and invoice number,
// plus a coarse amount bucket.
func Tokenize(vendor, ocrText, invoiceNumber string, amount *decimal.Decimal) []string {
	text := strings.ToLower(vendor + " " + ocrText + " " + invoiceNumber)

	var words []string
	for _, w := range tokenSplit.Split(text, -1) {
		if len(w) < 2 || isAllDigits(w) {
			continue
		}
		words = append(words, w)
	}

	tokens := make([]string, 0, len(words)*2)
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+"_"+words[i+1])
	}

	tokens = append(tokens, amountBucket(amount))
	return tokens
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func amountBucket(amount *decimal.Decimal) string {
	if amount == nil {
		return "amt_unknown"
	}
	switch {
	case amount.LessThan(decimal.NewFromInt(100)):
		return "amt_low"
	case amount.LessThan(decimal.NewFromInt(1000)):
		return "amt_medium"
	case amount.LessThan(decimal.NewFromInt(10000)):
		return "amt_high"
	default:
		return "amt_very_high"
	}
}

// Train fits a classifier on manually labeled bills and writes the artifact
// under modelDir. Accuracy is measured on a stratified holdout before the
// final model is refit on all samples.
func Train(samples []TrainingSample, modelDir string) (*Model, error) {
	if len(samples) < minTrainingSamples {
		return nil, common.NewAppError("TRAIN_ERROR",
			fmt.Sprintf("need at least %d labeled bills, have %d", minTrainingSamples, len(samples)),
			common.ErrInsufficientData)
	}

	byClass := make(map[string][]TrainingSample)
	for _, s := range samples {
		if s.Category == "" {
			continue
		}
		byClass[s.Category] = append(byClass[s.Category], s)
	}
	if len(byClass) < 2 {
		return nil, common.NewAppError("TRAIN_ERROR",
			"need labeled bills from at least 2 categories", common.ErrInsufficientData)
	}

	classes := make([]bayesian.Class, 0, len(byClass))
	classNames := make([]string, 0, len(byClass))
	for name := range byClass {
		classes = append(classes, bayesian.Class(name))
		classNames = append(classNames, name)
	}

	// Stratified split: classes with a single sample train only.
	var train, holdout []TrainingSample
	for _, group := range byClass {
		cut := len(group) - int(float64(len(group))*holdoutFraction)
		if cut < 1 {
			cut = 1
		}
		train = append(train, group[:cut]...)
		holdout = append(holdout, group[cut:]...)
	}

	accuracy := evaluate(classes, train, holdout)

	final := bayesian.NewClassifierTfIdf(classes...)
	for _, s := range samples {
		final.Learn(Tokenize(s.Vendor, s.OCRText, s.InvoiceNumber, s.Amount), bayesian.Class(s.Category))
	}
	final.ConvertTermsFreqToTfIdf()

	m := &Model{
		classifier: final,
		manifest: Manifest{
			Classes:   classNames,
			Samples:   len(samples),
			Accuracy:  accuracy,
			TrainedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if err := m.save(modelDir); err != nil {
		return nil, err
	}

	slog.Info("model.trained",
		"samples", len(samples),
		"classes", len(classNames),
		"holdout", len(holdout),
		"accuracy", accuracy,
	)
	return m, nil
}

func evaluate(classes []bayesian.Class, train, holdout []TrainingSample) float64 {
	if len(holdout) == 0 {
		return 0
	}
	c := bayesian.NewClassifierTfIdf(classes...)
	for _, s := range train {
		c.Learn(Tokenize(s.Vendor, s.OCRText, s.InvoiceNumber, s.Amount), bayesian.Class(s.Category))
	}
	c.ConvertTermsFreqToTfIdf()

	correct := 0
	for _, s := range holdout {
		_, idx, _ := c.LogScores(Tokenize(s.Vendor, s.OCRText, s.InvoiceNumber, s.Amount))
		if string(classes[idx]) == s.Category {
			correct++
		}
	}
	return float64(correct) / float64(len(holdout))
}

// Predict classifies a bill and returns the winning category with its
// posterior probability.
func (m *Model) Predict(vendor, ocrText, invoiceNumber string, amount *decimal.Decimal) (category string, confidence float64) {
	tokens := Tokenize(vendor, ocrText, invoiceNumber, amount)
	probs, idx, _ := m.classifier.ProbScores(tokens)
	return string(m.classifier.Classes[idx]), probs[idx]
}

// save writes the gob and manifest into a staging directory first and
// renames them into place. Readers never see a partially written file.
func (m *Model) save(modelDir string) error {
	if err := os.MkdirAll(modelDir, 0o755); err != nil {
		return common.WrapError(err, "create model directory")
	}
	staging, err := os.MkdirTemp(modelDir, ".staging-")
	if err != nil {
		return common.WrapError(err, "create staging directory")
	}
	defer os.RemoveAll(staging)

	gobPath := filepath.Join(staging, classifierFile)
	if err := m.classifier.WriteToFile(gobPath); err != nil {
		return common.WrapError(err, "write classifier gob")
	}

	sum, err := fileChecksum(gobPath)
	if err != nil {
		return err
	}
	m.manifest.Checksum = sum

	manifestBytes, err := json.MarshalIndent(m.manifest, "", "  ")
	if err != nil {
		return common.WrapError(err, "marshal manifest")
	}
	manifestPath := filepath.Join(staging, manifestFile)
	if err := os.WriteFile(manifestPath, manifestBytes, 0o644); err != nil {
		return common.WrapError(err, "write manifest")
	}

	// The previous pair moves aside before the swap; a crash between the
	// two installs must not destroy the last working artifact.
	for _, name := range []string{classifierFile, manifestFile} {
		cur := filepath.Join(modelDir, name)
		if _, err := os.Stat(cur); err == nil {
			if err := os.Rename(cur, cur+backupSuffix); err != nil {
				return common.WrapError(err, "back up previous model artifact")
			}
		}
	}

	if err := os.Rename(gobPath, filepath.Join(modelDir, classifierFile)); err != nil {
		return common.WrapError(err, "install classifier gob")
	}
	if err := os.Rename(manifestPath, filepath.Join(modelDir, manifestFile)); err != nil {
		return common.WrapError(err, "install manifest")
	}
	return nil
}

// Load reads and verifies the artifact under modelDir. Every failure mode
// wraps ErrNoModel so callers can degrade to keyword categorization.
func Load(modelDir string) (*Model, error) {
	manifestPath := filepath.Join(modelDir, manifestFile)
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, common.NewAppError("MODEL_LOAD_ERROR", "manifest not readable", common.ErrNoModel)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewAppError("MODEL_LOAD_ERROR", "manifest is not valid JSON", common.ErrNoModel)
	}
	if err := compiledManifestSchema.Validate(doc); err != nil {
		return nil, common.NewAppError("MODEL_LOAD_ERROR", "manifest failed schema validation", common.ErrNoModel)
	}

	var manifest Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, common.NewAppError("MODEL_LOAD_ERROR", "manifest not decodable", common.ErrNoModel)
	}

	gobPath := filepath.Join(modelDir, classifierFile)
	sum, err := fileChecksum(gobPath)
	if err != nil {
		return nil, common.NewAppError("MODEL_LOAD_ERROR", "classifier gob not readable", common.ErrNoModel)
	}
	if sum != manifest.Checksum {
		return nil, common.NewAppError("MODEL_LOAD_ERROR", "classifier gob checksum mismatch", common.ErrNoModel)
	}

	classifier, err := bayesian.NewClassifierFromFile(gobPath)
	if err != nil {
		return nil, common.NewAppError("MODEL_LOAD_ERROR", "classifier gob not decodable", common.ErrNoModel)
	}

	slog.Info("model.loaded",
		"dir", modelDir,
		"classes", len(manifest.Classes),
		"samples", manifest.Samples,
		"accuracy", manifest.Accuracy,
	)
	return &Model{classifier: classifier, manifest: manifest}, nil
}

func fileChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", common.WrapError(err, "read file for checksum")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
