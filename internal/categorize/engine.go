// Package categorize assigns a spending category to an extracted bill.
// Three tiers run in a fixed cascade: the vendor CSV map, the trained
// classifier, and the category keyword lists. Each assignment carries the
// confidence and the method that produced it.
package categorize

import (
	"log/slog"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
)

// Thresholds governing when the model tier participates and how the two
// tiers are blended.
const (
	csvStrongThreshold = 0.8  // map result above this is final
	modelMinConfidence = 0.5  // model predictions below this are ignored
	agreementBoost     = 1.1  // both tiers naming the same category
	maxConfidence      = 0.99
)

// Assignment is the outcome of categorizing one bill.
type Assignment struct {
	Category   string
	Confidence float64
	Method     constants.CategorizationMethod
}

// Accepted reports whether the assignment clears the auto-categorization
// threshold.
func (a Assignment) Accepted(minConfidence float64) bool {
	return a.Category != "" && a.Confidence > minConfidence
}

// Input is the extracted bill material the cascade works from.
type Input struct {
	Vendor        string
	OCRText       string
	InvoiceNumber string
	Amount        *decimal.Decimal
}

// Engine runs the categorization cascade. The model handle sits behind an
// atomic pointer: SetModel swaps in a freshly trained model while
// categorization keeps running against the old one.
type Engine struct {
	vendorMap  *VendorMap
	model      atomic.Pointer[Model]
	categories []entity.Category
}

// NewEngine builds an engine over the vendor map and the category taxonomy
// (whose keyword lists feed the fallback tier). The model is optional;
// load or train one and attach it with SetModel.
func NewEngine(vendorMap *VendorMap, categories []entity.Category) *Engine {
	return &Engine{vendorMap: vendorMap, categories: categories}
}

// SetModel atomically swaps the classifier used by the model tier.
// A nil model disables the tier.
func (e *Engine) SetModel(m *Model) {
	if m == nil {
		e.model.Store(nil)
		return
	}
	e.model.Store(m)
}

// LoadModel attaches the artifact under modelDir. ErrNoModel failures are
// logged and swallowed: the engine stays usable without the model tier.
func (e *Engine) LoadModel(modelDir string) {
	m, err := Load(modelDir)
	if err != nil {
		slog.Warn("categorize.model_unavailable", "dir", modelDir, "error", err)
		return
	}
	e.SetModel(m)
}

// Categorize runs the cascade and returns the winning assignment.
// The zero Assignment (empty category) means no tier produced a match.
func (e *Engine) Categorize(in Input) Assignment {
	csvCat, csvConf, csvOK := e.vendorMap.Lookup(in.Vendor)

	// A confident map hit does not consult the model.
	if csvOK && csvConf > csvStrongThreshold {
		return e.log(in, Assignment{csvCat, csvConf, constants.MethodCSVMapping})
	}

	if m := e.model.Load(); m != nil {
		mlCat, mlConf := m.Predict(in.Vendor, in.OCRText, in.InvoiceNumber, in.Amount)
		if mlConf >= modelMinConfidence {
			switch {
			case csvOK && mlCat == csvCat:
				conf := max(csvConf, mlConf) * agreementBoost
				if conf > maxConfidence {
					conf = maxConfidence
				}
				return e.log(in, Assignment{csvCat, conf, constants.MethodCSVMLAgreement})
			case csvOK && csvConf >= mlConf:
				return e.log(in, Assignment{csvCat, csvConf, constants.MethodCSVFallback})
			default:
				return e.log(in, Assignment{mlCat, mlConf, constants.MethodMLModel})
			}
		}
	}

	if csvOK {
		return e.log(in, Assignment{csvCat, csvConf, constants.MethodCSVMapping})
	}

	if name, conf, ok := BestKeywordCategory(in.Vendor+" "+in.OCRText, e.categories); ok {
		return e.log(in, Assignment{name, conf, constants.MethodKeywordFallback})
	}

	return Assignment{}
}

func (e *Engine) log(in Input, a Assignment) Assignment {
	slog.Debug("categorize.assigned",
		"vendor", in.Vendor,
		"category", a.Category,
		"confidence", a.Confidence,
		"method", a.Method,
	)
	return a
}

// Reload re-reads the vendor map from disk.
func (e *Engine) Reload() error {
	return common.WrapError(e.vendorMap.Reload(), "reload vendor map")
}

// AddVendor registers a vendor -> category mapping for future bills.
func (e *Engine) AddVendor(vendor, category string, confidence float64) error {
	return e.vendorMap.AddVendor(vendor, category, confidence)
}
