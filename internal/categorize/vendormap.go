package categorize

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hisabkitab/bills-tracker/internal/common"
)

// VendorMapping is one vendor -> category rule from the CSV file.
type VendorMapping struct {
	Vendor     string // lower-cased key
	Category   string
	Confidence float64
}

// VendorMap holds vendor -> category mappings loaded from a CSV file with
// header vendor,category,confidence. Lookups read a snapshot behind an
// atomic pointer so Reload never blocks them; AddVendor serializes writers.
type VendorMap struct {
	path     string
	snapshot atomic.Pointer[map[string]VendorMapping]
	writeMu  sync.Mutex
}

// partialPenalty discounts matches where the vendor and the mapping key
// only contain each other rather than matching exactly.
const partialPenalty = 0.9

const defaultMappingConfidence = 0.9

// NewVendorMap loads the CSV at path. A missing file yields an empty map:
// the cascade then falls through to the other tiers.
func NewVendorMap(path string) (*VendorMap, error) {
	vm := &VendorMap{path: path}
	if err := vm.Reload(); err != nil {
		return nil, err
	}
	return vm, nil
}

// Reload re-reads the CSV and swaps the lookup snapshot.
func (vm *VendorMap) Reload() error {
	mappings, err := readMappings(vm.path)
	if err != nil {
		return err
	}
	vm.snapshot.Store(&mappings)
	slog.Debug("vendormap.reload", "path", vm.path, "mappings", len(mappings))
	return nil
}

func readMappings(path string) (map[string]VendorMapping, error) {
	mappings := make(map[string]VendorMapping)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return mappings, nil
		}
		return nil, common.WrapError(err, "open vendor map")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, common.WrapError(err, "read vendor map")
		}
		if first {
			first = false
			if len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "vendor") {
				continue
			}
		}
		if len(rec) < 2 {
			continue
		}

		vendor := strings.ToLower(strings.TrimSpace(rec[0]))
		category := strings.TrimSpace(rec[1])
		if vendor == "" || category == "" {
			continue
		}

		conf := defaultMappingConfidence
		if len(rec) >= 3 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64); err == nil && v > 0 && v <= 1 {
				conf = v
			}
		}

		// Later rows win on duplicate vendors.
		mappings[vendor] = VendorMapping{Vendor: vendor, Category: category, Confidence: conf}
	}
	return mappings, nil
}

// Lookup resolves a vendor name against the map. Exact match keeps the
// mapping's confidence; a containment match in either direction pays the
// partial-match penalty. Returns ok=false when nothing matches.
func (vm *VendorMap) Lookup(vendor string) (category string, confidence float64, ok bool) {
	key := strings.ToLower(strings.TrimSpace(vendor))
	if key == "" {
		return "", 0, false
	}
	snap := vm.snapshot.Load()
	if snap == nil {
		return "", 0, false
	}
	mappings := *snap

	if m, found := mappings[key]; found {
		return m.Category, m.Confidence, true
	}

	var best VendorMapping
	for mapped, m := range mappings {
		if !strings.Contains(key, mapped) && !strings.Contains(mapped, key) {
			continue
		}
		if m.Confidence > best.Confidence {
			best = m
		}
	}
	if best.Vendor == "" {
		return "", 0, false
	}
	return best.Category, best.Confidence * partialPenalty, true
}

// Len reports how many mappings are loaded.
func (vm *VendorMap) Len() int {
	snap := vm.snapshot.Load()
	if snap == nil {
		return 0
	}
	return len(*snap)
}

// AddVendor appends a mapping to the CSV and reloads. Registering a vendor
// that already maps to the same category is a no-op.
func (vm *VendorMap) AddVendor(vendor, category string, confidence float64) error {
	key := strings.ToLower(strings.TrimSpace(vendor))
	if key == "" || strings.TrimSpace(category) == "" {
		return common.NewAppError("VENDOR_MAP_ERROR", "vendor and category are required", common.ErrInvalidInput)
	}
	if confidence <= 0 || confidence > 1 {
		confidence = defaultMappingConfidence
	}

	vm.writeMu.Lock()
	defer vm.writeMu.Unlock()

	if snap := vm.snapshot.Load(); snap != nil {
		if m, found := (*snap)[key]; found && m.Category == category {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(vm.path), 0o755); err != nil {
		return common.WrapError(err, "create vendor map directory")
	}

	_, statErr := os.Stat(vm.path)
	f, err := os.OpenFile(vm.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return common.WrapError(err, "open vendor map for append")
	}
	defer f.Close()

	if os.IsNotExist(statErr) {
		if _, err := f.WriteString("vendor,category,confidence\n"); err != nil {
			return common.WrapError(err, "write vendor map header")
		}
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{key, category, fmt.Sprintf("%.2f", confidence)}); err != nil {
		return common.WrapError(err, "append vendor mapping")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return common.WrapError(err, "flush vendor mapping")
	}

	slog.Info("vendormap.add", "vendor", key, "category", category, "confidence", confidence)
	return vm.Reload()
}

// businessTypeCategories maps a registered company's business type to the
// category its self-issued bills fall under.
var businessTypeCategories = map[string]string{
	"Sole Proprietorship":     "Business",
	"Partnership":             "Business",
	"Private Limited Company": "Business",
	"Public Limited Company":  "Business",
	"NGO/INGO":                "Other",
	"Cooperative":             "Business",
	"Government Entity":       "Business",
	"Other":                   "Business",
}

const registeredCompanyConfidence = 0.95

// RegisterCompany maps a user's own company name into the vendor map so
// bills naming it categorize without training data. Returns false when the
// name is empty or already mapped.
func (vm *VendorMap) RegisterCompany(companyName, businessType string) (bool, error) {
	key := strings.ToLower(strings.TrimSpace(companyName))
	if key == "" {
		return false, nil
	}
	if snap := vm.snapshot.Load(); snap != nil {
		if _, found := (*snap)[key]; found {
			return false, nil
		}
	}

	category, ok := businessTypeCategories[businessType]
	if !ok {
		category = "Business"
	}
	if err := vm.AddVendor(key, category, registeredCompanyConfidence); err != nil {
		return false, err
	}
	return true, nil
}
