package categorize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVendorCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendor_categories.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVendorMapExactLookup(t *testing.T) {
	path := writeVendorCSV(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\nshell,Transportation,0.90\n")

	vm, err := NewVendorMap(path)
	require.NoError(t, err)
	assert.Equal(t, 2, vm.Len())

	cat, conf, ok := vm.Lookup("Starbucks")
	require.True(t, ok)
	assert.Equal(t, "Food & Dining", cat)
	assert.InDelta(t, 0.95, conf, 1e-9)
}

func TestVendorMapPartialLookupPaysPenalty(t *testing.T) {
	path := writeVendorCSV(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n")

	vm, err := NewVendorMap(path)
	require.NoError(t, err)

	cat, conf, ok := vm.Lookup("STARBUCKS COFFEE #1234")
	require.True(t, ok)
	assert.Equal(t, "Food & Dining", cat)
	assert.InDelta(t, 0.95*partialPenalty, conf, 1e-9)
}

func TestVendorMapNoMatch(t *testing.T) {
	path := writeVendorCSV(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n")

	vm, err := NewVendorMap(path)
	require.NoError(t, err)

	_, _, ok := vm.Lookup("unknown vendor")
	assert.False(t, ok)
	_, _, ok = vm.Lookup("")
	assert.False(t, ok)
}

func TestVendorMapDefaultConfidenceAndDuplicates(t *testing.T) {
	path := writeVendorCSV(t, "vendor,category\nacme,Shopping\nacme,Business\n")

	vm, err := NewVendorMap(path)
	require.NoError(t, err)

	cat, conf, ok := vm.Lookup("acme")
	require.True(t, ok)
	assert.Equal(t, "Business", cat, "later rows win")
	assert.InDelta(t, defaultMappingConfidence, conf, 1e-9)
}

func TestVendorMapMissingFileIsEmpty(t *testing.T) {
	vm, err := NewVendorMap(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, vm.Len())
}

func TestAddVendorCreatesFileAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "vendor_categories.csv")

	vm, err := NewVendorMap(path)
	require.NoError(t, err)

	require.NoError(t, vm.AddVendor("Himalayan Java", "Food & Dining", 0.85))

	cat, conf, ok := vm.Lookup("himalayan java")
	require.True(t, ok)
	assert.Equal(t, "Food & Dining", cat)
	assert.InDelta(t, 0.85, conf, 1e-9)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "vendor,category,confidence")
	assert.Contains(t, string(raw), "himalayan java,Food & Dining,0.85")
}

func TestAddVendorIdempotent(t *testing.T) {
	path := writeVendorCSV(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n")

	vm, err := NewVendorMap(path)
	require.NoError(t, err)

	// Same vendor, same category: nothing appended.
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, vm.AddVendor("STARBUCKS", "Food & Dining", 0.5))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestAddVendorValidatesInput(t *testing.T) {
	vm, err := NewVendorMap(filepath.Join(t.TempDir(), "v.csv"))
	require.NoError(t, err)

	assert.Error(t, vm.AddVendor("", "Shopping", 0.9))
	assert.Error(t, vm.AddVendor("acme", "", 0.9))
}

func TestRegisterCompany(t *testing.T) {
	vm, err := NewVendorMap(filepath.Join(t.TempDir(), "v.csv"))
	require.NoError(t, err)

	added, err := vm.RegisterCompany("Himalaya Traders Pvt. Ltd.", "Private Limited Company")
	require.NoError(t, err)
	assert.True(t, added)

	cat, conf, ok := vm.Lookup("himalaya traders pvt. ltd.")
	require.True(t, ok)
	assert.Equal(t, "Business", cat)
	assert.InDelta(t, 0.95, conf, 1e-9)

	// Second registration is a no-op.
	added, err = vm.RegisterCompany("HIMALAYA TRADERS PVT. LTD.", "Private Limited Company")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestRegisterCompanyBusinessTypes(t *testing.T) {
	vm, err := NewVendorMap(filepath.Join(t.TempDir(), "v.csv"))
	require.NoError(t, err)

	added, err := vm.RegisterCompany("Helping Hands Nepal", "NGO/INGO")
	require.NoError(t, err)
	require.True(t, added)
	cat, _, ok := vm.Lookup("helping hands nepal")
	require.True(t, ok)
	assert.Equal(t, "Other", cat)

	added, err = vm.RegisterCompany("Unknown Type Co", "Freelance")
	require.NoError(t, err)
	require.True(t, added)
	cat, _, ok = vm.Lookup("unknown type co")
	require.True(t, ok)
	assert.Equal(t, "Business", cat)

	added, err = vm.RegisterCompany("   ", "Partnership")
	require.NoError(t, err)
	assert.False(t, added)
}
