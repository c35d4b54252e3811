package categorizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/categorize"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/repository"
)

type stubBills struct {
	uncategorized []*entity.Bill
	labeled       []*entity.Bill
	updates       map[uuid.UUID]repository.Categorization
}

func (s *stubBills) ListUncategorized(context.Context, uuid.UUID) ([]*entity.Bill, error) {
	return s.uncategorized, nil
}
func (s *stubBills) ListManuallyLabeled(context.Context) ([]*entity.Bill, error) {
	return s.labeled, nil
}
func (s *stubBills) UpdateCategorization(_ context.Context, id uuid.UUID, c repository.Categorization) error {
	if s.updates == nil {
		s.updates = make(map[uuid.UUID]repository.Categorization)
	}
	s.updates[id] = c
	return nil
}

func (s *stubBills) CreateBill(context.Context, *entity.Bill) (*entity.Bill, error) { return nil, nil }
func (s *stubBills) GetByID(context.Context, uuid.UUID) (*entity.Bill, error)       { return nil, nil }
func (s *stubBills) ListBills(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Bill, error) {
	return nil, nil
}
func (s *stubBills) FindByInvoice(context.Context, uuid.UUID, string) ([]*entity.Bill, error) {
	return nil, nil
}
func (s *stubBills) UpdateNPRAmount(context.Context, uuid.UUID, decimal.Decimal, decimal.Decimal) error {
	return nil
}
func (s *stubBills) UpdateTransactionRole(context.Context, uuid.UUID, constants.TransactionType, constants.AccountType, bool) error {
	return nil
}

type stubCategories struct {
	byName map[string]*entity.Category
}

func (s *stubCategories) ListCategories(context.Context) ([]*entity.Category, error) {
	return nil, nil
}
func (s *stubCategories) FindByName(_ context.Context, name string) (*entity.Category, error) {
	c, ok := s.byName[name]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}
func (s *stubCategories) SeedDefaults(context.Context) (int, error) { return 0, nil }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newEngine(t *testing.T, csv string) *categorize.Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendors.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	vm, err := categorize.NewVendorMap(path)
	require.NoError(t, err)
	return categorize.NewEngine(vm, []entity.Category{
		{ID: 1, Name: "Food & Dining", Keywords: "restaurant,cafe,coffee,food"},
		{ID: 2, Name: "Transportation", Keywords: "fuel,petrol,taxi"},
	})
}

func TestRecategorizeUser(t *testing.T) {
	userID := uuid.New()
	mapped := &entity.Bill{ID: uuid.New(), UserID: userID, Vendor: "Starbucks"}
	hopeless := &entity.Bill{ID: uuid.New(), UserID: userID, Vendor: "zzqx"}

	bills := &stubBills{uncategorized: []*entity.Bill{mapped, hopeless}}
	cats := &stubCategories{byName: map[string]*entity.Category{
		"Food & Dining": {ID: 1, Name: "Food & Dining"},
	}}
	svc := NewService(bills, cats, newEngine(t, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n"), nil)

	stats, err := svc.RecategorizeUser(context.Background(), userID, constants.MinConfidence)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Scanned)
	assert.Equal(t, 1, stats.Assigned)

	upd, ok := bills.updates[mapped.ID]
	require.True(t, ok)
	require.NotNil(t, upd.CategoryID)
	assert.EqualValues(t, 1, *upd.CategoryID)
	assert.True(t, upd.Auto)
	assert.Equal(t, constants.MethodCSVMapping, upd.Method)
}

func TestTrainFromHistory(t *testing.T) {
	var labeled []*entity.Bill
	food := []string{"STARBUCKS", "Himalayan Java", "Bakery Cafe", "McDonalds", "KFC Restaurant", "Roadhouse Cafe"}
	fuel := []string{"Shell Station", "Exxon Fuel", "Chevron Gas", "NOC Petrol Pump", "Total Fuel Stop", "BP Station"}
	for _, v := range food {
		labeled = append(labeled, &entity.Bill{
			ID: uuid.New(), Vendor: v, OCRText: v + " coffee latte meal",
			Amount: dec("12.50"), CategoryName: "Food & Dining",
		})
	}
	for _, v := range fuel {
		labeled = append(labeled, &entity.Bill{
			ID: uuid.New(), Vendor: v, OCRText: v + " petrol diesel litres",
			Amount: dec("4500"), CategoryName: "Transportation",
		})
	}

	bills := &stubBills{labeled: labeled}
	engine := newEngine(t, "vendor,category,confidence\n")
	svc := NewService(bills, &stubCategories{}, engine, nil)

	manifest, err := svc.TrainFromHistory(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 12, manifest.Samples)
	assert.ElementsMatch(t, []string{"Food & Dining", "Transportation"}, manifest.Classes)

	// The freshly trained model is live in the engine.
	a := engine.Categorize(categorize.Input{
		Vendor:  "Chevron Gas",
		OCRText: "petrol diesel litres",
		Amount:  dec("4000"),
	})
	assert.Equal(t, "Transportation", a.Category)
	assert.Equal(t, constants.MethodMLModel, a.Method)
}

func TestTrainFromHistoryInsufficientData(t *testing.T) {
	bills := &stubBills{labeled: []*entity.Bill{
		{ID: uuid.New(), Vendor: "STARBUCKS", CategoryName: "Food & Dining"},
	}}
	svc := NewService(bills, &stubCategories{}, newEngine(t, "vendor,category,confidence\n"), nil)

	_, err := svc.TrainFromHistory(context.Background(), t.TempDir())
	assert.Error(t, err)
}
