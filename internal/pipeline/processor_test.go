package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/categorize"
	"github.com/hisabkitab/bills-tracker/internal/classify"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/repository"
)

type stubUsers struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUsers) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}
func (s *stubUsers) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, common.ErrNotFound
}
func (s *stubUsers) CreateUser(context.Context, *repository.NewUser) (*entity.User, error) {
	return nil, common.ErrInternal
}
func (s *stubUsers) Exists(context.Context, uuid.UUID) (bool, error) { return false, nil }

type stubBills struct {
	stored []*entity.Bill
}

func (s *stubBills) CreateBill(_ context.Context, b *entity.Bill) (*entity.Bill, error) {
	saved := *b
	saved.ID = uuid.New()
	s.stored = append(s.stored, &saved)
	return &saved, nil
}
func (s *stubBills) GetByID(context.Context, uuid.UUID) (*entity.Bill, error) {
	return nil, common.ErrNotFound
}
func (s *stubBills) ListBills(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Bill, error) {
	return s.stored, nil
}
func (s *stubBills) FindByInvoice(_ context.Context, userID uuid.UUID, invoiceNumber string) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range s.stored {
		if b.UserID == userID && strings.EqualFold(b.InvoiceNumber, invoiceNumber) {
			out = append(out, b)
		}
	}
	return out, nil
}
func (s *stubBills) ListUncategorized(context.Context, uuid.UUID) ([]*entity.Bill, error) {
	return nil, nil
}
func (s *stubBills) ListManuallyLabeled(context.Context) ([]*entity.Bill, error) { return nil, nil }
func (s *stubBills) UpdateCategorization(context.Context, uuid.UUID, repository.Categorization) error {
	return nil
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
	var out []*entity.Category
	for _, c := range s.byName {
		out = append(out, c)
	}
	return out, nil
}
func (s *stubCategories) FindByName(_ context.Context, name string) (*entity.Category, error) {
	c, ok := s.byName[name]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}
func (s *stubCategories) SeedDefaults(context.Context) (int, error) { return 0, nil }

func newTestProcessor(t *testing.T, user *entity.User, vendorCSV string) (*Processor, *stubBills) {
	t.Helper()

	csvPath := filepath.Join(t.TempDir(), "vendors.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(vendorCSV), 0o644))
	vm, err := categorize.NewVendorMap(csvPath)
	require.NoError(t, err)

	categories := []entity.Category{
		{ID: 1, Name: "Food & Dining", Keywords: "restaurant,cafe,food,coffee,starbucks"},
		{ID: 2, Name: "Transportation", Keywords: "fuel,petrol,taxi,parking"},
	}
	byName := make(map[string]*entity.Category, len(categories))
	for i := range categories {
		byName[categories[i].Name] = &categories[i]
	}

	bills := &stubBills{}
	p := NewProcessor(
		nil,
		&stubUsers{users: map[uuid.UUID]*entity.User{user.ID: user}},
		bills,
		&stubCategories{byName: byName},
		categorize.NewEngine(vm, categories),
		classify.NewDuplicateChecker(bills),
		constants.MinConfidence,
	)
	return p, bills
}

const starbucksOCR = `STARBUCKS
123 Main Street
Invoice # SB-2041
TOTAL $12.50`

func TestProcessTextEndToEnd(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ram", CompanyName: "Himalayan Traders Pvt Ltd"}
	p, _ := newTestProcessor(t, user, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n")

	bill, err := p.ProcessText(context.Background(), user.ID, starbucksOCR)
	require.NoError(t, err)

	assert.Equal(t, "STARBUCKS", bill.Vendor)
	assert.Equal(t, "SB-2041", bill.InvoiceNumber)
	assert.Equal(t, constants.CurrencyUSD, bill.Currency)

	require.NotNil(t, bill.Amount)
	assert.Equal(t, "12.5", bill.Amount.String())
	require.NotNil(t, bill.AmountNPR)
	assert.Equal(t, "1656.25", bill.AmountNPR.String())

	assert.True(t, bill.IsAutoCategorized)
	assert.Equal(t, "Food & Dining", bill.CategoryName)
	assert.Equal(t, constants.MethodCSVMapping, bill.Method)
	require.NotNil(t, bill.ConfidenceScore)
	assert.InDelta(t, 0.95, *bill.ConfidenceScore, 1e-9)

	assert.Equal(t, constants.Debit, bill.TransactionType)
	assert.Equal(t, constants.AccountExpense, bill.AccountType)
	assert.True(t, bill.IsDebit)
}

func TestProcessTextRejectsDuplicate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ram"}
	p, bills := newTestProcessor(t, user, "vendor,category,confidence\nstarbucks,Food & Dining,0.95\n")

	first, err := p.ProcessText(context.Background(), user.ID, starbucksOCR)
	require.NoError(t, err)

	_, err = p.ProcessText(context.Background(), user.ID, starbucksOCR)
	require.Error(t, err)

	dup, ok := common.IsDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, first.ID, dup.ExistingBillID)
	assert.Len(t, bills.stored, 1)
}

func TestProcessTextSelfIssuedBillIsIncome(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ram", CompanyName: "Himalayan Traders Pvt Ltd"}
	p, _ := newTestProcessor(t, user, "vendor,category,confidence\n")

	ocr := `TAX INVOICE
Himalayan Traders Pvt Ltd
Invoice Number: HT-77
Bill To: Some Customer Ltd
Grand Total: 38026.00
NPR`

	bill, err := p.ProcessText(context.Background(), user.ID, ocr)
	require.NoError(t, err)

	assert.Equal(t, constants.Credit, bill.TransactionType)
	assert.Equal(t, constants.AccountRevenue, bill.AccountType)
	assert.False(t, bill.IsDebit)
	assert.Equal(t, constants.CurrencyNPR, bill.Currency)
	require.NotNil(t, bill.AmountNPR)
	assert.Equal(t, "38026", bill.AmountNPR.String())
}

func TestProcessTextLowConfidenceLeavesUncategorized(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ram"}
	p, _ := newTestProcessor(t, user, "vendor,category,confidence\n")

	bill, err := p.ProcessText(context.Background(), user.ID, "ZZQX\nTOTAL $9.99")
	require.NoError(t, err)

	assert.False(t, bill.IsAutoCategorized)
	assert.Nil(t, bill.CategoryID)
	assert.Empty(t, bill.CategoryName)
}

func TestProcessTextUnknownUser(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ram"}
	p, _ := newTestProcessor(t, user, "vendor,category,confidence\n")

	_, err := p.ProcessText(context.Background(), uuid.New(), starbucksOCR)
	assert.Error(t, err)
}
