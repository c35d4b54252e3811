package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/repository"
)

type stubBills struct {
	bills []*entity.Bill
	from  *time.Time
	to    *time.Time
}

func (s *stubBills) ListBills(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.Bill, error) {
	s.from, s.to = from, to
	return s.bills, nil
}

func (s *stubBills) CreateBill(context.Context, *entity.Bill) (*entity.Bill, error) { return nil, nil }
func (s *stubBills) GetByID(context.Context, uuid.UUID) (*entity.Bill, error)       { return nil, nil }
func (s *stubBills) FindByInvoice(context.Context, uuid.UUID, string) ([]*entity.Bill, error) {
	return nil, nil
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

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestExportBillsXLSX(t *testing.T) {
	date := time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC)
	repo := &stubBills{bills: []*entity.Bill{
		{
			ID:              uuid.New(),
			Vendor:          "STARBUCKS",
			InvoiceNumber:   "SB-2041",
			CategoryName:    "Food & Dining",
			Amount:          dec("12.5"),
			AmountNPR:       dec("1656.25"),
			Currency:        "USD",
			BillDate:        &date,
			TransactionType: constants.Debit,
			Method:          constants.MethodCSVMapping,
		},
		{
			ID:     uuid.New(),
			Vendor: "Unknown",
		},
	}}

	svc := NewService(repo, nil)
	raw, err := svc.ExportBillsXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Nil(t, repo.from)
	assert.Nil(t, repo.to)

	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer wb.Close()

	get := func(cell string) string {
		v, err := wb.GetCellValue("Bills", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Bill Date", get("A1"))
	assert.Equal(t, "2024-04-13", get("A2"))
	assert.Equal(t, "STARBUCKS", get("B2"))
	assert.Equal(t, "SB-2041", get("C2"))
	assert.Equal(t, "Food & Dining", get("D2"))
	assert.Equal(t, "12.50", get("E2"))
	assert.Equal(t, "USD", get("F2"))
	assert.Equal(t, "1656.25", get("G2"))
	assert.Equal(t, "DEBIT", get("I2"))

	// Missing fields render as blanks, not zeros.
	assert.Equal(t, "", get("A3"))
	assert.Equal(t, "", get("E3"))
}

func TestExportBillsXLSXDateWindow(t *testing.T) {
	repo := &stubBills{}
	svc := NewService(repo, nil)

	from := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	_, err := svc.ExportBillsXLSX(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	// From is normalized to midnight UTC; To defaults to today.
	require.NotNil(t, repo.from)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *repo.from)
	require.NotNil(t, repo.to)
}
