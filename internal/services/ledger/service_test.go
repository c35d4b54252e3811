package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/repository"
)

type stubUsers struct {
	user *entity.User
}

func (s *stubUsers) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, common.ErrNotFound
}
func (s *stubUsers) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, common.ErrNotFound
}
func (s *stubUsers) CreateUser(context.Context, *repository.NewUser) (*entity.User, error) {
	return nil, common.ErrInternal
}
func (s *stubUsers) Exists(context.Context, uuid.UUID) (bool, error) { return false, nil }

type stubBills struct {
	bills     []*entity.Bill
	nprCalls  map[uuid.UUID]decimal.Decimal
	roleCalls map[uuid.UUID]constants.TransactionType
}

func newStubBills(bills ...*entity.Bill) *stubBills {
	return &stubBills{
		bills:     bills,
		nprCalls:  make(map[uuid.UUID]decimal.Decimal),
		roleCalls: make(map[uuid.UUID]constants.TransactionType),
	}
}

func (s *stubBills) ListBills(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Bill, error) {
	return s.bills, nil
}
func (s *stubBills) UpdateNPRAmount(_ context.Context, id uuid.UUID, amountNPR, _ decimal.Decimal) error {
	s.nprCalls[id] = amountNPR
	return nil
}
func (s *stubBills) UpdateTransactionRole(_ context.Context, id uuid.UUID, txType constants.TransactionType, _ constants.AccountType, _ bool) error {
	s.roleCalls[id] = txType
	return nil
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

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestConvertCurrencies(t *testing.T) {
	userID := uuid.New()
	usd := &entity.Bill{ID: uuid.New(), UserID: userID, Currency: "USD", Amount: dec("10")}
	done := &entity.Bill{ID: uuid.New(), UserID: userID, Currency: "USD", Amount: dec("5"), AmountNPR: dec("662.50")}
	noAmount := &entity.Bill{ID: uuid.New(), UserID: userID, Currency: "NPR"}

	bills := newStubBills(usd, done, noAmount)
	svc := NewService(&stubUsers{}, bills, nil)

	stats, err := svc.ConvertCurrencies(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Scanned)
	assert.Equal(t, 1, stats.Converted)

	require.Contains(t, bills.nprCalls, usd.ID)
	assert.Equal(t, "1325", bills.nprCalls[usd.ID].String())
	assert.NotContains(t, bills.nprCalls, done.ID)
	assert.NotContains(t, bills.nprCalls, noAmount.ID)
}

func TestFixTransactionRoles(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ram", CompanyName: "Himalayan Traders Pvt Ltd"}

	// Stored as an expense, but the user's own company issued it.
	misfiled := &entity.Bill{
		ID:              uuid.New(),
		UserID:          user.ID,
		Vendor:          "Himalayan Traders Pvt Ltd",
		TransactionType: constants.Debit,
		AccountType:     constants.AccountExpense,
		IsDebit:         true,
	}
	correct := &entity.Bill{
		ID:              uuid.New(),
		UserID:          user.ID,
		Vendor:          "Starbucks",
		TransactionType: constants.Debit,
		AccountType:     constants.AccountExpense,
		IsDebit:         true,
	}

	bills := newStubBills(misfiled, correct)
	svc := NewService(&stubUsers{user: user}, bills, nil)

	stats, err := svc.FixTransactionRoles(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Scanned)
	assert.Equal(t, 1, stats.Flipped)
	assert.Equal(t, constants.Credit, bills.roleCalls[misfiled.ID])
	assert.NotContains(t, bills.roleCalls, correct.ID)
}

func TestFixTransactionRolesUnknownUser(t *testing.T) {
	svc := NewService(&stubUsers{}, newStubBills(), nil)
	_, err := svc.FixTransactionRoles(context.Background(), uuid.New())
	assert.Error(t, err)
}
