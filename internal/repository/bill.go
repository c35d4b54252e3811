package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/gen/ent"
	"github.com/hisabkitab/bills-tracker/gen/ent/bill"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/utils"
)

// Categorization carries a cascade result into storage.
type Categorization struct {
	CategoryID *int64
	Confidence *float64
	Method     constants.CategorizationMethod
	Auto       bool
}

type BillRepository interface {
	CreateBill(ctx context.Context, b *entity.Bill) (*entity.Bill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	ListBills(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Bill, error)
	// FindByInvoice feeds duplicate detection.
	FindByInvoice(ctx context.Context, userID uuid.UUID, invoiceNumber string) ([]*entity.Bill, error)
	// ListUncategorized returns bills the cascade has not (or could not)
	// assign, for recategorization runs.
	ListUncategorized(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error)
	// ListManuallyLabeled returns bills whose category a human set; these
	// are the classifier's training corpus.
	ListManuallyLabeled(ctx context.Context) ([]*entity.Bill, error)
	UpdateCategorization(ctx context.Context, id uuid.UUID, c Categorization) error
	// UpdateNPRAmount backfills currency conversion results.
	UpdateNPRAmount(ctx context.Context, id uuid.UUID, amountNPR, rate decimal.Decimal) error
	UpdateTransactionRole(ctx context.Context, id uuid.UUID, txType constants.TransactionType, acctType constants.AccountType, isDebit bool) error
}

type billRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBillRepository(client *ent.Client, logger *slog.Logger) BillRepository {
	return &billRepository{
		client: client,
		logger: logger,
	}
}

func (r *billRepository) CreateBill(ctx context.Context, b *entity.Bill) (*entity.Bill, error) {
	builder := r.client.Bill.Create().
		SetUserID(b.UserID).
		SetVendor(b.Vendor).
		SetNillableAmount(utils.DecimalToFloatPtr(b.Amount)).
		SetNillableTaxAmount(utils.DecimalToFloatPtr(b.TaxAmount)).
		SetNillableAmountNpr(utils.DecimalToFloatPtr(b.AmountNPR)).
		SetExchangeRate(b.ExchangeRate.InexactFloat64()).
		SetNillableBillDate(b.BillDate).
		SetIsAutoCategorized(b.IsAutoCategorized).
		SetNillableConfidenceScore(b.ConfidenceScore).
		SetIsDebit(b.IsDebit).
		SetOcrText(b.OCRText)

	if b.InvoiceNumber != "" {
		builder = builder.SetInvoiceNumber(b.InvoiceNumber)
	}
	if b.Currency != "" {
		builder = builder.SetCurrency(b.Currency)
	}
	if b.CategoryID != nil {
		builder = builder.SetCategoryID(int(*b.CategoryID))
	}
	if b.Method != "" {
		builder = builder.SetCategorizationMethod(string(b.Method))
	}
	if b.TransactionType != "" {
		builder = builder.SetTransactionType(string(b.TransactionType))
	}
	if b.AccountType != "" {
		builder = builder.SetAccountType(string(b.AccountType))
	}
	if len(b.LineItems) > 0 {
		builder = builder.SetLineItems(b.LineItems)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create bill", "user_id", b.UserID, "vendor", b.Vendor, "error", err)
		return nil, err
	}
	return utils.ToBill(created), nil
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	e, err := r.client.Bill.Query().
		Where(bill.ID(id)).
		WithCategory().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToBill(e), nil
}

func (r *billRepository) ListBills(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Bill, error) {
	q := r.client.Bill.Query().Where(bill.UserID(userID)).WithCategory()
	if fromDate != nil {
		q = q.Where(bill.BillDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(bill.BillDateLTE(*toDate))
	}
	bills, err := q.Order(bill.ByBillDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list bills", "user_id", userID, "error", err)
		return nil, err
	}
	return toBills(bills), nil
}

func (r *billRepository) FindByInvoice(ctx context.Context, userID uuid.UUID, invoiceNumber string) ([]*entity.Bill, error) {
	bills, err := r.client.Bill.Query().
		Where(
			bill.UserID(userID),
			bill.InvoiceNumberEqualFold(invoiceNumber),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to find bills by invoice", "user_id", userID, "error", err)
		return nil, err
	}
	return toBills(bills), nil
}

func (r *billRepository) ListUncategorized(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	bills, err := r.client.Bill.Query().
		Where(
			bill.UserID(userID),
			bill.CategoryIDIsNil(),
		).
		Order(bill.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list uncategorized bills", "user_id", userID, "error", err)
		return nil, err
	}
	return toBills(bills), nil
}

func (r *billRepository) ListManuallyLabeled(ctx context.Context) ([]*entity.Bill, error) {
	bills, err := r.client.Bill.Query().
		Where(
			bill.CategoryIDNotNil(),
			bill.IsAutoCategorized(false),
		).
		WithCategory().
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list labeled bills", "error", err)
		return nil, err
	}
	return toBills(bills), nil
}

func (r *billRepository) UpdateCategorization(ctx context.Context, id uuid.UUID, c Categorization) error {
	upd := r.client.Bill.UpdateOneID(id).
		SetIsAutoCategorized(c.Auto).
		SetCategorizationMethod(string(c.Method))
	if c.CategoryID != nil {
		upd = upd.SetCategoryID(int(*c.CategoryID))
	} else {
		upd = upd.ClearCategoryID()
	}
	if c.Confidence != nil {
		upd = upd.SetConfidenceScore(*c.Confidence)
	} else {
		upd = upd.ClearConfidenceScore()
	}
	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("failed to update categorization", "bill_id", id, "error", err)
		return err
	}
	return nil
}

func (r *billRepository) UpdateNPRAmount(ctx context.Context, id uuid.UUID, amountNPR, rate decimal.Decimal) error {
	err := r.client.Bill.UpdateOneID(id).
		SetAmountNpr(amountNPR.InexactFloat64()).
		SetExchangeRate(rate.InexactFloat64()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update NPR amount", "bill_id", id, "error", err)
	}
	return err
}

func (r *billRepository) UpdateTransactionRole(ctx context.Context, id uuid.UUID, txType constants.TransactionType, acctType constants.AccountType, isDebit bool) error {
	err := r.client.Bill.UpdateOneID(id).
		SetTransactionType(string(txType)).
		SetAccountType(string(acctType)).
		SetIsDebit(isDebit).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update transaction role", "bill_id", id, "error", err)
	}
	return err
}

func toBills(bills []*ent.Bill) []*entity.Bill {
	result := make([]*entity.Bill, len(bills))
	for i, b := range bills {
		result[i] = utils.ToBill(b)
	}
	return result
}
