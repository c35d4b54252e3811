// Package pipeline runs one bill's OCR text through field extraction,
// currency normalization, categorization, transaction classification and
// duplicate-guarded persistence.
package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/categorize"
	"github.com/hisabkitab/bills-tracker/internal/classify"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/extract"
	"github.com/hisabkitab/bills-tracker/internal/repository"
)

// Processor coordinates the bill processing stages.
type Processor struct {
	Logger     *slog.Logger
	Users      repository.UserRepository
	Bills      repository.BillRepository
	Categories repository.CategoryRepository
	Engine     *categorize.Engine
	Duplicates *classify.DuplicateChecker

	// MinConfidence is the auto-categorization acceptance threshold.
	MinConfidence float64
}

func NewProcessor(
	logger *slog.Logger,
	users repository.UserRepository,
	bills repository.BillRepository,
	categories repository.CategoryRepository,
	engine *categorize.Engine,
	duplicates *classify.DuplicateChecker,
	minConfidence float64,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:        logger,
		Users:         users,
		Bills:         bills,
		Categories:    categories,
		Engine:        engine,
		Duplicates:    duplicates,
		MinConfidence: minConfidence,
	}
}

// ProcessText turns one bill's raw OCR text into a stored bill. A
// DuplicateBillError is returned unwrapped so callers can surface the
// conflicting bill.
func (p *Processor) ProcessText(ctx context.Context, userID uuid.UUID, rawText string) (*entity.Bill, error) {
	user, err := p.Users.GetByID(ctx, userID)
	if err != nil {
		p.Logger.Error("processor.user.failed", "user_id", userID, "err", err)
		return nil, common.WrapError(err, "load user")
	}

	// 1) field extraction
	fields := extract.Extract(rawText)
	p.Logger.Info("processor.extract.ok",
		"user_id", userID,
		"vendor", fields.Vendor,
		"invoice_number", fields.InvoiceNumber,
		"has_amount", fields.Amount != nil,
		"currency", fields.Currency,
	)

	bill := p.buildBill(userID, rawText, fields)

	// 2) currency normalization
	p.convertCurrency(bill)

	// 3) categorization cascade
	p.categorize(ctx, bill, fields)

	// 4) transaction role
	role := classify.Classify(user, fields.Vendor, rawText)
	bill.TransactionType = role.TransactionType
	bill.AccountType = role.AccountType
	bill.IsDebit = role.IsDebit

	// 5) duplicate-guarded persistence
	var created *entity.Bill
	err = p.Duplicates.WithUserLock(userID, func() error {
		if err := p.Duplicates.Check(ctx, userID, bill.InvoiceNumber, bill.Vendor, fields.GSTIN); err != nil {
			return err
		}
		var saveErr error
		created, saveErr = p.Bills.CreateBill(ctx, bill)
		return saveErr
	})
	if err != nil {
		if dup, ok := common.IsDuplicate(err); ok {
			p.Logger.Warn("processor.duplicate",
				"user_id", userID,
				"invoice_number", bill.InvoiceNumber,
				"existing_bill_id", dup.ExistingBillID,
			)
			return nil, err
		}
		p.Logger.Error("processor.save.failed", "user_id", userID, "err", err)
		return nil, err
	}

	p.Logger.Info("processor.ok",
		"bill_id", created.ID,
		"vendor", created.Vendor,
		"category", created.CategoryName,
		"method", created.Method,
		"transaction_type", created.TransactionType,
	)
	return created, nil
}

func (p *Processor) buildBill(userID uuid.UUID, rawText string, fields extract.Fields) *entity.Bill {
	bill := &entity.Bill{
		UserID:        userID,
		InvoiceNumber: fields.InvoiceNumber,
		Vendor:        fields.Vendor,
		Amount:        fields.Amount,
		TaxAmount:     fields.TaxAmount,
		Currency:      fields.Currency,
		ExchangeRate:  decimal.NewFromInt(1),
		BillDate:      fields.BillDate,
		OCRText:       rawText,
	}
	if bill.Currency == "" {
		bill.Currency = constants.CurrencyNPR
	}
	if len(fields.LineItems) > 0 {
		if raw, err := json.Marshal(fields.LineItems); err == nil {
			bill.LineItems = raw
		}
	}
	return bill
}

// convertCurrency fills AmountNPR using the static exchange table. NPR
// bills convert 1:1.
func (p *Processor) convertCurrency(bill *entity.Bill) {
	if bill.Amount == nil {
		return
	}
	rate := constants.ExchangeRateNPR(bill.Currency)
	npr := bill.Amount.Mul(rate)
	bill.AmountNPR = &npr
	bill.ExchangeRate = rate
}

func (p *Processor) categorize(ctx context.Context, bill *entity.Bill, fields extract.Fields) {
	assignment := p.Engine.Categorize(categorize.Input{
		Vendor:        fields.Vendor,
		OCRText:       bill.OCRText,
		InvoiceNumber: fields.InvoiceNumber,
		Amount:        fields.Amount,
	})
	if !assignment.Accepted(p.MinConfidence) {
		p.Logger.Info("processor.categorize.skipped",
			"vendor", fields.Vendor,
			"category", assignment.Category,
			"confidence", assignment.Confidence,
		)
		return
	}

	cat, err := p.Categories.FindByName(ctx, assignment.Category)
	if err != nil {
		p.Logger.Warn("processor.categorize.unknown_category",
			"category", assignment.Category, "err", err)
		return
	}

	bill.CategoryID = &cat.ID
	bill.CategoryName = cat.Name
	bill.IsAutoCategorized = true
	bill.ConfidenceScore = &assignment.Confidence
	bill.Method = assignment.Method
}
