package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/gen/ent"
	"github.com/hisabkitab/bills-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// DecimalToFloatPtr converts an optional exact amount into the float form
// the storage layer keeps.
func DecimalToFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

// FloatToDecimalPtr restores an optional stored amount into exact form.
func FloatToDecimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToBill(e *ent.Bill) *entity.Bill {
	b := &entity.Bill{
		ID:                e.ID,
		UserID:            e.UserID,
		InvoiceNumber:     strOrEmpty(e.InvoiceNumber),
		Vendor:            e.Vendor,
		Amount:            FloatToDecimalPtr(e.Amount),
		TaxAmount:         FloatToDecimalPtr(e.TaxAmount),
		AmountNPR:         FloatToDecimalPtr(e.AmountNpr),
		Currency:          e.Currency,
		ExchangeRate:      decimal.NewFromFloat(e.ExchangeRate),
		BillDate:          e.BillDate,
		IsAutoCategorized: e.IsAutoCategorized,
		ConfidenceScore:   e.ConfidenceScore,
		Method:            constants.CategorizationMethod(e.CategorizationMethod),
		TransactionType:   constants.TransactionType(e.TransactionType),
		AccountType:       constants.AccountType(e.AccountType),
		IsDebit:           e.IsDebit,
		OCRText:           e.OcrText,
		LineItems:         e.LineItems,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if e.CategoryID != nil {
		id := int64(*e.CategoryID)
		b.CategoryID = &id
	}
	if e.Edges.Category != nil {
		b.CategoryName = e.Edges.Category.Name
	}
	return b
}

func ToCategory(e *ent.Category) *entity.Category {
	return &entity.Category{
		ID:       int64(e.ID),
		Name:     e.Name,
		Type:     constants.CategoryType(e.CategoryType),
		Keywords: e.Keywords,
		Color:    e.Color,
	}
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:           e.ID,
		Username:     e.Username,
		CompanyName:  e.CompanyName,
		PANVATNumber: e.PanVatNumber,
		BusinessType: e.BusinessType,
		CreatedAt:    e.CreatedAt,
	}
}
