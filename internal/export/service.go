package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/hisabkitab/bills-tracker/internal/repository"
)

// Service is a tiny façade over the bill repository that produces XLSX
// ledgers for exports.
type Service struct {
	billsRepo repository.BillRepository
	logger    *slog.Logger
}

func NewService(billsRepo repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{billsRepo: billsRepo, logger: logger}
}

// ExportBillsXLSX returns an XLSX workbook (as bytes) for the given user and
// date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all bills for the user.
func (s *Service) ExportBillsXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	bills, err := s.billsRepo.ListBills(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Bill Date",
		"Vendor",
		"Invoice Number",
		"Category",
		"Amount",
		"Currency",
		"Amount (NPR)",
		"Tax",
		"Type",
		"Method",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if b.BillDate != nil {
			write(1, b.BillDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, b.Vendor)
		write(3, b.InvoiceNumber)
		write(4, b.CategoryName)
		write(5, decimalCell(b.Amount))
		write(6, b.Currency)
		write(7, decimalCell(b.AmountNPR))
		write(8, decimalCell(b.TaxAmount))
		write(9, string(b.TransactionType))
		write(10, string(b.Method))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 32) // vendor
	_ = f.SetColWidth(sheet, "C", "C", 18) // invoice number
	_ = f.SetColWidth(sheet, "D", "D", 20) // category
	_ = f.SetColWidth(sheet, "E", "H", 14) // amounts
	_ = f.SetColWidth(sheet, "I", "J", 16) // type, method

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(bills),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func decimalCell(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
