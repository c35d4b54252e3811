package classify

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
)

// BillFinder is the narrow read surface duplicate detection needs.
type BillFinder interface {
	// FindByInvoice returns the user's bills carrying the invoice number
	// (case-insensitive).
	FindByInvoice(ctx context.Context, userID uuid.UUID, invoiceNumber string) ([]*entity.Bill, error)
}

// DuplicateChecker rejects re-uploads of bills already on file. The
// per-user lock serializes the check-then-commit window so two concurrent
// uploads of the same bill cannot both pass.
type DuplicateChecker struct {
	finder BillFinder

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewDuplicateChecker(finder BillFinder) *DuplicateChecker {
	return &DuplicateChecker{
		finder: finder,
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// userLock returns the mutex guarding one user's uploads.
func (d *DuplicateChecker) userLock(userID uuid.UUID) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		d.locks[userID] = l
	}
	return l
}

// WithUserLock runs fn while holding the user's upload lock. Callers wrap
// the duplicate check together with the insert.
func (d *DuplicateChecker) WithUserLock(userID uuid.UUID, fn func() error) error {
	l := d.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return fn()
}

// Check returns a DuplicateBillError when the incoming bill matches one
// already stored. Two signals count:
//
//  1. same user, same invoice number, same vendor (both case-insensitive);
//  2. same user, same invoice number, and the incoming bill's GSTIN
//     appears in the stored bill's OCR text. Vendor OCR is noisy enough
//     that the same issuer can extract under two names; the tax ID is not.
func (d *DuplicateChecker) Check(ctx context.Context, userID uuid.UUID, invoiceNumber, vendor, gstin string) error {
	if invoiceNumber == "" {
		return nil
	}

	existing, err := d.finder.FindByInvoice(ctx, userID, invoiceNumber)
	if err != nil {
		return common.WrapError(err, "duplicate lookup")
	}

	vendorKey := strings.ToLower(strings.TrimSpace(vendor))
	gstinKey := strings.ToUpper(strings.TrimSpace(gstin))

	for _, b := range existing {
		if vendorKey != "" && strings.ToLower(strings.TrimSpace(b.Vendor)) == vendorKey {
			return &common.DuplicateBillError{
				ExistingBillID: b.ID,
				Reason:         "same invoice number and vendor",
			}
		}
		if gstinKey != "" && strings.Contains(strings.ToUpper(b.OCRText), gstinKey) {
			return &common.DuplicateBillError{
				ExistingBillID: b.ID,
				Reason:         "same invoice number and tax ID",
			}
		}
	}
	return nil
}
