package classify

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
)

type stubFinder struct {
	mu    sync.Mutex
	bills []*entity.Bill
}

func (s *stubFinder) FindByInvoice(_ context.Context, userID uuid.UUID, invoiceNumber string) ([]*entity.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Bill
	for _, b := range s.bills {
		if b.UserID == userID && strings.EqualFold(b.InvoiceNumber, invoiceNumber) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubFinder) add(b *entity.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills = append(s.bills, b)
}

func TestCheckDuplicateByInvoiceAndVendor(t *testing.T) {
	userID := uuid.New()
	existing := &entity.Bill{
		ID:            uuid.New(),
		UserID:        userID,
		InvoiceNumber: "INV-100",
		Vendor:        "Starbucks",
	}
	checker := NewDuplicateChecker(&stubFinder{bills: []*entity.Bill{existing}})

	err := checker.Check(context.Background(), userID, "inv-100", "STARBUCKS", "")
	require.Error(t, err)

	dup, ok := common.IsDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, existing.ID, dup.ExistingBillID)
}

func TestCheckDuplicateByGSTIN(t *testing.T) {
	userID := uuid.New()
	existing := &entity.Bill{
		ID:            uuid.New(),
		UserID:        userID,
		InvoiceNumber: "INV-100",
		Vendor:        "Starbuks Cofee", // OCR mangled the name
		OCRText:       "GSTIN: 22AAAAA0000A1Z5\nTOTAL 500.00",
	}
	checker := NewDuplicateChecker(&stubFinder{bills: []*entity.Bill{existing}})

	err := checker.Check(context.Background(), userID, "INV-100", "Starbucks", "22AAAAA0000A1Z5")
	require.Error(t, err)

	_, ok := common.IsDuplicate(err)
	assert.True(t, ok)
}

func TestCheckNotDuplicate(t *testing.T) {
	userID := uuid.New()
	existing := &entity.Bill{
		ID:            uuid.New(),
		UserID:        userID,
		InvoiceNumber: "INV-100",
		Vendor:        "Starbucks",
	}
	checker := NewDuplicateChecker(&stubFinder{bills: []*entity.Bill{existing}})

	// Different vendor, no shared tax ID: same invoice number alone is fine.
	assert.NoError(t, checker.Check(context.Background(), userID, "INV-100", "Shell", ""))

	// Different user entirely.
	assert.NoError(t, checker.Check(context.Background(), uuid.New(), "INV-100", "Starbucks", ""))

	// No invoice number: nothing to key on.
	assert.NoError(t, checker.Check(context.Background(), userID, "", "Starbucks", ""))
}

func TestWithUserLockSerializesUploads(t *testing.T) {
	userID := uuid.New()
	finder := &stubFinder{}
	checker := NewDuplicateChecker(finder)

	ctx := context.Background()
	var wg sync.WaitGroup
	var dupes, inserts int
	var mu sync.Mutex

	// Two concurrent uploads of the same bill: exactly one survives.
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = checker.WithUserLock(userID, func() error {
				if err := checker.Check(ctx, userID, "INV-7", "Acme", ""); err != nil {
					mu.Lock()
					dupes++
					mu.Unlock()
					return err
				}
				finder.add(&entity.Bill{
					ID: uuid.New(), UserID: userID,
					InvoiceNumber: "INV-7", Vendor: "Acme",
				})
				mu.Lock()
				inserts++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, inserts)
	assert.Equal(t, 1, dupes)
}
