// Package ledger holds maintenance operations over stored bills: currency
// backfills and transaction-role repairs for data written before the
// corresponding rules existed.
package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/internal/classify"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/repository"
)

// Service handles bill maintenance business logic.
type Service struct {
	usersRepo repository.UserRepository
	billsRepo repository.BillRepository
	logger    *slog.Logger
}

func NewService(usersRepo repository.UserRepository, billsRepo repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{usersRepo: usersRepo, billsRepo: billsRepo, logger: logger}
}

// ConvertStats summarizes a currency backfill run.
type ConvertStats struct {
	Scanned   int
	Converted int
}

// ConvertCurrencies fills AmountNPR for the user's bills that are missing
// it, using the static exchange table.
func (s *Service) ConvertCurrencies(ctx context.Context, userID uuid.UUID) (ConvertStats, error) {
	var stats ConvertStats

	bills, err := s.billsRepo.ListBills(ctx, userID, nil, nil)
	if err != nil {
		return stats, common.WrapError(err, "list bills")
	}
	stats.Scanned = len(bills)

	for _, b := range bills {
		if b.Amount == nil || b.AmountNPR != nil {
			continue
		}
		rate := constants.ExchangeRateNPR(b.Currency)
		npr := b.Amount.Mul(rate)
		if err := s.billsRepo.UpdateNPRAmount(ctx, b.ID, npr, rate); err != nil {
			return stats, common.WrapError(err, "update NPR amount")
		}
		stats.Converted++
	}

	s.logger.Info("ledger.currencies_converted",
		"user_id", userID,
		"scanned", stats.Scanned,
		"converted", stats.Converted,
	)
	return stats, nil
}

// RoleStats summarizes a transaction-role repair run.
type RoleStats struct {
	Scanned int
	Flipped int
}

// FixTransactionRoles re-runs self-issued detection over the user's bills
// and corrects entries stored with the wrong ledger side.
func (s *Service) FixTransactionRoles(ctx context.Context, userID uuid.UUID) (RoleStats, error) {
	var stats RoleStats

	user, err := s.usersRepo.GetByID(ctx, userID)
	if err != nil {
		return stats, common.WrapError(err, "load user")
	}

	bills, err := s.billsRepo.ListBills(ctx, userID, nil, nil)
	if err != nil {
		return stats, common.WrapError(err, "list bills")
	}
	stats.Scanned = len(bills)

	for _, b := range bills {
		role := classify.Classify(user, b.Vendor, b.OCRText)
		if role.TransactionType == b.TransactionType && role.AccountType == b.AccountType && role.IsDebit == b.IsDebit {
			continue
		}
		err := s.billsRepo.UpdateTransactionRole(ctx, b.ID, role.TransactionType, role.AccountType, role.IsDebit)
		if err != nil {
			return stats, common.WrapError(err, "update transaction role")
		}
		stats.Flipped++
	}

	s.logger.Info("ledger.roles_fixed",
		"user_id", userID,
		"scanned", stats.Scanned,
		"flipped", stats.Flipped,
	)
	return stats, nil
}
