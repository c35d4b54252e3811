// Package categorizer bridges stored bills and the categorization engine:
// it turns manually labeled history into classifier training runs and
// re-runs the cascade over uncategorized bills.
package categorizer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hisabkitab/bills-tracker/internal/categorize"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/repository"
)

// Service handles training and recategorization business logic.
type Service struct {
	billsRepo      repository.BillRepository
	categoriesRepo repository.CategoryRepository
	engine         *categorize.Engine
	logger         *slog.Logger
}

func NewService(
	billsRepo repository.BillRepository,
	categoriesRepo repository.CategoryRepository,
	engine *categorize.Engine,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		billsRepo:      billsRepo,
		categoriesRepo: categoriesRepo,
		engine:         engine,
		logger:         logger,
	}
}

// TrainFromHistory fits a classifier on every manually labeled bill and
// swaps it into the engine. Returns the trained model's manifest.
func (s *Service) TrainFromHistory(ctx context.Context, modelDir string) (categorize.Manifest, error) {
	labeled, err := s.billsRepo.ListManuallyLabeled(ctx)
	if err != nil {
		return categorize.Manifest{}, common.WrapError(err, "list labeled bills")
	}

	samples := make([]categorize.TrainingSample, 0, len(labeled))
	for _, b := range labeled {
		if b.CategoryName == "" {
			continue
		}
		samples = append(samples, categorize.TrainingSample{
			Vendor:        b.Vendor,
			OCRText:       b.OCRText,
			InvoiceNumber: b.InvoiceNumber,
			Amount:        b.Amount,
			Category:      b.CategoryName,
		})
	}

	model, err := categorize.Train(samples, modelDir)
	if err != nil {
		return categorize.Manifest{}, err
	}
	s.engine.SetModel(model)

	s.logger.Info("categorizer.trained",
		"samples", len(samples),
		"accuracy", model.Manifest().Accuracy,
	)
	return model.Manifest(), nil
}

// RecategorizeStats summarizes one recategorization run.
type RecategorizeStats struct {
	Scanned  int
	Assigned int
}

// RecategorizeUser re-runs the cascade over the user's uncategorized bills,
// persisting assignments that clear minConfidence.
func (s *Service) RecategorizeUser(ctx context.Context, userID uuid.UUID, minConfidence float64) (RecategorizeStats, error) {
	var stats RecategorizeStats

	bills, err := s.billsRepo.ListUncategorized(ctx, userID)
	if err != nil {
		return stats, common.WrapError(err, "list uncategorized bills")
	}
	stats.Scanned = len(bills)

	for _, b := range bills {
		assignment := s.engine.Categorize(categorize.Input{
			Vendor:        b.Vendor,
			OCRText:       b.OCRText,
			InvoiceNumber: b.InvoiceNumber,
			Amount:        b.Amount,
		})
		if !assignment.Accepted(minConfidence) {
			continue
		}

		cat, err := s.categoriesRepo.FindByName(ctx, assignment.Category)
		if err != nil {
			s.logger.Warn("categorizer.unknown_category",
				"category", assignment.Category, "bill_id", b.ID, "err", err)
			continue
		}

		err = s.billsRepo.UpdateCategorization(ctx, b.ID, repository.Categorization{
			CategoryID: &cat.ID,
			Confidence: &assignment.Confidence,
			Method:     assignment.Method,
			Auto:       true,
		})
		if err != nil {
			return stats, common.WrapError(err, "update categorization")
		}
		stats.Assigned++
	}

	s.logger.Info("categorizer.recategorized",
		"user_id", userID,
		"scanned", stats.Scanned,
		"assigned", stats.Assigned,
	)
	return stats, nil
}
