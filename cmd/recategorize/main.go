// Command recategorize re-runs the categorization cascade over a user's
// uncategorized bills, usually after retraining the model or extending the
// vendor map.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hisabkitab/bills-tracker/internal/categorize"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	repo "github.com/hisabkitab/bills-tracker/internal/repository"
	"github.com/hisabkitab/bills-tracker/internal/services/categorizer"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		username = flag.String("user", "", "username whose bills to recategorize (required)")
		minConf  = flag.Float64("min-confidence", 0, "acceptance threshold override (defaults to CATEGORIZER_MIN_CONFIDENCE)")
		sqlite   = flag.String("sqlite", "", "use a local SQLite database file instead of Postgres")
	)
	flag.Parse()

	if *username == "" {
		printError("Error: -user is required\n")
		os.Exit(1)
	}

	logger := common.InitLogger()
	cfg := common.LoadConfig()
	if *minConf == 0 {
		*minConf = cfg.Categorizer.MinConfidence
	}
	ctx := context.Background()

	db, err := repo.InitDatabase(ctx, cfg, *sqlite, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	usersRepo := repo.NewUserRepository(db.Client, logger)
	billsRepo := repo.NewBillRepository(db.Client, logger)
	categoriesRepo := repo.NewCategoryRepository(db.Client, logger)

	user, err := usersRepo.FindByUsername(ctx, *username)
	if err != nil {
		printError("Error: looking up user %q: %v\n", *username, err)
		os.Exit(1)
	}

	vendorMap, err := categorize.NewVendorMap(cfg.Categorizer.VendorMapPath)
	if err != nil {
		logger.Error("failed to load vendor map", "path", cfg.Categorizer.VendorMapPath, "error", err)
		os.Exit(1)
	}
	categories, err := categoriesRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("failed to list categories", "error", err)
		os.Exit(1)
	}
	catValues := make([]entity.Category, len(categories))
	for i, c := range categories {
		catValues[i] = *c
	}

	engine := categorize.NewEngine(vendorMap, catValues)
	engine.LoadModel(cfg.Categorizer.ModelDir)

	svc := categorizer.NewService(billsRepo, categoriesRepo, engine, logger)
	stats, err := svc.RecategorizeUser(ctx, user.ID, *minConf)
	if err != nil {
		printError("Error: recategorizing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recategorization complete!\n")
	fmt.Printf("- Bills scanned: %d\n", stats.Scanned)
	fmt.Printf("- Categories assigned: %d\n", stats.Assigned)
}
