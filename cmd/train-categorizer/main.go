// Command train-categorizer fits the naive Bayes classifier on every
// manually labeled bill and installs the artifacts under the model
// directory.
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
		sqlite   = flag.String("sqlite", "", "use a local SQLite database file instead of Postgres")
		modelDir = flag.String("model-dir", "", "output directory for model artifacts (defaults to MODEL_DIR)")
	)
	flag.Parse()

	logger := common.InitLogger()
	cfg := common.LoadConfig()
	if *modelDir == "" {
		*modelDir = cfg.Categorizer.ModelDir
	}
	ctx := context.Background()

	db, err := repo.InitDatabase(ctx, cfg, *sqlite, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	billsRepo := repo.NewBillRepository(db.Client, logger)
	categoriesRepo := repo.NewCategoryRepository(db.Client, logger)

	vendorMap, err := categorize.NewVendorMap(cfg.Categorizer.VendorMapPath)
	if err != nil {
		logger.Error("failed to load vendor map", "path", cfg.Categorizer.VendorMapPath, "error", err)
		os.Exit(1)
	}
	engine := categorize.NewEngine(vendorMap, []entity.Category{})

	svc := categorizer.NewService(billsRepo, categoriesRepo, engine, logger)
	manifest, err := svc.TrainFromHistory(ctx, *modelDir)
	if err != nil {
		printError("Error: training categorizer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Model trained!\n")
	fmt.Printf("- Classes: %d\n", len(manifest.Classes))
	fmt.Printf("- Samples: %d\n", manifest.Samples)
	fmt.Printf("- Holdout accuracy: %.2f\n", manifest.Accuracy)
	fmt.Printf("- Artifacts: %s\n", *modelDir)
}
