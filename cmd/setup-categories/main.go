// Command setup-categories seeds the default expense categories. Existing
// categories are left untouched, so the command is safe to re-run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hisabkitab/bills-tracker/internal/common"
	repo "github.com/hisabkitab/bills-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	sqlite := flag.String("sqlite", "", "use a local SQLite database file instead of Postgres")
	flag.Parse()

	logger := common.InitLogger()
	cfg := common.LoadConfig()
	ctx := context.Background()

	db, err := repo.InitDatabase(ctx, cfg, *sqlite, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	categoriesRepo := repo.NewCategoryRepository(db.Client, logger)
	created, err := categoriesRepo.SeedDefaults(ctx)
	if err != nil {
		printError("Error: seeding categories: %v\n", err)
		os.Exit(1)
	}

	cats, err := categoriesRepo.ListCategories(ctx)
	if err != nil {
		printError("Error: listing categories: %v\n", err)
		os.Exit(1)
	}

	logger.Info("categories seeded", "created", created, "total", len(cats))
	for _, c := range cats {
		fmt.Printf("- [%d] %s (%s)\n", c.ID, c.Name, c.Type)
	}
}
