// Command export-bills writes a user's bills to an XLSX workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/export"
	repo "github.com/hisabkitab/bills-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		username = flag.String("user", "", "username whose bills to export (required)")
		out      = flag.String("out", "", "output XLSX file path (defaults to EXPORT_DIR/bills.xlsx)")
		fromStr  = flag.String("from", "", "from date YYYY-MM-DD")
		toStr    = flag.String("to", "", "to date YYYY-MM-DD")
		sqlite   = flag.String("sqlite", "", "use a local SQLite database file instead of Postgres")
	)
	flag.Parse()

	if *username == "" {
		printError("Error: -user is required\n")
		os.Exit(1)
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid -from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid -to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := common.InitLogger()
	cfg := common.LoadConfig()
	if *out == "" {
		*out = filepath.Join(cfg.Export.OutputDir, "bills.xlsx")
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

	user, err := usersRepo.FindByUsername(ctx, *username)
	if err != nil {
		printError("Error: looking up user %q: %v\n", *username, err)
		os.Exit(1)
	}

	svc := export.NewService(billsRepo, logger)
	xlsxBytes, err := svc.ExportBillsXLSX(ctx, user.ID, from, to)
	if err != nil {
		printError("Error: exporting bills: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		printError("Error: creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		printError("Error: writing output file: %v\n", err)
		os.Exit(1)
	}

	logger.Info("export complete", "output", *out, "user", user.Username)
	fmt.Printf("Exported bills to %s\n", *out)
}
