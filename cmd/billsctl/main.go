// Command billsctl processes bill OCR text files end to end: field
// extraction, currency normalization, categorization, transaction
// classification and duplicate-guarded persistence.
//
//	billsctl -user ram [-company "..."] [-pan ...] [-sqlite bills.db] file.txt [file2.txt ...]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hisabkitab/bills-tracker/internal/categorize"
	"github.com/hisabkitab/bills-tracker/internal/classify"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/pipeline"
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
		username = flag.String("user", "", "username owning the bills (required; created if missing)")
		company  = flag.String("company", "", "company name for a newly created user")
		panVAT   = flag.String("pan", "", "PAN/VAT number for a newly created user")
		sqlite   = flag.String("sqlite", "", "use a local SQLite database file instead of Postgres")
	)
	flag.Parse()

	if *username == "" {
		printError("Error: -user is required\n")
		os.Exit(1)
	}
	files := flag.Args()
	if len(files) == 0 {
		printError("Error: at least one OCR text file is required\n")
		os.Exit(1)
	}

	logger := common.InitLogger()
	cfg := common.LoadConfig()
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
	if errors.Is(err, common.ErrNotFound) {
		user, err = usersRepo.CreateUser(ctx, &repo.NewUser{
			Username:     *username,
			CompanyName:  *company,
			PANVATNumber: *panVAT,
		})
		if err != nil {
			logger.Error("failed to create user", "username", *username, "error", err)
			os.Exit(1)
		}
		logger.Info("user created", "user_id", user.ID, "username", user.Username)
	} else if err != nil {
		logger.Error("failed to look up user", "username", *username, "error", err)
		os.Exit(1)
	}

	vendorMap, err := categorize.NewVendorMap(cfg.Categorizer.VendorMapPath)
	if err != nil {
		logger.Error("failed to load vendor map", "path", cfg.Categorizer.VendorMapPath, "error", err)
		os.Exit(1)
	}
	if user.CompanyName != "" {
		added, err := vendorMap.RegisterCompany(user.CompanyName, user.BusinessType)
		if err != nil {
			logger.Warn("failed to register company in vendor map", "company", user.CompanyName, "error", err)
		} else if added {
			logger.Info("company registered in vendor map", "company", user.CompanyName)
		}
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

	processor := pipeline.NewProcessor(
		logger,
		usersRepo,
		billsRepo,
		categoriesRepo,
		engine,
		classify.NewDuplicateChecker(billsRepo),
		cfg.Categorizer.MinConfidence,
	)

	processed, failed := 0, 0
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			failed++
			continue
		}

		bill, err := processor.ProcessText(ctx, user.ID, string(raw))
		if err != nil {
			if dup, ok := common.IsDuplicate(err); ok {
				logger.Warn("skipping duplicate bill",
					"path", path, "existing_bill_id", dup.ExistingBillID, "reason", dup.Reason)
			} else {
				logger.Error("failed to process bill", "path", path, "error", err)
			}
			failed++
			continue
		}
		logger.Info("bill processed",
			"path", path,
			"bill_id", bill.ID,
			"vendor", bill.Vendor,
			"category", bill.CategoryName,
			"transaction_type", bill.TransactionType,
		)
		if out, err := json.MarshalIndent(bill, "", "  "); err == nil {
			fmt.Println(string(out))
		}
		processed++
	}

	logger.Info("run complete", "processed", processed, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
