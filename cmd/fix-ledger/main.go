// Command fix-ledger backfills NPR amounts for foreign-currency bills and
// corrects transaction roles for bills stored with the wrong ledger side.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hisabkitab/bills-tracker/internal/common"
	repo "github.com/hisabkitab/bills-tracker/internal/repository"
	"github.com/hisabkitab/bills-tracker/internal/services/ledger"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		username = flag.String("user", "", "username whose bills to fix (required)")
		convert  = flag.Bool("convert", true, "backfill missing NPR amounts")
		roles    = flag.Bool("roles", true, "re-check debit/credit classification")
		sqlite   = flag.String("sqlite", "", "use a local SQLite database file instead of Postgres")
	)
	flag.Parse()

	if *username == "" {
		printError("Error: -user is required\n")
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

	user, err := usersRepo.FindByUsername(ctx, *username)
	if err != nil {
		printError("Error: looking up user %q: %v\n", *username, err)
		os.Exit(1)
	}

	svc := ledger.NewService(usersRepo, billsRepo, logger)

	if *convert {
		stats, err := svc.ConvertCurrencies(ctx, user.ID)
		if err != nil {
			printError("Error: converting currencies: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Currency conversion: %d scanned, %d converted\n", stats.Scanned, stats.Converted)
	}

	if *roles {
		stats, err := svc.FixTransactionRoles(ctx, user.ID)
		if err != nil {
			printError("Error: fixing transaction roles: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Transaction roles: %d scanned, %d corrected\n", stats.Scanned, stats.Flipped)
	}
}
