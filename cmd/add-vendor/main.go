// Command add-vendor registers a vendor-to-category mapping in the vendor
// map CSV so future bills from that vendor categorize deterministically.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hisabkitab/bills-tracker/internal/categorize"
	"github.com/hisabkitab/bills-tracker/internal/common"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		vendor     = flag.String("vendor", "", "vendor name (required)")
		category   = flag.String("category", "", "category name (required)")
		confidence = flag.Float64("confidence", 0.9, "mapping confidence, 0 to 1")
	)
	flag.Parse()

	if *vendor == "" || *category == "" {
		printError("Error: -vendor and -category are required\n")
		os.Exit(1)
	}
	if *confidence <= 0 || *confidence > 1 {
		printError("Error: -confidence must be in (0, 1]\n")
		os.Exit(1)
	}

	logger := common.InitLogger()
	cfg := common.LoadConfig()

	vendorMap, err := categorize.NewVendorMap(cfg.Categorizer.VendorMapPath)
	if err != nil {
		printError("Error: loading vendor map: %v\n", err)
		os.Exit(1)
	}

	if err := vendorMap.AddVendor(*vendor, *category, *confidence); err != nil {
		printError("Error: adding vendor: %v\n", err)
		os.Exit(1)
	}

	logger.Info("vendor mapping added",
		"vendor", *vendor, "category", *category, "confidence", *confidence,
		"path", cfg.Categorizer.VendorMapPath)
	fmt.Printf("Mapped %q -> %q (%.2f)\n", *vendor, *category, *confidence)
}
