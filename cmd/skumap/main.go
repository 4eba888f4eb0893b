package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tanneryrow/backend/internal/domain"
	"github.com/tanneryrow/backend/internal/infrastructure/catalogcsv"
	"github.com/tanneryrow/backend/internal/infrastructure/squarespace"
	"github.com/tanneryrow/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	orders := flag.Int("orders", 100, "number of recent orders to fetch")
	catalogPath := flag.String("catalog", "config/qb_items.csv", "QB item list CSV file")
	output := flag.String("output", "config/product_mappings.csv", "output mapping CSV file")
	showUnmatched := flag.Bool("show-unmatched", false, "show products that could not be matched")
	debug := flag.Bool("debug", false, "enable matcher debug logging")
	flag.Parse()

	apiKey := os.Getenv("TANNERYROW_SQUARESPACE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("SQUARESPACE_API_KEY")
	}
	if apiKey == "" {
		log.Fatal("Squarespace API key not set (TANNERYROW_SQUARESPACE_API_KEY)")
	}

	ctx := context.Background()

	fmt.Printf("Loading QB items from: %s\n", *catalogPath)
	loader := catalogcsv.NewLoader(*catalogPath)
	rows, err := loader.LoadRows()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	fmt.Printf("  Loaded %d QB items\n", len(rows))

	active := 0
	for _, r := range rows {
		if r.Active {
			active++
		}
	}
	fmt.Printf("  Active items: %d\n", active)

	indexer := usecase.NewCatalogIndexer(*debug)
	catalog := indexer.Index(rows)

	fmt.Printf("\nFetching %d recent orders from Squarespace...\n", *orders)
	client := squarespace.NewClient(apiKey, "https://api.squarespace.com")
	fetched, err := client.FetchOrders(ctx, "FULFILLED", *orders)
	if err != nil {
		log.Fatalf("Failed to fetch orders: %v", err)
	}
	fmt.Printf("  Fetched %d orders\n", len(fetched))

	records := squarespace.ExtractUniqueProducts(fetched)
	fmt.Printf("  Found %d unique product/variant combinations\n", len(records))

	service := usecase.NewMappingService(
		client, loader, nil, nil,
		usecase.NewDescriptorParser(*debug),
		indexer,
		usecase.NewCategoryMatchers(),
		usecase.NewResolver(*debug),
		time.Hour,
	)

	fmt.Println("\nMatching products to QB items...")
	report, err := service.BuildMapping(ctx, records, catalog)
	if err != nil {
		log.Fatalf("Failed to build mapping: %v", err)
	}

	fmt.Printf("  Exact match: %d/%d\n", report.Exact, len(records))
	fmt.Printf("  Closest match (needs review): %d\n", report.NeedsReview)
	fmt.Printf("  Fallback to MISC (needs QB item): %d\n", report.NeedsNewItem)
	fmt.Printf("  Deprecated listings skipped: %d\n", report.Deprecated)

	if *showUnmatched {
		printFlagged(report)
	}

	if err := catalogcsv.WriteReport(*output, report); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	fmt.Printf("\nWrote %d mappings to: %s\n", len(report.Rows), *output)
}

// printFlagged lists the rows a human should look at before the mapping is
// trusted for billing.
func printFlagged(report *domain.MappingReport) {
	var review, needsItem []domain.MappingRow
	for _, row := range report.Rows {
		switch {
		case row.NeedsReview:
			review = append(review, row)
		case row.NeedsNewItem:
			needsItem = append(needsItem, row)
		}
	}

	if len(review) > 0 {
		fmt.Println("\n=== Closest Match - Needs Review (weight mismatch) ===")
		for i, row := range review {
			if i == 20 {
				fmt.Printf("  ... and %d more\n", len(review)-20)
				break
			}
			printRow(row)
			fmt.Printf("    Matched to: %s\n", row.TargetItem)
		}
	}

	if len(needsItem) > 0 {
		fmt.Println("\n=== Needs QB Item (no match found) ===")
		for i, row := range needsItem {
			if i == 30 {
				fmt.Printf("  ... and %d more\n", len(needsItem)-30)
				break
			}
			printRow(row)
		}
	}
}

func printRow(row domain.MappingRow) {
	fmt.Printf("  %s\n", row.SourceProduct)
	if row.SourceVariant != "" {
		fmt.Printf("    Variant: %s\n", row.SourceVariant)
	}
	fmt.Printf("    Parsed: %s / %s / %s (%s)\n", row.Tannage, row.Color, row.Weight, row.ProductType)
}
