package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
	"github.com/tanneryrow/backend/internal/taxonomy"
)

// catalogWeightRegex is looser than the storefront one: QB items separate
// range bounds with "-", "/" or nothing, and sometimes abbreviate "oz" as "z".
var catalogWeightRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*[-\x{2013}/]\s*(\d+(?:\.\d+)?)\s*(oz|z|mm)?`)

// sidesPrefixRegex strips the redundant "Sides " category prefix QB uses on
// some full-hide items.
var sidesPrefixRegex = regexp.MustCompile(`(?i)^Sides\s+`)

// CatalogIndexer parses raw QuickBooks item rows into CatalogEntry records
// sharing the Descriptor component space.
type CatalogIndexer struct {
	enableDebugLogging bool
}

// NewCatalogIndexer creates a new catalog indexer
func NewCatalogIndexer(enableDebugLogging bool) *CatalogIndexer {
	return &CatalogIndexer{enableDebugLogging: enableDebugLogging}
}

// Index parses a catalog snapshot. Rows with empty names are skipped and
// rows carrying the "*" deprecation marker are dropped entirely; resolvers
// never see either.
func (ix *CatalogIndexer) Index(rows []domain.CatalogRow) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		name := strings.TrimSpace(row.ItemName)
		if name == "" {
			continue
		}
		if strings.HasPrefix(name, "*") {
			dropped++
			continue
		}
		entry := ix.ParseRow(name)
		entry.Active = row.Active
		entries = append(entries, entry)
	}
	if ix.enableDebugLogging {
		log.Printf("[CATALOG] Indexed %d entries (%d deprecated rows dropped)", len(entries), dropped)
	}
	return entries
}

// ParseRow parses one catalog item name into its components.
//
// Examples:
//
//	"Dublin Black 3.5-4 oz"        -> {tannage: Dublin, color: Black, weight: 3.5-4}
//	"Panel Chrxl Black 3.5-4 oz"   -> {tannage: Chrxl, color: Black, weight: 3.5-4, panel}
//	"Sides Essex Natural 4-5 oz"   -> {tannage: Essex, color: Natural, weight: 4-5}
func (ix *CatalogIndexer) ParseRow(itemName string) domain.CatalogEntry {
	name := strings.TrimSpace(strings.TrimLeft(itemName, "*"))
	name = sidesPrefixRegex.ReplaceAllString(name, "")
	lower := strings.ToLower(name)

	entry := domain.CatalogEntry{
		RawName:            itemName,
		Tannage:            taxonomy.FindTannage(name),
		Color:              taxonomy.FindColor(name),
		IsPanel:            strings.Contains(lower, "panel"),
		IsDoubleHorsefront: strings.Contains(lower, "dhf") || strings.Contains(lower, "double horsefront"),
		IsSingleHorsefront: strings.Contains(lower, "shf") || strings.Contains(lower, "single horsefront"),
		IsHoliday:          strings.Contains(lower, "holiday"),
	}

	if m := catalogWeightRegex.FindStringSubmatch(name); m != nil {
		entry.Weight = m[1] + "-" + m[2]
	}

	return entry
}
