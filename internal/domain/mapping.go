package domain

// SentinelItem is the fixed catalog placeholder used when no specific match
// exists but a mapping must still be emitted. The spelling matches the
// QuickBooks item exactly, typo included.
const SentinelItem = "MISCELLANOUS LEATHER"

// MatchTier is the resolver confidence level attached to every outcome.
type MatchTier string

const (
	// TierExact means the strict 4-component resolver matched.
	TierExact MatchTier = "exact"
	// TierClosest means the weight-relaxed fallback resolver matched.
	TierClosest MatchTier = "closest"
	// TierCategory means a category-specific matcher produced the item.
	TierCategory MatchTier = "category"
	// TierSentinel means no match was found and the sentinel item is used.
	TierSentinel MatchTier = "sentinel"
	// TierDeprecated means the product is an explicitly retired listing.
	// Callers must skip it entirely; it is not "unmatched".
	TierDeprecated MatchTier = "deprecated"
)

// MatchResult is the unified outcome of one resolution attempt. Item is the
// raw catalog name ("" only for TierDeprecated).
type MatchResult struct {
	Item         string    `json:"item"`
	Tier         MatchTier `json:"tier"`
	NeedsReview  bool      `json:"needsReview"`
	NeedsNewItem bool      `json:"needsNewItem"`
}

// Deprecated reports whether the result must be silently skipped.
func (r MatchResult) Deprecated() bool { return r.Tier == TierDeprecated }

// MappingRow is one line of the output mapping table.
type MappingRow struct {
	InternalSKU   string      `json:"internalSku"`
	SourceProduct string      `json:"sourceProduct"`
	SourceVariant string      `json:"sourceVariant"`
	SourceSKU     string      `json:"sourceSku"`
	TargetItem    string      `json:"targetItem"`
	Tannage       string      `json:"tannage"`
	Color         string      `json:"color"`
	Weight        string      `json:"weight"`
	ProductType   ProductType `json:"productType"`
	Tier          MatchTier   `json:"tier"`
	NeedsNewItem  bool        `json:"needsNewItem"`
	NeedsReview   bool        `json:"needsReview"`
}

// TypeCount aggregates matched/total per product type.
type TypeCount struct {
	Total   int `json:"total"`
	Matched int `json:"matched"`
}

// MappingReport is the full output of one mapping builder run. Rows preserve
// input order so re-running on identical input yields identical output.
type MappingReport struct {
	Rows          []MappingRow              `json:"rows"`
	Exact         int                       `json:"exact"`
	NeedsReview   int                       `json:"needsReview"`
	NeedsNewItem  int                       `json:"needsNewItem"`
	Deprecated    int                       `json:"deprecated"`
	ByProductType map[ProductType]TypeCount `json:"byProductType"`
}
