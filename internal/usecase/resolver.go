package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
	"github.com/tanneryrow/backend/internal/taxonomy"
)

// Scoring for strict candidates
const (
	baseMatchScore  = 10 // every survivor of the strict filter
	activeItemBonus = 1  // prefer items still active in QB
)

var leadingNumberRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// Resolver performs strict 4-component matching over the full catalog, with
// a weight-relaxed closest-match fallback when nothing survives.
type Resolver struct {
	enableDebugLogging bool
}

// NewResolver creates a new resolver
func NewResolver(enableDebugLogging bool) *Resolver {
	return &Resolver{enableDebugLogging: enableDebugLogging}
}

// Resolve runs the strict matcher, then the fallback. It never mutates its
// inputs and is fully deterministic for a fixed catalog.
func (r *Resolver) Resolve(desc domain.Descriptor, catalog []domain.CatalogEntry, fullName string) domain.MatchResult {
	// Parsing produced nothing to match on; don't even try.
	if desc.Tannage == "" && desc.Color == "" {
		return domain.MatchResult{Item: domain.SentinelItem, Tier: domain.TierSentinel, NeedsNewItem: true}
	}

	if entry, ok := r.resolveStrict(desc, catalog, fullName); ok {
		return domain.MatchResult{Item: entry.RawName, Tier: domain.TierExact}
	}

	if entry, ok := r.resolveClosest(desc, catalog, fullName); ok {
		if r.enableDebugLogging {
			log.Printf("[MATCH] closest match for tannage=%q color=%q: %q (needs review)",
				desc.Tannage, desc.Color, entry.RawName)
		}
		return domain.MatchResult{Item: entry.RawName, Tier: domain.TierClosest, NeedsReview: true}
	}

	return domain.MatchResult{Item: domain.SentinelItem, Tier: domain.TierSentinel, NeedsNewItem: true}
}

// resolveStrict filters the catalog down to entries matching ALL of tannage,
// color, weight and product type, then picks the highest-scoring survivor.
// Ties keep catalog order.
func (r *Resolver) resolveStrict(desc domain.Descriptor, catalog []domain.CatalogEntry, fullName string) (domain.CatalogEntry, bool) {
	tannageVariants := taxonomy.TannageVariants(desc.Tannage, fullName)

	weightVariants := map[string]bool{}
	if desc.Weight != "" {
		for _, w := range taxonomy.WeightVariants(desc.Weight) {
			weightVariants[taxonomy.NormalizeWeight(w)] = true
		}
	}

	var best domain.CatalogEntry
	bestScore := -1

	for _, entry := range catalog {
		// 1. Tannage present on both sides and compatible
		if desc.Tannage == "" || !taxonomy.TannageCompatible(tannageVariants, entry.Tannage) {
			continue
		}

		// 2. Color, when the descriptor has one
		if desc.Color != "" && !taxonomy.ColorsMatch(desc.Color, entry.Color) {
			continue
		}

		// 3. Weight, when the descriptor has one. Horsefront entries
		// legitimately omit weight in QB; everything else must declare one.
		if desc.Weight != "" {
			entryWeight := taxonomy.NormalizeWeight(entry.Weight)
			if entryWeight != "" {
				if !weightVariants[entryWeight] {
					continue
				}
			} else if desc.ProductType != domain.ProductHorsefront {
				continue
			}
		}

		// 4. Product type
		if !productTypeMatches(desc.ProductType, entry, true) {
			continue
		}

		score := baseMatchScore
		if entry.Active {
			score += activeItemBonus
		}
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}

	return best, bestScore >= 0
}

// resolveClosest repeats the tannage/color/type filter with the weight check
// removed, preferring the candidate with the highest declared weight. Under-
// billing a heavier hide is worse than flagging one for review.
func (r *Resolver) resolveClosest(desc domain.Descriptor, catalog []domain.CatalogEntry, fullName string) (domain.CatalogEntry, bool) {
	if desc.Tannage == "" {
		return domain.CatalogEntry{}, false
	}

	tannageVariants := taxonomy.TannageVariants(desc.Tannage, fullName)

	var best domain.CatalogEntry
	bestWeight := -1.0
	found := false

	for _, entry := range catalog {
		if !taxonomy.TannageCompatible(tannageVariants, entry.Tannage) {
			continue
		}
		if desc.Color != "" && !taxonomy.ColorsMatch(desc.Color, entry.Color) {
			continue
		}
		if !productTypeMatches(desc.ProductType, entry, false) {
			continue
		}

		weight := leadingWeightValue(entry.Weight)
		if weight > bestWeight {
			bestWeight = weight
			best = entry
			found = true
		}
	}

	return best, found
}

// productTypeMatches gates a catalog entry on the descriptor's product type.
// Single-horsefront demand is deliberately satisfied by the double-horsefront
// entry: SHF bills at half the DHF price by convention, so only DHF items
// exist in QB. requireStripName is only enforced by the strict pass.
func productTypeMatches(pt domain.ProductType, entry domain.CatalogEntry, requireStripName bool) bool {
	switch pt {
	case domain.ProductPanel:
		return entry.IsPanel
	case domain.ProductHorsefront:
		return entry.IsDoubleHorsefront
	case domain.ProductFullHide:
		return !entry.IsPanel && !entry.IsDoubleHorsefront && !entry.IsSingleHorsefront && !entry.IsHoliday
	case domain.ProductStrips:
		if requireStripName {
			return strings.Contains(strings.ToLower(entry.RawName), "strip")
		}
		return true
	default:
		return true
	}
}

// leadingWeightValue extracts the first numeric value of a weight range for
// ranking ("5-6" -> 5). Entries without a weight rank lowest.
func leadingWeightValue(weight string) float64 {
	m := leadingNumberRegex.FindStringSubmatch(weight)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}
