package usecase

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
	"github.com/tanneryrow/backend/internal/taxonomy"
)

// Fixed catalog items for categories that never need a lookup.
const (
	scrapItem         = "Scrap Leather"
	giftCardItem      = "Gift card"
	commissionItem    = "Commission"
	basketballDefault = "Horween 2003C Basketball Leather"
	defaultAdhesive   = "1816b" // Ecostick 1816B is the stocked default
)

// currentSeasonBundle is the only mystery-bundle listing that still maps
// anywhere; every other bundle name belongs to a previous year's sale.
const currentSeasonBundle = "mystery leather panel"

var (
	adhesiveCodeRegex = regexp.MustCompile(`(\d+\w*)`)
	sportsCodeRegex   = regexp.MustCompile(`(?i)(\d{3,4}[A-Za-z]?)`)
)

// CategoryMatchers resolves the product categories that don't fit the
// general tannage/color/weight scheme. Tried before the general resolver.
type CategoryMatchers struct{}

// NewCategoryMatchers creates the category matcher set
func NewCategoryMatchers() *CategoryMatchers {
	return &CategoryMatchers{}
}

// Match dispatches on the descriptor's product type. The second return value
// reports whether the category owned the outcome: when false the caller must
// continue with the general resolver (strips intentionally falls through on
// a miss, and untyped products are only claimed for gift cards).
func (m *CategoryMatchers) Match(desc domain.Descriptor, catalog []domain.CatalogEntry, productName, variant string) (domain.MatchResult, bool) {
	switch desc.ProductType {
	case domain.ProductSampleBook:
		return sentinelUnless(matchSampleBook(desc, catalog, productName, variant)), true

	case domain.ProductAccessory:
		return sentinelUnless(matchAccessory(catalog, productName, variant)), true

	case domain.ProductStrips:
		if item, ok := matchStrips(desc, catalog, productName, variant); ok {
			return domain.MatchResult{Item: item, Tier: domain.TierCategory}, true
		}
		return domain.MatchResult{}, false

	case domain.ProductBasketball, domain.ProductFootball:
		return sentinelUnless(matchSportsLeather(desc, catalog, productName, variant)), true

	case domain.ProductLining:
		return sentinelUnless(matchLining(desc, catalog, productName)), true

	case domain.ProductBookbinding:
		return sentinelUnless(matchBookbinding(desc, catalog)), true

	case domain.ProductScrap:
		return domain.MatchResult{Item: scrapItem, Tier: domain.TierCategory}, true

	case domain.ProductMysteryBundle:
		if strings.Contains(strings.ToLower(productName), currentSeasonBundle) {
			// Needs a dedicated QB item; flag it instead of guessing.
			return domain.MatchResult{Item: domain.SentinelItem, Tier: domain.TierSentinel, NeedsNewItem: true}, true
		}
		return domain.MatchResult{Tier: domain.TierDeprecated}, true
	}

	lower := strings.ToLower(productName)
	if strings.Contains(lower, "gift card") && !strings.Contains(lower, "redemption") {
		return domain.MatchResult{Item: giftCardItem, Tier: domain.TierCategory}, true
	}

	return domain.MatchResult{}, false
}

// sentinelUnless wraps a category lookup result, substituting the sentinel
// when the lookup missed.
func sentinelUnless(item string, ok bool) domain.MatchResult {
	if !ok {
		return domain.MatchResult{Item: domain.SentinelItem, Tier: domain.TierSentinel, NeedsNewItem: true}
	}
	return domain.MatchResult{Item: item, Tier: domain.TierCategory}
}

// matchSampleBook finds a "Sample Book - ..." QB item. Terms are tried in
// specificity order; several collections use the variant itself as the book
// type, so those phrasings come first.
func matchSampleBook(desc domain.Descriptor, catalog []domain.CatalogEntry, productName, variant string) (string, bool) {
	nameLower := strings.ToLower(productName)
	variantLower := strings.ToLower(variant)

	var terms []string

	// TR Collection swatch books: variant IS the tannage/type
	if strings.Contains(nameLower, "tr collection") && variant != "" {
		terms = append(terms, "sample book - "+variantLower)
		if strings.Contains(variantLower, "lamb") || strings.Contains(variantLower, "nappa") {
			terms = append(terms, "sample book - kid, lamb, goat")
		}
	}

	// Tusting & Burnett swatch books
	if strings.Contains(nameLower, "tusting") && variant != "" {
		if strings.Contains(variantLower, "dip") {
			terms = append(terms, "sample book - t & b dip dye")
		}
		if strings.Contains(variantLower, "marsh") {
			terms = append(terms, "sample book - t & b marsh")
		}
		terms = append(terms, "sample book - t & b "+variantLower)
	}

	// Les Rives swatch books
	if strings.Contains(nameLower, "les rives") && variant != "" {
		terms = append(terms, "sample book - les rives "+variantLower)
		terms = append(terms, "sample book - "+variantLower)
	}

	// Onda Verde swatch books
	if strings.Contains(nameLower, "onda verde") && variant != "" {
		terms = append(terms, "sample book - onda verde "+variantLower)
		terms = append(terms, "sample book - "+variantLower)
	}

	tannageLower := strings.ToLower(desc.Tannage)
	brandLower := strings.ToLower(desc.Brand)

	if desc.Brand != "" && desc.Tannage != "" {
		terms = append(terms, "sample book - "+brandLower+" "+tannageLower)
	}
	if desc.Tannage != "" {
		terms = append(terms, "sample book - "+tannageLower)
		if strings.Contains(nameLower, "horween") {
			terms = append(terms, "sample book - horween "+tannageLower)
		}
	}
	if desc.Brand != "" {
		terms = append(terms, "sample book - all "+brandLower)
	}

	if strings.Contains(nameLower, "walpier") {
		terms = append(terms, "sample book - all walpier")
	}
	if strings.Contains(nameLower, "stead") {
		terms = append(terms, "sample book - all stead")
		if desc.Tannage != "" {
			terms = append(terms, "sample book - stead "+tannageLower)
		}
	}
	if strings.Contains(nameLower, "tempesti") {
		terms = append(terms, "sample book - all tempesti")
	}

	for _, entry := range catalog {
		raw := strings.ToLower(entry.RawName)
		if !strings.HasPrefix(raw, "sample book") {
			continue
		}
		for _, term := range terms {
			if strings.Contains(raw, term) {
				return entry.RawName, true
			}
			// Abbreviated QB names: accept when every token appears somewhere
			parts := strings.Fields(strings.TrimPrefix(term, "sample book - "))
			if len(parts) > 0 && allContained(raw, parts) {
				return entry.RawName, true
			}
		}
	}
	return "", false
}

func allContained(haystack string, needles []string) bool {
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			return false
		}
	}
	return true
}

// matchAccessory routes leather-care and adhesive products by keyword.
func matchAccessory(catalog []domain.CatalogEntry, productName, variant string) (string, bool) {
	fullName := strings.ToLower(productName + " " + variant)

	if strings.Contains(fullName, "tokonole") {
		switch {
		case strings.Contains(fullName, "care cream") || strings.Contains(fullName, "conditioning") || strings.Contains(fullName, "balm"):
			if item, ok := findByKeywords(catalog, "tokonole", "care"); ok {
				return item, true
			}
		case strings.Contains(fullName, "burnishing") || strings.Contains(fullName, "gum"):
			color := "clear"
			if strings.Contains(fullName, "black") {
				color = "black"
			} else if strings.Contains(fullName, "brown") {
				color = "brown"
			}
			size := "120g"
			if strings.Contains(fullName, "500") {
				size = "500g"
			}
			if item, ok := findByKeywords(catalog, "tokonole", color, size); ok {
				return item, true
			}
		}
	}

	if strings.Contains(fullName, "saphir") {
		saphirLines := []struct {
			keywords []string
			qbPhrase string
		}{
			{[]string{"pate de luxe", "pâte de luxe", "wax polish"}, "saphir pate de luxe"},
			{[]string{"nappa"}, "saphir nappa"},
			{[]string{"renovateur"}, "saphir renovateur"},
			{[]string{"cordovan"}, "saphir cordovan"},
			{[]string{"oiled"}, "saphir oiled"},
			{[]string{"brush"}, "saphir brush"},
			{[]string{"cloth"}, "saphir cloth"},
		}
		for _, line := range saphirLines {
			for _, kw := range line.keywords {
				if strings.Contains(fullName, kw) {
					if item, ok := findByKeywords(catalog, line.qbPhrase); ok {
						return item, true
					}
					return "", false
				}
			}
		}
	}

	if strings.Contains(fullName, "ecostick") {
		code := defaultAdhesive
		if m := adhesiveCodeRegex.FindStringSubmatch(fullName); m != nil {
			code = strings.ToLower(m[1])
		}
		if item, ok := findByKeywords(catalog, "ecostick", code); ok {
			return item, true
		}
		return "", false
	}

	// Cordovan belts are custom work billed against the commission item.
	if strings.Contains(fullName, "belt") {
		for _, entry := range catalog {
			if strings.EqualFold(entry.RawName, commissionItem) {
				return entry.RawName, true
			}
		}
	}

	if strings.Contains(fullName, "conditioner") {
		if item, ok := findByKeywords(catalog, "tr leather conditioner"); ok {
			return item, true
		}
		for _, entry := range catalog {
			raw := strings.ToLower(entry.RawName)
			if strings.Contains(raw, "leather conditioner") && !strings.Contains(raw, "rita") {
				return entry.RawName, true
			}
		}
	}

	return "", false
}

// findByKeywords returns the first catalog item containing all keywords.
func findByKeywords(catalog []domain.CatalogEntry, keywords ...string) (string, bool) {
	for _, entry := range catalog {
		if allContained(strings.ToLower(entry.RawName), keywords) {
			return entry.RawName, true
		}
	}
	return "", false
}

// matchSportsLeather matches basketball/football leather, preferring the
// Horween article code (e.g. 2003C, 8064), then color. Basketball has a
// stocked default article.
func matchSportsLeather(desc domain.Descriptor, catalog []domain.CatalogEntry, productName, variant string) (string, bool) {
	fullName := strings.ToLower(productName + " " + variant)
	sport := "basketball"
	if desc.ProductType == domain.ProductFootball {
		sport = "football"
	}

	code := ""
	if m := sportsCodeRegex.FindStringSubmatch(fullName); m != nil {
		code = strings.ToLower(m[1])
	}

	if code != "" {
		if item, ok := findByKeywords(catalog, sport, code); ok {
			return item, true
		}
	}
	if desc.Color != "" {
		if item, ok := findByKeywords(catalog, sport, strings.ToLower(desc.Color)); ok {
			return item, true
		}
	}
	if desc.ProductType == domain.ProductBasketball {
		return basketballDefault, true
	}
	return "", false
}

// matchLining matches Glovey calf lining (or goat lining) by color.
func matchLining(desc domain.Descriptor, catalog []domain.CatalogEntry, productName string) (string, bool) {
	color := strings.ToLower(desc.Color)

	for _, entry := range catalog {
		raw := strings.ToLower(entry.RawName)
		if strings.Contains(raw, "glovey") && strings.Contains(raw, "calf lining") {
			if color != "" && strings.Contains(raw, color) {
				return entry.RawName, true
			}
		}
	}

	if strings.Contains(strings.ToLower(productName), "goat") {
		for _, entry := range catalog {
			raw := strings.ToLower(entry.RawName)
			if strings.Contains(raw, "goat lining") && color != "" && strings.Contains(raw, color) {
				return entry.RawName, true
			}
		}
	}

	return "", false
}

// matchBookbinding matches Sokoto bookbinding stock by color, tolerating
// both the abbreviated "Sokoto Book" and spelled-out "Sokoto Bookbinding"
// catalog forms.
func matchBookbinding(desc domain.Descriptor, catalog []domain.CatalogEntry) (string, bool) {
	color := strings.ToLower(desc.Color)
	for _, entry := range catalog {
		raw := strings.ToLower(entry.RawName)
		if strings.Contains(raw, "sokoto") && strings.Contains(raw, "book") {
			if color != "" && strings.Contains(raw, color) {
				return entry.RawName, true
			}
		}
	}
	return "", false
}

// matchStrips applies three independent sub-rules: russet horsehide strips
// (roll type + best weight-band candidate), handstained strips by color, and
// horsebutt strips by color. A miss falls through to the general resolver.
func matchStrips(desc domain.Descriptor, catalog []domain.CatalogEntry, productName, variant string) (string, bool) {
	fullName := strings.ToLower(productName + " " + variant)

	if strings.Contains(fullName, "russet") && (strings.Contains(fullName, "horsehide") || strings.Contains(fullName, "strip")) {
		rollType := "hard rolled"
		rollAbbrev := "hr"
		if strings.Contains(fullName, "soft") {
			rollType = "soft rolled"
			rollAbbrev = "sr"
		}

		// "9+" means "9 oz and up"; QB spells that out.
		var weightTerms []string
		if desc.Weight != "" {
			if strings.HasSuffix(desc.Weight, "+") {
				base := strings.TrimSuffix(desc.Weight, "+")
				weightTerms = []string{base + " oz and up", "and up", base}
			} else {
				weightTerms = taxonomy.WeightVariants(desc.Weight)
			}
		}

		type candidate struct {
			rank int
			item string
		}
		var candidates []candidate
		for _, entry := range catalog {
			raw := strings.ToLower(entry.RawName)
			if !strings.Contains(raw, "russet") || !strings.Contains(raw, "strip") {
				continue
			}
			rollMatch := strings.Contains(raw, rollType) ||
				containsWord(raw, rollAbbrev) ||
				strings.Contains(raw, "strips "+rollAbbrev)
			if !rollMatch {
				continue
			}
			if len(weightTerms) > 0 {
				// Lower index = tighter band = higher priority
				for i, wv := range weightTerms {
					if strings.Contains(raw, wv) {
						candidates = append(candidates, candidate{rank: i, item: entry.RawName})
						break
					}
				}
			} else {
				candidates = append(candidates, candidate{rank: 999, item: entry.RawName})
			}
		}
		if len(candidates) > 0 {
			sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].rank < candidates[j].rank })
			return candidates[0].item, true
		}
	}

	if strings.Contains(fullName, "handstained") || strings.Contains(fullName, "hand stained") {
		color := strings.ToLower(desc.Color)
		for _, entry := range catalog {
			raw := strings.ToLower(entry.RawName)
			if strings.Contains(raw, "handstained") && strings.Contains(raw, "strip") {
				if color != "" && strings.Contains(raw, color) {
					return entry.RawName, true
				}
			}
		}
	}

	if strings.Contains(fullName, "horsebutt") {
		color := strings.ToLower(desc.Color)
		for _, entry := range catalog {
			raw := strings.ToLower(entry.RawName)
			if strings.Contains(raw, "horsebutt") && strings.Contains(raw, "strip") {
				if color != "" && strings.Contains(raw, color) {
					return entry.RawName, true
				}
			}
		}
	}

	return "", false
}

func containsWord(s, word string) bool {
	for _, f := range strings.Fields(s) {
		if f == word {
			return true
		}
	}
	return false
}
