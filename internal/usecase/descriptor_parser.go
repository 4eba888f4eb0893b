package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
	"github.com/tanneryrow/backend/internal/taxonomy"
)

// Package-level compiled regex patterns for performance
var (
	// Matches ranged weights like "3-4 oz", "1.0-1.2 mm" (en dash tolerated)
	rangedWeightRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*[-\x{2013}]\s*(\d+(?:\.\d+)?)\s*(oz|mm)`)

	// Matches open-ended weights like "9+ oz", meaning "9 oz and up"
	openWeightRegex = regexp.MustCompile(`(?i)(\d+)\+?\s*oz`)
)

// typeRule routes a product name to a ProductType. Rules are evaluated in
// order and the first match wins; exclude vetoes the rule so that e.g.
// "Mystery Leather Panels" stays a mystery bundle, not a panel.
type typeRule struct {
	patterns []string
	exclude  string
	result   domain.ProductType
}

var typeRules = []typeRule{
	{patterns: []string{"panel"}, exclude: "mystery", result: domain.ProductPanel},
	{patterns: []string{"horsefront", "dhf", "shf"}, result: domain.ProductHorsefront},
	{patterns: []string{"strip"}, result: domain.ProductStrips},
	{patterns: []string{"mystery bundle", "mystery leather"}, result: domain.ProductMysteryBundle},
	{patterns: []string{"swatch", "sample book"}, result: domain.ProductSampleBook},
	{patterns: []string{"saphir", "tokonole", "conditioner", "brush", "cream", "balm", "glue", "belt", "bag", "wallet", "ecostick"}, result: domain.ProductAccessory},
	{patterns: []string{"basketball"}, result: domain.ProductBasketball},
	{patterns: []string{"football"}, result: domain.ProductFootball},
	{patterns: []string{"calf lining", "lining"}, result: domain.ProductLining},
	{patterns: []string{"scrap"}, result: domain.ProductScrap},
	{patterns: []string{"bookbinding"}, result: domain.ProductBookbinding},
}

// DescriptorParser turns a (product name, variant) pair into a structured
// Descriptor using the shared taxonomy vocabularies.
type DescriptorParser struct {
	enableDebugLogging bool
}

// NewDescriptorParser creates a new descriptor parser
func NewDescriptorParser(enableDebugLogging bool) *DescriptorParser {
	return &DescriptorParser{enableDebugLogging: enableDebugLogging}
}

// Parse builds a Descriptor from a storefront product name and variant.
// Parsing is pure: the same inputs always produce the same Descriptor.
//
// Examples:
//
//	"Horween • Dublin - Black - 3-4 oz"                          -> (Dublin, Black, 3-4, full_hide)
//	"Horween Dublin Leather Panels - 1' Panel" / "Black - 3-4 oz" -> (Dublin, Black, 3-4, panel)
func (p *DescriptorParser) Parse(productName, variant string) domain.Descriptor {
	fullName := productName
	if variant != "" {
		fullName = productName + " - " + variant
	}

	productType := detectProductType(fullName)
	brand := taxonomy.FindBrand(fullName)
	tannage := taxonomy.FindTannage(fullName)

	// Color lives in the variant when one exists; the full name otherwise.
	colorSource := fullName
	if variant != "" {
		colorSource = variant
	}
	color := taxonomy.FindColor(colorSource)

	weight, rawWeight := parseWeight(fullName)

	if p.enableDebugLogging {
		log.Printf("[PARSE] %q / %q -> tannage=%q color=%q weight=%q type=%s brand=%q",
			productName, variant, tannage, color, weight, productType, brand)
	}

	return domain.Descriptor{
		Tannage:     tannage,
		Color:       color,
		Weight:      weight,
		RawWeight:   rawWeight,
		ProductType: productType,
		Brand:       brand,
	}
}

// detectProductType applies the ordered keyword rules, defaulting to full_hide.
func detectProductType(fullName string) domain.ProductType {
	lower := strings.ToLower(fullName)
	for _, rule := range typeRules {
		if rule.exclude != "" && strings.Contains(lower, rule.exclude) {
			continue
		}
		for _, pattern := range rule.patterns {
			if strings.Contains(lower, pattern) {
				return rule.result
			}
		}
	}
	return domain.ProductFullHide
}

// parseWeight extracts both the raw weight span and its normalized
// "low-high" or "N+" form.
func parseWeight(fullName string) (weight, rawWeight string) {
	if m := rangedWeightRegex.FindStringSubmatch(fullName); m != nil {
		return m[1] + "-" + m[2], m[0]
	}
	if m := openWeightRegex.FindStringSubmatch(fullName); m != nil {
		return m[1] + "+", m[0]
	}
	return "", ""
}
