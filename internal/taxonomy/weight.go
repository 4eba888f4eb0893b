package taxonomy

import (
	"regexp"
	"strings"
)

// weightBands maps a canonical storefront weight range to the QB range
// strings acceptable for it, ordered by preference: tighter sub-ranges
// first, lenient adjacent ranges last. The lists are hand-authored from
// billing history and are not symmetric between adjacent bands; preserve
// them exactly rather than deriving.
var weightBands = map[string][]string{
	// Full oz ranges - expanded to accept sub-ranges (prefer higher)
	"3-4":  {"3.5-4", "3-4", "3-3.5", "4-5"},
	"4-5":  {"4.5-5", "4-5", "4-4.5", "5-6", "3.5-4"},
	"5-6":  {"5.5-6", "5-6", "5-5.5", "6-7", "4.5-5"},
	"6-7":  {"6.5-7", "6-7", "6-6.5", "5.5-6"},
	"7-8":  {"7.5-8", "7-8", "7-7.5", "8-9"},
	"8-9":  {"8.5-9", "8/9", "8-9", "8-8.5", "9-10"},
	"9-10": {"9.5-10", "9/10", "9-10", "9-9.5"},
	// Half oz ranges - very lenient, accept overlapping
	"3-3.5":   {"3-3.5", "3-4", "3.5-4"},
	"3.5-4":   {"3.5-4", "3-4", "4-5", "4-4.5"},
	"4-4.5":   {"4-4.5", "4-5", "4.5-5", "3.5-4"},
	"4.5-5":   {"4.5-5", "4-5", "4.5-5.5", "5-5.5", "5-6"},
	"4.5-5.5": {"4.5-5.5", "4.5-5", "5-5.5", "5-6", "4-5"}, // C.F. Stead lenient
	"5-5.5":   {"5-5.5", "5-6", "5.5-6", "4.5-5"},
	"5.5-6":   {"5.5-6", "5-6", "6-7"},
	// mm weights (Italian/upholstery leathers) - very lenient
	"0.9-1.1": {"0.9-1.1", "0.9/1.1", "1.0-1.2", "1-1.2"},
	"1.0-1.2": {"1.0-1.2", "1.0/1.2", "0.9-1.1", "1-1.2", "1.2-1.4"},
	"1-1.2":   {"1-1.2", "1.0-1.2", "0.9-1.1"},
	"1.2-1.4": {"1.2-1.4", "1.2/1.4", "1.0-1.2", "1.4-1.6"},
	"1.3-1.5": {"1.3-1.5", "1.2-1.4", "1.4-1.6"},
	"1.4-1.6": {"1.4-1.6", "1.4/1.6", "1.2-1.4", "1.6-1.8"},
	"1.8-2.0": {"1.8-2.0", "1.8/2.0", "1.8-2.2", "2.0-2.2"},
	"1.8-2.2": {"1.8-2.2", "1.8-2.0", "2.0-2.2", "2.2-2.4"},
	"2.0-2.2": {"2.0-2.2", "2.0/2.2", "1.8-2.0", "1.8-2.2"},
	"2.6-2.8": {"2.6-2.8", "2.6/2.8"},
}

var parenRegex = regexp.MustCompile(`\([^)]*\)`)

// NormalizeWeight reduces a weight string to its bare range form: unit
// suffixes, whitespace and parenthetical annotations stripped, dash
// variants unified to "-".
func NormalizeWeight(weight string) string {
	if weight == "" {
		return ""
	}
	w := strings.ToLower(weight)
	w = strings.ReplaceAll(w, "oz", "")
	w = strings.ReplaceAll(w, "mm", "")
	w = strings.ReplaceAll(w, " ", "")
	w = strings.TrimSpace(parenRegex.ReplaceAllString(w, ""))
	w = strings.ReplaceAll(w, "–", "-") // en dash
	w = strings.ReplaceAll(w, "—", "-") // em dash
	return w
}

// WeightVariants returns the ordered list of acceptable QB weight strings
// for the given storefront weight. Unknown weights accept only themselves.
func WeightVariants(weight string) []string {
	normalized := NormalizeWeight(weight)
	if variants, ok := weightBands[normalized]; ok {
		return variants
	}
	return []string{normalized}
}
