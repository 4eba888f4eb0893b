package taxonomy

import "strings"

// colorEquivalents maps a lowercase color to the surface forms QuickBooks is
// known to use for it. The table is hand-authored and intentionally not
// perfectly symmetric; keep it as published.
var colorEquivalents = map[string][]string{
	"greener pastures": {"greener p", "greener pastures", "greener"},
	"greener p":        {"greener pastures", "greener p", "greener"},
	"greener":          {"greener pastures", "greener p", "greener"},
	"light natural":    {"lt natural", "lt nat", "light natural", "lt"},
	"lt natural":       {"light natural", "lt nat", "lt natural"},
	"lt nat":           {"light natural", "lt natural", "lt nat"},
	"brown nut":        {"nut brown", "brown nut"},
	"nut brown":        {"brown nut", "nut brown"},
	"english tan":      {"english t", "english tan", "eng tan", "eng t"},
	"english t":        {"english tan", "english t", "eng tan"},
	"olde english":     {"olde eng", "olde english"},
	"olde eng":         {"olde english", "olde eng"},
	"color #8":         {"color 8", "color #8", "#8"},
	"color 8":          {"color #8", "color 8", "#8"},
	"dark brown":       {"dk brown", "dark brown", "brown"},
	"dark cognac":      {"dk cognac", "dark cognac"},
	"london bus red":   {"london bus", "london bus red"},
	"midnight navy":    {"navy", "midnight navy"},
	"russet brown":     {"russet", "russet brown"},
	"fun blue":         {"blue", "fun blue"},
}

// ColorsMatch reports whether two colors refer to the same QB color,
// accounting for known abbreviations. Empty colors never match.
func ColorsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	c1 := strings.ToLower(strings.TrimSpace(a))
	c2 := strings.ToLower(strings.TrimSpace(b))
	if c1 == c2 {
		return true
	}
	equivalents, ok := colorEquivalents[c1]
	if !ok {
		return false
	}
	for _, e := range equivalents {
		if e == c2 {
			return true
		}
	}
	return false
}

// TannageVariants returns the lowercase set of tannage spellings that should
// be treated as equal to the given tannage. fullName disambiguates bare
// "Classic", which only means Splenda Classic on Splenda listings.
func TannageVariants(tannage, fullName string) []string {
	t := strings.ToLower(tannage)
	variants := []string{t}
	switch t {
	case "chromexcel":
		variants = append(variants, "chrxl")
	case "chrxl":
		variants = append(variants, "chromexcel")
	case "cavalier chromexcel":
		variants = append(variants, "cavalier chrxl")
	case "cavalier chrxl":
		variants = append(variants, "cavalier chromexcel")
	case "splenda classic":
		variants = append(variants, "classic")
	case "classic":
		if strings.Contains(strings.ToLower(fullName), "splenda") {
			variants = append(variants, "splenda classic")
		}
	}
	return variants
}

// TannageCompatible reports whether a catalog tannage is acceptable for any
// of the descriptor's tannage variants: exact equality, or substring
// containment in either direction for compound names.
func TannageCompatible(variants []string, catalogTannage string) bool {
	ct := strings.ToLower(catalogTannage)
	if ct == "" {
		return false
	}
	for _, v := range variants {
		if v == ct || strings.Contains(ct, v) || strings.Contains(v, ct) {
			return true
		}
	}
	return false
}
