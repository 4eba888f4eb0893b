package usecase

import (
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
)

var brandCodes = map[string]string{
	"Horween":           "HOR",
	"Tempesti":          "TEM",
	"Walpier":           "WAL",
	"Virgilio":          "VIR",
	"Splenda":           "SPL",
	"Onda Verde":        "OND",
	"Tusting & Burnett": "TUS",
	"CF Stead":          "CFS",
}

var typeCodes = map[domain.ProductType]string{
	domain.ProductPanel:         "PNL",
	domain.ProductHorsefront:    "HF",
	domain.ProductStrips:        "STR",
	domain.ProductMysteryBundle: "MYS",
	domain.ProductSampleBook:    "SMP",
	domain.ProductAccessory:     "ACC",
}

var tannageCodes = map[string]string{
	"Dublin":     "DUB",
	"Derby":      "DRB",
	"Essex":      "ESX",
	"Chromexcel": "CHX",
	"Chrxl":      "CHX",
	"Cavalier":   "CAV",
	"Montana":    "MON",
	"Predator":   "PRD",
	"Latigo":     "LAT",
	"Vermont":    "VRM",
	"Aspen":      "ASP",
	"Buttero":    "BUT",
	"Margot":     "MAR",
	"Vachetta":   "VAC",
}

var colorCodes = map[string]string{
	"Black":            "BLK",
	"Brown":            "BRN",
	"Natural":          "NAT",
	"English Tan":      "ENG",
	"Brown Nut":        "NUT",
	"Nut Brown":        "NUT",
	"Chestnut":         "CHE",
	"Cognac":           "COG",
	"Whiskey":          "WHI",
	"Burgundy":         "BUR",
	"Color #8":         "C8",
	"Navy":             "NAV",
	"Olive":            "OLV",
	"Greener Pastures": "GRN",
}

// GenerateSKU builds a stable internal SKU from parsed components, e.g.
// "HOR-PNL-DUB-NAT-45" for a Horween Dublin Natural 4-5oz panel. Components
// outside the code tables fall back to a three-letter abbreviation.
func GenerateSKU(desc domain.Descriptor) string {
	var parts []string

	if desc.Brand != "" {
		parts = append(parts, codeOr(brandCodes, desc.Brand))
	}
	if desc.ProductType != domain.ProductFullHide {
		if code, ok := typeCodes[desc.ProductType]; ok {
			parts = append(parts, code)
		}
	}
	if desc.Tannage != "" {
		parts = append(parts, codeOr(tannageCodes, desc.Tannage))
	}
	if desc.Color != "" {
		parts = append(parts, codeOr(colorCodes, desc.Color))
	}
	if desc.Weight != "" {
		w := strings.NewReplacer("-", "", ".", "").Replace(desc.Weight)
		parts = append(parts, w)
	}

	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "-")
}

func codeOr(codes map[string]string, value string) string {
	if code, ok := codes[value]; ok {
		return code
	}
	abbrev := value
	if len(abbrev) > 3 {
		abbrev = abbrev[:3]
	}
	return strings.ToUpper(abbrev)
}
