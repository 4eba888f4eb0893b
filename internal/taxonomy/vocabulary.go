// Package taxonomy holds the static leather vocabularies and equivalence
// tables the matching engine is built on. Everything here is immutable after
// process start and shared by reference.
package taxonomy

import "strings"

// tannages is scanned in order and the first hit wins, so compound names
// must stay ahead of their substrings ("Cavalier Chromexcel" before
// "Chromexcel"). The ordering is part of the matching contract.
var tannages = []string{
	// Compound tannages first (more specific)
	"Cavalier Chromexcel", "Cavalier Chrxl",
	"Chromexcel", "Chrxl", // QB abbreviation
	"Dublin",
	"Derby",
	"Essex",
	"Cavalier",
	"Montana",
	"Predator",
	"Latigo", "Illini Latigo",
	"Vermont",
	"Aspen",
	"Krypto",
	"Cypress",
	"Buckaroo",
	"Orion",
	"Legacy",
	"Plainsman",
	"Dearborn",
	"LaSalle", "Lasalle",
	"Glove",
	"Featherlite",
	"Rockford",
	"Yellowstone",
	"Puttman",
	"Regency", "Regency Calf",
	"Buttero",
	"Baku",
	"Elbamatt", "Elbamatt Liscio", "Elbamatt Lux",
	"Maine", "Maine Liscio", "Maine Eco Lux",
	"Margot", "Margot Fog",
	"Vachetta",
	"Smoked Matte",
	"Tuscany",
	"Museum",
	"Rocky",
	"Sierra",
	"Fenice",
	"Pinnacle",
	// C.F. Stead tannages
	"Waxy Commander", "Doeskin", "Suede",
	"Kudu Waxy", "Kudu Classic", "Kudu Reverse", "Kudu",
	"Crazy Cow",
	// Tusting & Burnett tannages
	"Mad Dog", "Sokoto", "Sokoto Bookbinding", "Sokoto Dip",
	// Splenda tannages
	"Classic", "Splenda Classic",
	// C.F. Stead additional
	"Waxy Mohawk",
	// Arazzo tannages (upholstery)
	"Alaska", "Abilene", "Allure", "Amalfi", "Antique Retro", "Barbary", "Bayou", "Boulder",
	"Portsmouth",
	// Virgilio tannages
	"Pierrot Lux", "Pierrot",
	// Italian misc
	"Nubuck", "Italian Nubuck", "Crocco", "Italian Crocco", "Crinkle", "Italian Crinkle",
	// Material types (for strips)
	"Russet Horsehide", "Horsehide", "Horsebutt", "Handstained",
	// Calf lining
	"Glovey",
	// Country Cow (standalone brand/tannage)
	"Country Cow",
}

// colors follows the same multi-word-first ordering rule as tannages.
var colors = []string{
	// Multi-word colors first
	"Greener Pastures", "Greener P", // QB abbreviation
	"Light Natural", "Lt Natural", "Lt Nat", // QB abbreviation
	"Dark Brown", "Dark Cognac", "Dark Chestnut", "Dark Coffee", "Dark Olive",
	"Light Chestnut",
	"English Tan", "English T", // QB abbreviation
	"Brown Nut", "Nut Brown",
	"Carolina Brown", "Chicago Tan",
	"Color #8", "Color 8", "#8",
	"Cobalt Blue", "Ink Blue", "Fun Blue",
	"Golf Green",
	"London Bus Red", "Lollipop Red",
	"Burnt Orange",
	"Olde English", "Olde Eng", // QB abbreviation
	"Russet Brown",
	"Dark Rio",
	"Jet Black",
	"Tristan Red", // Mad Dog color
	// Single-word colors
	"Black", "Brown", "Natural", "Tan", "Chestnut", "Cognac",
	"Whiskey", "Whisky", "Burgundy",
	"Navy", "Ink", "Olive", "Vetiver", "Harvest", "Green", "White", "Acorn",
	"Espresso", "Coffee", "Charcoal", "Steel",
	"Rio", "Bone", "Ivory", "Wheat",
	// Italian colors
	"Alloro", "Cammello", "Ambra", "Fieno", "T. Moro",
	"Cobalto", "Olmo", "Castagna", "Siena", "Girasole", "Topo",
	// C.F. Stead colors
	"Mole", "Snuff", "Wheatbuck",
	// Mad Dog colors
	"Mojito", "Coyote", "Danube", "Orange",
	// Other
	"Purple", "Sienna", "Russet",
	// Lining colors
	"Faggio", "British Tan",
	// Racing colors (bookbinding)
	"Racing Green", "Midnight Navy", "Cranberry", "Azure",
	// Kudu/Stead colors
	"Deep Forest", "Baltic", "Loden", "Autumn Spice", "Caramel",
	"Teak", "Bitter Chocolate", "Brandy", "Cloud",
	// More accessory colors
	"Coach",
}

// brandRule maps substrings of a product name to a tannery brand.
// Evaluated in order, first match wins.
type brandRule struct {
	patterns []string
	brand    string
}

var brandRules = []brandRule{
	{[]string{"horween"}, "Horween"},
	{[]string{"tempesti"}, "Tempesti"},
	{[]string{"walpier", "buttero"}, "Walpier"},
	{[]string{"virgilio"}, "Virgilio"},
	{[]string{"splenda"}, "Splenda"},
	{[]string{"onda verde"}, "Onda Verde"},
	{[]string{"tusting"}, "Tusting & Burnett"},
	{[]string{"c.f. stead", "cf stead"}, "CF Stead"},
}

// FindTannage returns the first tannage whose name appears in text, or ""
// when none does. Matching is case-insensitive.
func FindTannage(text string) string {
	lower := strings.ToLower(text)
	for _, t := range tannages {
		if strings.Contains(lower, strings.ToLower(t)) {
			return t
		}
	}
	return ""
}

// FindColor returns the first color whose name appears in text, or "".
func FindColor(text string) string {
	lower := strings.ToLower(text)
	for _, c := range colors {
		if strings.Contains(lower, strings.ToLower(c)) {
			return c
		}
	}
	return ""
}

// FindBrand returns the brand for text per the ordered substring rules, or "".
func FindBrand(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range brandRules {
		for _, p := range rule.patterns {
			if strings.Contains(lower, p) {
				return rule.brand
			}
		}
	}
	return ""
}
