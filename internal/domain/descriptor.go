package domain

// ProductType classifies a storefront product into one of the categories the
// matching cascade knows how to handle. full_hide is the default when no
// category keyword fires.
type ProductType string

const (
	ProductFullHide      ProductType = "full_hide"
	ProductPanel         ProductType = "panel"
	ProductHorsefront    ProductType = "horsefront"
	ProductStrips        ProductType = "strips"
	ProductMysteryBundle ProductType = "mystery_bundle"
	ProductSampleBook    ProductType = "sample_book"
	ProductAccessory     ProductType = "accessory"
	ProductBasketball    ProductType = "basketball"
	ProductFootball      ProductType = "football"
	ProductLining        ProductType = "lining"
	ProductScrap         ProductType = "scrap"
	ProductBookbinding   ProductType = "bookbinding"
)

// Descriptor is the parsed, structured form of a storefront product + variant
// pair. It is built once by the parser and never mutated afterwards.
type Descriptor struct {
	Tannage     string      `json:"tannage"`
	Color       string      `json:"color"`
	Weight      string      `json:"weight"`    // normalized, e.g. "3-4" or "9+"
	RawWeight   string      `json:"rawWeight"` // original span, e.g. "3-4 oz"
	ProductType ProductType `json:"productType"`
	Brand       string      `json:"brand"`
}

// SourceRecord is one deduplicated (product, variant) pair pulled from the
// order stream, the unit of work for the mapping builder.
type SourceRecord struct {
	ProductName string `json:"productName"`
	Variant     string `json:"variant"`
	SKU         string `json:"sku,omitempty"`
	Quantity    int    `json:"quantity"`
}
