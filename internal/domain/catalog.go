package domain

// CatalogEntry is one QuickBooks billing line item parsed into the same
// component space as a Descriptor. Entries carrying the deprecation marker
// are dropped at load time and never reach the resolvers.
type CatalogEntry struct {
	RawName            string `json:"rawName"`
	Tannage            string `json:"tannage"`
	Color              string `json:"color"`
	Weight             string `json:"weight"`
	IsPanel            bool   `json:"isPanel"`
	IsDoubleHorsefront bool   `json:"isDoubleHorsefront"`
	IsSingleHorsefront bool   `json:"isSingleHorsefront"`
	IsHoliday          bool   `json:"isHoliday"`
	Active             bool   `json:"active"`
}

// CatalogRow is one raw row of a catalog snapshot before indexing.
type CatalogRow struct {
	ItemName string `json:"itemName"`
	Active   bool   `json:"active"`
}
