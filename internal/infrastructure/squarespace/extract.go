package squarespace

import (
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
)

// ExtractUniqueProducts flattens orders into deduplicated (product, variant)
// records, preserving first-seen order. Customization values come first, then
// variant option values not already present in the joined string. Quantity is
// the first occurrence's quantity; the mapping builder only needs identity.
func ExtractUniqueProducts(orders []domain.Order) []domain.SourceRecord {
	seen := make(map[[2]string]bool)
	var records []domain.SourceRecord

	for _, order := range orders {
		for _, item := range order.LineItems {
			var parts []string
			for _, custom := range item.Customizations {
				if custom.Value != "" {
					parts = append(parts, custom.Value)
				}
			}
			variant := strings.Join(parts, " - ")
			for _, opt := range item.VariantOptions {
				if opt.Value != "" && !strings.Contains(variant, opt.Value) {
					parts = append(parts, opt.Value)
					variant = strings.Join(parts, " - ")
				}
			}

			key := [2]string{item.ProductName, variant}
			if seen[key] {
				continue
			}
			seen[key] = true

			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			records = append(records, domain.SourceRecord{
				ProductName: item.ProductName,
				Variant:     variant,
				SKU:         item.SKU,
				Quantity:    quantity,
			})
		}
	}

	return records
}
