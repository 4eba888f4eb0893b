package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
)

// PanelDemand aggregates how many panels of each size/weight combination the
// pending order book calls for.
type PanelDemand struct {
	Totals      map[string]int     `json:"totals"` // e.g. "1'_3-4oz" -> 12
	Unspecified []UnspecifiedPanel `json:"unspecified"`
	GrandTotal  int                `json:"grandTotal"`
}

// UnspecifiedPanel is a panel line item whose size or weight could not be
// determined from its variant options.
type UnspecifiedPanel struct {
	OrderNumber string `json:"orderNumber"`
	Product     string `json:"product"`
	Quantity    int    `json:"quantity"`
	Missing     string `json:"missing"`
}

// PanelService computes panel cutting demand from pending orders.
type PanelService struct {
	orderSource domain.OrderSource
}

// NewPanelService creates a new panel service
func NewPanelService(orderSource domain.OrderSource) *PanelService {
	return &PanelService{orderSource: orderSource}
}

// PendingDemand fetches orders with the given fulfillment status and tallies
// panel quantities by size and weight.
func (s *PanelService) PendingDemand(ctx context.Context, status string, limit int) (*PanelDemand, error) {
	orders, err := s.orderSource.FetchOrders(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}

	demand := &PanelDemand{Totals: make(map[string]int)}

	for _, order := range orders {
		for _, item := range order.LineItems {
			size, weight, qty := panelInfo(item)
			if qty == 0 {
				continue
			}

			if size != "" && weight != "" {
				demand.Totals[size+"_"+weight] += qty
			} else {
				demand.Totals["unspecified"] += qty
				demand.Unspecified = append(demand.Unspecified, UnspecifiedPanel{
					OrderNumber: order.OrderNumber,
					Product:     item.ProductName,
					Quantity:    qty,
					Missing:     fmt.Sprintf("size: %s, weight: %s", orUnknown(size), orUnknown(weight)),
				})
			}
			demand.GrandTotal += qty
		}
	}

	log.Printf("[PANEL] %d panels needed across %d orders (%d unspecified)",
		demand.GrandTotal, len(orders), demand.Totals["unspecified"])

	return demand, nil
}

// SortedKeys returns the demand keys in stable order, unspecified last.
func (d *PanelDemand) SortedKeys() []string {
	keys := make([]string, 0, len(d.Totals))
	for k := range d.Totals {
		if k != "unspecified" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// panelInfo extracts size and weight from a panel line item's variant
// options. Non-panel items return quantity 0.
func panelInfo(item domain.OrderLineItem) (size, weight string, quantity int) {
	if !strings.Contains(strings.ToLower(item.ProductName), "panel") {
		return "", "", 0
	}

	quantity = item.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var values []string
	for _, opt := range item.VariantOptions {
		values = append(values, opt.Value)
	}
	combined := strings.Join(values, " ")

	// Size is a standalone 1 or 2 token, with or without the foot mark
	for _, token := range strings.Fields(combined) {
		switch strings.ToLower(strings.Trim(token, `'"`)) {
		case "1":
			size = "1'"
		case "2":
			size = "2'"
		default:
			continue
		}
		break
	}

	lower := strings.ToLower(combined)
	switch {
	case strings.Contains(lower, "5-6") || strings.Contains(lower, "56oz") || strings.Contains(lower, "56z"):
		weight = "5-6oz"
	case strings.Contains(lower, "3-4") || strings.Contains(lower, "34oz") || strings.Contains(lower, "34z"):
		weight = "3-4oz"
	}

	return size, weight, quantity
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
