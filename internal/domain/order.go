package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money mirrors the Squarespace amount shape {"value": "12.00", "currency": "USD"}.
type Money struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// VariantOption is one configured option on an ordered line item.
type VariantOption struct {
	OptionName string `json:"optionName"`
	Value      string `json:"value"`
}

// Customization is a free-form buyer customization on a line item.
type Customization struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OrderLineItem is one purchased product inside a Squarespace order.
type OrderLineItem struct {
	ProductName    string          `json:"productName"`
	SKU            string          `json:"sku"`
	Quantity       int             `json:"quantity"`
	UnitPricePaid  Money           `json:"unitPricePaid"`
	VariantOptions []VariantOption `json:"variantOptions"`
	Customizations []Customization `json:"customizations"`
}

// Order is a Squarespace commerce order as returned by the orders endpoint.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	CreatedOn         time.Time       `json:"createdOn"`
	FulfillmentStatus string          `json:"fulfillmentStatus"`
	LineItems         []OrderLineItem `json:"lineItems"`
	GrandTotal        Money           `json:"grandTotal"`
}

// OrdersPage is one page of the paginated orders listing.
type OrdersPage struct {
	Result     []Order `json:"result"`
	Pagination struct {
		HasNextPage    bool   `json:"hasNextPage"`
		NextPageCursor string `json:"nextPageCursor"`
	} `json:"pagination"`
}
