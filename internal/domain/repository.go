package domain

import (
	"context"
	"time"
)

// OrderSource fetches orders from the storefront. Pagination and retries are
// the implementation's concern; callers only see the flattened result.
type OrderSource interface {
	FetchOrders(ctx context.Context, status string, limit int) ([]Order, error)
}

// CatalogSource loads a raw catalog snapshot (e.g. a QuickBooks item export).
type CatalogSource interface {
	LoadRows() ([]CatalogRow, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// MappingStore persists completed mapping runs. The matching core never
// touches it; only the CLI and HTTP wrappers do.
type MappingStore interface {
	SaveRun(ctx context.Context, report *MappingReport) (string, error)
	GetRun(ctx context.Context, runID string) (*MappingReport, error)
	ListRuns(ctx context.Context, limit int) ([]StoredRun, error)
}

// StoredRun is the summary of one persisted mapping run.
type StoredRun struct {
	RunID        string    `json:"runId"`
	CreatedAt    time.Time `json:"createdAt"`
	RowCount     int       `json:"rowCount"`
	Exact        int       `json:"exact"`
	NeedsReview  int       `json:"needsReview"`
	NeedsNewItem int       `json:"needsNewItem"`
	Deprecated   int       `json:"deprecated"`
}
