package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tanneryrow/backend/internal/domain"
)

const catalogCacheKey = "catalog:entries"

// MappingService orchestrates the full pipeline: fetch orders, load and index
// the catalog, resolve every unique product, aggregate the report.
type MappingService struct {
	orderSource   domain.OrderSource
	catalogSource domain.CatalogSource
	cache         domain.CacheRepository
	store         domain.MappingStore

	parser   *DescriptorParser
	indexer  *CatalogIndexer
	matchers *CategoryMatchers
	resolver *Resolver

	catalogCacheTTL time.Duration
}

// NewMappingService creates a new mapping service. store may be nil when
// persistence is not wired (the CLI runs without it).
func NewMappingService(
	orderSource domain.OrderSource,
	catalogSource domain.CatalogSource,
	cache domain.CacheRepository,
	store domain.MappingStore,
	parser *DescriptorParser,
	indexer *CatalogIndexer,
	matchers *CategoryMatchers,
	resolver *Resolver,
	catalogCacheTTL time.Duration,
) *MappingService {
	return &MappingService{
		orderSource:     orderSource,
		catalogSource:   catalogSource,
		cache:           cache,
		store:           store,
		parser:          parser,
		indexer:         indexer,
		matchers:        matchers,
		resolver:        resolver,
		catalogCacheTTL: catalogCacheTTL,
	}
}

// Catalog returns the indexed catalog, served from cache when fresh.
func (s *MappingService) Catalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, catalogCacheKey); err == nil {
			if entries, ok := cached.([]domain.CatalogEntry); ok {
				return entries, nil
			}
		}
	}

	rows, err := s.catalogSource.LoadRows()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	entries := s.indexer.Index(rows)
	if len(entries) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, entries, s.catalogCacheTTL); err != nil {
			log.Printf("[MAPPING] failed to cache catalog: %v", err)
		}
	}
	return entries, nil
}

// ResolveOne maps a single product/variant against the indexed catalog. Used
// by the HTTP resolve endpoint and by BuildMapping for every record.
func (s *MappingService) ResolveOne(record domain.SourceRecord, catalog []domain.CatalogEntry) domain.MappingRow {
	desc := s.parser.Parse(record.ProductName, record.Variant)

	result, handled := s.matchers.Match(desc, catalog, record.ProductName, record.Variant)
	if !handled {
		fullName := record.ProductName
		if record.Variant != "" {
			fullName = record.ProductName + " - " + record.Variant
		}
		result = s.resolver.Resolve(desc, catalog, fullName)
	}

	return domain.MappingRow{
		InternalSKU:   GenerateSKU(desc),
		SourceProduct: record.ProductName,
		SourceVariant: record.Variant,
		SourceSKU:     record.SKU,
		TargetItem:    result.Item,
		Tannage:       desc.Tannage,
		Color:         desc.Color,
		Weight:        desc.Weight,
		ProductType:   desc.ProductType,
		Tier:          result.Tier,
		NeedsNewItem:  result.NeedsNewItem,
		NeedsReview:   result.NeedsReview,
	}
}

// BuildMapping resolves every record and aggregates the report. Rows come out
// in input order, deprecated listings included but excluded from all counts.
func (s *MappingService) BuildMapping(ctx context.Context, records []domain.SourceRecord, catalog []domain.CatalogEntry) (*domain.MappingReport, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	report := &domain.MappingReport{
		Rows:          make([]domain.MappingRow, 0, len(records)),
		ByProductType: make(map[domain.ProductType]domain.TypeCount),
	}

	for _, record := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row := s.ResolveOne(record, catalog)
		report.Rows = append(report.Rows, row)

		if row.Tier == domain.TierDeprecated {
			report.Deprecated++
			continue
		}

		tc := report.ByProductType[row.ProductType]
		tc.Total++

		switch {
		case row.NeedsNewItem:
			report.NeedsNewItem++
		case row.NeedsReview:
			report.NeedsReview++
			tc.Matched++
		default:
			report.Exact++
			tc.Matched++
		}
		report.ByProductType[row.ProductType] = tc
	}

	log.Printf("[MAPPING] resolved %d products: %d exact, %d need review, %d need new item, %d deprecated",
		len(records), report.Exact, report.NeedsReview, report.NeedsNewItem, report.Deprecated)

	return report, nil
}

// BuildFromOrders fetches orders, extracts unique products and builds the
// mapping in one call. extract is injected so the transport package owns the
// flattening rules for its own payload shape.
func (s *MappingService) BuildFromOrders(ctx context.Context, orderLimit int, extract func([]domain.Order) []domain.SourceRecord) (*domain.MappingReport, error) {
	orders, err := s.orderSource.FetchOrders(ctx, "FULFILLED", orderLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	log.Printf("[MAPPING] fetched %d orders", len(orders))

	records := extract(orders)
	log.Printf("[MAPPING] %d unique product/variant combinations", len(records))

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.BuildMapping(ctx, records, catalog)
}

// SaveRun persists a finished report and returns its run ID.
func (s *MappingService) SaveRun(ctx context.Context, report *domain.MappingReport) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("mapping store not configured")
	}
	return s.store.SaveRun(ctx, report)
}

// GetRun loads a persisted report by ID.
func (s *MappingService) GetRun(ctx context.Context, runID string) (*domain.MappingReport, error) {
	if s.store == nil {
		return nil, domain.ErrRunNotFound
	}
	return s.store.GetRun(ctx, runID)
}

// ListRuns lists persisted run summaries, newest first.
func (s *MappingService) ListRuns(ctx context.Context, limit int) ([]domain.StoredRun, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListRuns(ctx, limit)
}
