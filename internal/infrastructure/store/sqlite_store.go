package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tanneryrow/backend/internal/domain"
)

// runModel is the persisted summary of one mapping run.
type runModel struct {
	ID           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	RowCount     int
	Exact        int
	NeedsReview  int
	NeedsNewItem int
	Deprecated   int
	Rows         []rowModel `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

func (runModel) TableName() string { return "mapping_runs" }

// rowModel is one persisted mapping row. Position preserves input order.
type rowModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	RunID         string `gorm:"index"`
	Position      int
	InternalSKU   string
	SourceProduct string
	SourceVariant string
	SourceSKU     string
	TargetItem    string
	Tannage       string
	Color         string
	Weight        string
	ProductType   string
	Tier          string
	NeedsNewItem  bool
	NeedsReview   bool
}

func (rowModel) TableName() string { return "mapping_rows" }

// SQLiteStore persists mapping runs to a local SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database and migrates the schema.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&runModel{}, &rowModel{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SaveRun persists a report and returns the new run ID.
func (s *SQLiteStore) SaveRun(ctx context.Context, report *domain.MappingReport) (string, error) {
	run := runModel{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		RowCount:     len(report.Rows),
		Exact:        report.Exact,
		NeedsReview:  report.NeedsReview,
		NeedsNewItem: report.NeedsNewItem,
		Deprecated:   report.Deprecated,
	}
	for i, row := range report.Rows {
		run.Rows = append(run.Rows, rowModel{
			Position:      i,
			InternalSKU:   row.InternalSKU,
			SourceProduct: row.SourceProduct,
			SourceVariant: row.SourceVariant,
			SourceSKU:     row.SourceSKU,
			TargetItem:    row.TargetItem,
			Tannage:       row.Tannage,
			Color:         row.Color,
			Weight:        row.Weight,
			ProductType:   string(row.ProductType),
			Tier:          string(row.Tier),
			NeedsNewItem:  row.NeedsNewItem,
			NeedsReview:   row.NeedsReview,
		})
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return "", fmt.Errorf("saving mapping run: %w", err)
	}
	return run.ID, nil
}

// GetRun loads a persisted run with all its rows.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*domain.MappingReport, error) {
	var run runModel
	err := s.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&run, "id = ?", runID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading mapping run: %w", err)
	}

	report := &domain.MappingReport{
		Rows:          make([]domain.MappingRow, 0, len(run.Rows)),
		Exact:         run.Exact,
		NeedsReview:   run.NeedsReview,
		NeedsNewItem:  run.NeedsNewItem,
		Deprecated:    run.Deprecated,
		ByProductType: make(map[domain.ProductType]domain.TypeCount),
	}
	for _, row := range run.Rows {
		mapped := domain.MappingRow{
			InternalSKU:   row.InternalSKU,
			SourceProduct: row.SourceProduct,
			SourceVariant: row.SourceVariant,
			SourceSKU:     row.SourceSKU,
			TargetItem:    row.TargetItem,
			Tannage:       row.Tannage,
			Color:         row.Color,
			Weight:        row.Weight,
			ProductType:   domain.ProductType(row.ProductType),
			Tier:          domain.MatchTier(row.Tier),
			NeedsNewItem:  row.NeedsNewItem,
			NeedsReview:   row.NeedsReview,
		}
		report.Rows = append(report.Rows, mapped)

		if mapped.Tier == domain.TierDeprecated {
			continue
		}
		tc := report.ByProductType[mapped.ProductType]
		tc.Total++
		if !mapped.NeedsNewItem {
			tc.Matched++
		}
		report.ByProductType[mapped.ProductType] = tc
	}

	return report, nil
}

// ListRuns returns run summaries, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]domain.StoredRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []runModel
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("listing mapping runs: %w", err)
	}

	out := make([]domain.StoredRun, 0, len(runs))
	for _, run := range runs {
		out = append(out, domain.StoredRun{
			RunID:        run.ID,
			CreatedAt:    run.CreatedAt,
			RowCount:     run.RowCount,
			Exact:        run.Exact,
			NeedsReview:  run.NeedsReview,
			NeedsNewItem: run.NeedsNewItem,
			Deprecated:   run.Deprecated,
		})
	}
	return out, nil
}
