package catalogcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tanneryrow/backend/internal/domain"
)

// reportHeader matches the columns expected by the downstream billing helper.
var reportHeader = []string{
	"internal_sku",
	"squarespace_product",
	"squarespace_variant",
	"squarespace_sku",
	"quickbooks_item",
	"tannage",
	"color",
	"weight",
	"product_type",
	"needs_qb_item",
	"needs_review",
}

// WriteReport writes the mapping report CSV to path, creating parent
// directories as needed.
func WriteReport(path string, report *domain.MappingReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteReportTo(f, report); err != nil {
		return err
	}
	return f.Close()
}

// WriteReportTo streams the report CSV to any writer. Deprecated rows are
// emitted with an empty target so a human can see what was skipped and why.
func WriteReportTo(w io.Writer, report *domain.MappingReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.InternalSKU,
			row.SourceProduct,
			row.SourceVariant,
			row.SourceSKU,
			row.TargetItem,
			row.Tannage,
			row.Color,
			row.Weight,
			string(row.ProductType),
			flag(row.NeedsNewItem),
			flag(row.NeedsReview),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func flag(b bool) string {
	if b {
		return "Y"
	}
	return ""
}
