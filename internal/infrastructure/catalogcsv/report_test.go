package catalogcsv

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanneryrow/backend/internal/domain"
)

func sampleReport() *domain.MappingReport {
	return &domain.MappingReport{
		Rows: []domain.MappingRow{
			{
				InternalSKU:   "HOR-DUB-BLK-34",
				SourceProduct: "Horween • Dublin",
				SourceVariant: "Black - 3-4 oz",
				TargetItem:    "Dublin Black 3.5-4 oz",
				Tannage:       "Dublin",
				Color:         "Black",
				Weight:        "3-4",
				ProductType:   domain.ProductFullHide,
				Tier:          domain.TierExact,
			},
			{
				InternalSKU:   "UNKNOWN",
				SourceProduct: "Hand Knit Sweater",
				TargetItem:    domain.SentinelItem,
				ProductType:   domain.ProductFullHide,
				Tier:          domain.TierSentinel,
				NeedsNewItem:  true,
			},
			{
				SourceProduct: "Holiday Mystery Bundle 2023",
				ProductType:   domain.ProductMysteryBundle,
				Tier:          domain.TierDeprecated,
			},
		},
	}
}

func TestWriteReportTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReportTo(&buf, sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus three rows")

	assert.Equal(t, reportHeader, records[0])

	exact := records[1]
	assert.Equal(t, "HOR-DUB-BLK-34", exact[0])
	assert.Equal(t, "Dublin Black 3.5-4 oz", exact[4])
	assert.Equal(t, "", exact[9], "exact match needs no new item")
	assert.Equal(t, "", exact[10])

	sentinel := records[2]
	assert.Equal(t, domain.SentinelItem, sentinel[4])
	assert.Equal(t, "Y", sentinel[9])

	deprecated := records[3]
	assert.Equal(t, "", deprecated[4], "deprecated rows carry no target")
}

func TestWriteReport_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "mappings.csv")

	require.NoError(t, WriteReport(path, sampleReport()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
