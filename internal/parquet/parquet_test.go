package parquet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/weightexile/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() schema.WeightsReport {
	desired := 90.0
	return schema.WeightsReport{
		Rows: []schema.WeightRow{
			{
				Index: 1, ID: "pseudo.pseudo_total_life", Text: "+# total maximum Life", Category: "Pseudo",
				Priority: 5, Direction: schema.AtLeast, DesiredMin: &desired, Scale: 120, Weight: 80,
			},
			{
				Index: 2, ID: "explicit.stat_1", Text: "#% increased Rarity of Items found",
				Priority: 1, Direction: schema.AtMost, Scale: 100, Weight: 20,
			},
		},
		TotalWeight: 100,
		MinSum:      60,
		Rule:        schema.DesiredRule,
	}
}

func TestWeightRecordStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(WeightRecord))
	require.NotNil(t, s)

	expectedColumns := []string{
		"id", "text", "category", "priority", "direction",
		"desired_min", "scale", "weight", "min_sum", "rule",
	}
	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertWeightsReport(t *testing.T) {
	records := ConvertWeightsReport(sampleReport())
	require.Len(t, records, 2)

	assert.Equal(t, "pseudo.pseudo_total_life", records[0].ID)
	require.NotNil(t, records[0].Category)
	assert.Equal(t, "Pseudo", *records[0].Category)
	require.NotNil(t, records[0].DesiredMin)
	assert.Equal(t, 90.0, *records[0].DesiredMin)
	assert.Equal(t, int32(60), records[0].MinSum)
	assert.Equal(t, "desired", records[0].Rule)

	assert.Nil(t, records[1].Category)
	assert.Nil(t, records[1].DesiredMin)
	assert.Equal(t, "at-most", records[1].Direction)
	assert.Equal(t, int32(60), records[1].MinSum)
}

func TestWriteWeightsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "weights.parquet")
	data := ConvertWeightsReport(sampleReport())

	require.NoError(t, WriteWeightsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[WeightRecord](file)
	defer reader.Close()

	readData := make([]WeightRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	for i := range data {
		assert.Equal(t, data[i].ID, readData[i].ID)
		assert.Equal(t, data[i].Text, readData[i].Text)
		assert.Equal(t, data[i].Priority, readData[i].Priority)
		assert.Equal(t, data[i].Weight, readData[i].Weight)
		assert.InDelta(t, data[i].Scale, readData[i].Scale, 0.001)
		assert.Equal(t, data[i].Category == nil, readData[i].Category == nil)
		assert.Equal(t, data[i].DesiredMin == nil, readData[i].DesiredMin == nil)
	}
}

func TestWriteWeightsToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWeights(&buf, ConvertWeightsReport(sampleReport())))
	assert.Equal(t, "PAR1", buf.String()[:4])
}

func TestWriteWeightsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteWeightsParquet([]WeightRecord{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteWeightsParquet_InvalidPath(t *testing.T) {
	err := WriteWeightsParquet(nil, filepath.Join(t.TempDir(), "missing", "dir", "x.parquet"))
	assert.Error(t, err)
}
