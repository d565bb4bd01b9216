// Package parquet exports weightexile weight reports to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/weightexile/schema"
	"github.com/parquet-go/parquet-go"
)

// WeightRecord is one weighted stat of a report, flattened for columnar export.
type WeightRecord struct {
	// ID is the trade stat id
	ID string `parquet:"id,snappy"`

	// Text is the stat display text
	Text string `parquet:"text,snappy"`

	// Category is the catalog group of the stat (nullable)
	Category *string `parquet:"category,optional,snappy"`

	// Priority is the user priority, 0 when unset
	Priority int32 `parquet:"priority,snappy"`

	// Direction is at-least or at-most
	Direction string `parquet:"direction,snappy"`

	// DesiredMin is the desired roll (nullable)
	DesiredMin *float64 `parquet:"desired_min,optional,snappy"`

	// Scale is the typical magnitude used to normalize the stat
	Scale float64 `parquet:"scale,snappy"`

	// Weight is the normalized integer weight
	Weight int32 `parquet:"weight,snappy"`

	// MinSum is the group threshold, repeated on every row
	MinSum int32 `parquet:"min_sum,snappy"`

	// Rule names the threshold rule that produced MinSum
	Rule string `parquet:"rule,snappy"`
}

// ConvertWeightsReport flattens a report into one record per row.
func ConvertWeightsReport(report schema.WeightsReport) []WeightRecord {
	result := make([]WeightRecord, len(report.Rows))
	for i, row := range report.Rows {
		var category *string
		if row.Category != "" {
			c := row.Category
			category = &c
		}
		result[i] = WeightRecord{
			ID:         row.ID,
			Text:       row.Text,
			Category:   category,
			Priority:   int32(row.Priority),
			Direction:  string(row.Direction),
			DesiredMin: row.DesiredMin,
			Scale:      row.Scale,
			Weight:     int32(row.Weight),
			MinSum:     int32(report.MinSum),
			Rule:       string(report.Rule),
		}
	}
	return result
}

// WriteWeights writes records to w in Parquet format.
func WriteWeights(w io.Writer, data []WeightRecord) error {
	writer := parquet.NewGenericWriter[WeightRecord](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteWeightsParquet writes records to a Parquet file at outputPath.
func WriteWeightsParquet(data []WeightRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteWeights(file, data)
}
