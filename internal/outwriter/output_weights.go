package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/internal/parquet"
	"github.com/huangsam/weightexile/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// weightsFixedWidth is the space taken by every weights column except the stat text.
const weightsFixedWidth = 60

// WriteWeightsReport outputs a weights report, dispatching based on the output format configured.
func WriteWeightsReport(report schema.WeightsReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWeights(w, report)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteWeights(w, parquet.ConvertWeightsReport(report))
		}, "Wrote Parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightsTable(w, report, cfg)
		}, "Wrote table")
	}
}

// writeCSVWeights writes one CSV record per weighted stat.
func writeCSVWeights(w io.Writer, report schema.WeightsReport) error {
	header := []string{"index", "id", "text", "category", "priority", "label", "direction", "desired_min", "scale", "weight"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range report.Rows {
			desired := ""
			if row.DesiredMin != nil {
				desired = formatDesiredMin(row.DesiredMin)
			}
			record := []string{
				strconv.Itoa(row.Index),
				row.ID,
				row.Text,
				row.Category,
				strconv.Itoa(row.Priority),
				row.Label,
				string(row.Direction),
				desired,
				formatScale(row.Scale),
				strconv.Itoa(row.Weight),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeWeightsTable generates and writes the human-readable table.
func writeWeightsTable(w io.Writer, report schema.WeightsReport, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Stat", "Priority", "Dir", "Min", "Scale", "Weight"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	textWidth := GetMaxTableTextWidth(cfg, weightsFixedWidth)
	var data [][]string
	for _, row := range report.Rows {
		label := row.Label
		if cfg.UseColors {
			label = contract.GetColorLabel(row.Priority)
		}
		text := row.Text
		if text == "" {
			text = row.ID
		}
		data = append(data, []string{
			strconv.Itoa(row.Index),
			contract.TruncateText(text, textWidth),
			label,
			string(row.Direction),
			formatDesiredMin(row.DesiredMin),
			formatScale(row.Scale),
			strconv.Itoa(row.Weight),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Total weight: %d, minimum sum: %d (%s rule)\n", report.TotalWeight, report.MinSum, report.Rule); err != nil {
		return err
	}
	return nil
}

// WriteFilterGroup outputs the weight2 filter group document as JSON.
// The document is JSON in every output mode since that is what the trade site accepts.
func WriteFilterGroup(group schema.FilterGroup, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, group)
	}, "Wrote filter group")
}
