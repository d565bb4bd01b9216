package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTypeBuckets outputs item bases grouped by type.
func WriteTypeBuckets(buckets []schema.TypeBucket, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, buckets)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"type", "base"}, func(cw *csv.Writer) error {
				for _, b := range buckets {
					for _, base := range b.Bases {
						if err := cw.Write([]string{b.Type, base}); err != nil {
							return fmt.Errorf("failed to write CSV record: %w", err)
						}
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTypeBucketsTable(w, buckets, cfg)
		}, "Wrote table")
	}
}

func writeTypeBucketsTable(w io.Writer, buckets []schema.TypeBucket, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Count", "Bases"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	width := GetMaxTableTextWidth(cfg, 25)
	total := 0
	var data [][]string
	for _, b := range buckets {
		total += len(b.Bases)
		data = append(data, []string{
			b.Type,
			strconv.Itoa(len(b.Bases)),
			contract.TruncateText(strings.Join(b.Bases, ", "), width),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d bases in %d types\n", total, len(buckets))
	return err
}

// WriteClassified outputs the type assigned to each base name.
func WriteClassified(results []schema.ClassifiedBase, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"base", "type"}, func(cw *csv.Writer) error {
				for _, r := range results {
					if err := cw.Write([]string{r.Base, r.Type}); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Base", "Type"})
			var data [][]string
			for _, r := range results {
				data = append(data, []string{r.Base, r.Type})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}

// WriteStatDefinitions outputs stat catalog search results.
func WriteStatDefinitions(defs []schema.StatDefinition, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"id", "text", "category"}, func(cw *csv.Writer) error {
				for _, d := range defs {
					if err := cw.Write([]string{d.ID, d.Text, d.Category}); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsTable(w, defs, cfg)
		}, "Wrote table")
	}
}

func writeStatsTable(w io.Writer, defs []schema.StatDefinition, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Text", "Category"})

	width := GetMaxTableTextWidth(cfg, 50)
	var data [][]string
	for _, d := range defs {
		data = append(data, []string{d.ID, contract.TruncateText(d.Text, width), d.Category})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d stats\n", len(defs))
	return err
}

// WriteScaleRows outputs the active scale table.
func WriteScaleRows(rows []schema.ScaleRow, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"kind", "match", "scale"}, func(cw *csv.Writer) error {
				for _, r := range rows {
					if err := cw.Write([]string{r.Kind, r.Match, formatScale(r.Scale)}); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Kind", "Match", "Scale"})
			var data [][]string
			for _, r := range rows {
				data = append(data, []string{r.Kind, r.Match, formatScale(r.Scale)})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(w, "Rules are checked top to bottom; the first match wins.")
			return err
		}, "Wrote table")
	}
}
