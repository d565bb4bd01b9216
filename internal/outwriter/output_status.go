package outwriter

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/schema"
)

// WriteCacheStatus outputs cache status information.
func WriteCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCacheStatusText(w, status)
	}, "Wrote status")
}

func writeCacheStatusText(w io.Writer, status schema.CacheStatus) error {
	lines := []string{
		fmt.Sprintf("Cache Backend: %s", status.Backend),
		fmt.Sprintf("Connected: %t", status.Connected),
	}
	if status.Connected {
		lines = append(lines, fmt.Sprintf("Total Entries: %s", humanize.Comma(int64(status.TotalEntries))))
		if status.TotalEntries > 0 {
			lines = append(lines,
				fmt.Sprintf("Last Entry: %s (%s)", status.LastEntryTime.Format("2006-01-02 15:04:05"), humanize.Time(status.LastEntryTime)),
				fmt.Sprintf("Oldest Entry: %s (%s)", status.OldestEntryTime.Format("2006-01-02 15:04:05"), humanize.Time(status.OldestEntryTime)),
			)
		}
		size := int64(0)
		if status.TableSizeBytes > 0 {
			size = status.TableSizeBytes
		}
		lines = append(lines, fmt.Sprintf("Table Size: %s", humanize.Bytes(uint64(size))))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
