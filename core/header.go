package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/weightexile/internal/contract"
)

// logSelectionHeader prints a concise header for weights and group runs.
// Headers go to stderr so that stdout carries only the requested output.
func logSelectionHeader(ctx context.Context, cfg *contract.Config, selected, catalogSize int) {
	if shouldSuppressHeader(ctx) {
		return
	}
	source := "flags"
	if cfg.SelectionFile != "" {
		source = filepath.Base(cfg.SelectionFile)
	}
	_, _ = fmt.Fprintf(os.Stderr, "%sSelection: %s (%d stats)\n", emoji(cfg, "⚖️  "), source, selected)
	_, _ = fmt.Fprintf(os.Stderr, "%sCatalog: %s (%d stats known)\n", emoji(cfg, "📚 "), cfg.StatsFile, catalogSize)
}

// logCatalogHeader prints a one-line header for catalog browsing commands.
func logCatalogHeader(ctx context.Context, cfg *contract.Config, kind, path string, size int) {
	if shouldSuppressHeader(ctx) {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%sCatalog: %s (%d %s)\n", emoji(cfg, "📚 "), path, size, kind)
}

func emoji(cfg *contract.Config, e string) string {
	if cfg.UseEmojis {
		return e
	}
	return ""
}
