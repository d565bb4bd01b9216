package outwriter

import (
	"os"

	"github.com/huangsam/weightexile/internal/contract"
	"golang.org/x/term"
)

// Bounds for the stat text column in table output.
const (
	minTextWidth = 15
	maxTextWidth = 70
)

// GetMaxTableTextWidth calculates the maximum width for stat text in table output
// based on terminal width and the fixed columns around it.
func GetMaxTableTextWidth(cfg *contract.Config, fixedWidth int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for table borders, separators, and padding
	available := termWidth - fixedWidth - 20
	if available < minTextWidth {
		return minTextWidth
	}
	if available > maxTextWidth {
		return maxTextWidth
	}
	return available
}
