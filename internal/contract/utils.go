package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/weightexile/schema"
)

// Color variables for console output.
var (
	EssentialColor = color.New(color.FgRed, color.Bold)     // EssentialColor marks must-have stats.
	HighColor      = color.New(color.FgMagenta, color.Bold) // HighColor marks strongly wanted stats.
	MediumColor    = color.New(color.FgYellow)              // MediumColor marks nice-to-have stats.
	LowColor       = color.New(color.FgCyan)                // LowColor marks low and optional stats.
	UnsetColor     = color.New(color.Faint)                 // UnsetColor marks stats with no priority.
)

// GetColorLabel returns a colored priority label for console output (table).
// It uses schema.GetPriorityLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(priority int) string {
	text := schema.GetPriorityLabel(priority)

	switch text {
	case schema.EssentialValue:
		return EssentialColor.Sprint(text)
	case schema.HighValue:
		return HighColor.Sprint(text)
	case schema.MediumValue:
		return MediumColor.Sprint(text)
	case schema.UnsetValue:
		return UnsetColor.Sprint(text)
	default: // "Low", "Optional"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for catalog cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".weightexile_cache.db"
	}
	return filepath.Join(homeDir, ".weightexile_cache.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
