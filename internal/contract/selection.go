package contract

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/weightexile/schema"
	"gopkg.in/yaml.v3"
)

// StatRawInput is one selected stat as written by the user, before validation.
type StatRawInput struct {
	ID         string   `yaml:"id" json:"id"`
	Text       string   `yaml:"text,omitempty" json:"text,omitempty"`
	Priority   int      `yaml:"priority" json:"priority"`
	Direction  string   `yaml:"direction,omitempty" json:"direction,omitempty"`
	DesiredMin *float64 `yaml:"desiredMin,omitempty" json:"desiredMin,omitempty"`
}

// SelectionRawInput is a selection document. It may also be written as a bare list of stats.
type SelectionRawInput struct {
	Stats []StatRawInput `yaml:"stats" json:"stats"`
}

// ParseSelection decodes a YAML or JSON selection document.
func ParseSelection(data []byte) ([]StatRawInput, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse selection: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var stats []StatRawInput
		if err := root.Decode(&stats); err != nil {
			return nil, fmt.Errorf("failed to decode selection list: %w", err)
		}
		return stats, nil
	case yaml.MappingNode:
		var raw SelectionRawInput
		if err := root.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode selection document: %w", err)
		}
		return raw.Stats, nil
	default:
		return nil, fmt.Errorf("selection must be a list of stats or a document with a 'stats' key")
	}
}

// ReadSelectionFile reads and decodes a selection document from disk.
func ReadSelectionFile(path string) ([]StatRawInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection file %s: %w", path, err)
	}
	return ParseSelection(data)
}

// ParseStatFlag parses a --stat value of the form "id:priority[:direction[:desiredMin]]".
func ParseStatFlag(s string) (StatRawInput, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 4 {
		return StatRawInput{}, fmt.Errorf("invalid stat '%s', expected 'id:priority[:direction[:min]]'", s)
	}

	raw := StatRawInput{ID: strings.TrimSpace(parts[0])}

	priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return StatRawInput{}, fmt.Errorf("invalid priority '%s' for stat %s: %w", parts[1], raw.ID, err)
	}
	raw.Priority = priority

	if len(parts) >= 3 {
		raw.Direction = strings.TrimSpace(parts[2])
	}
	if len(parts) == 4 {
		minStr := strings.TrimSpace(parts[3])
		if minStr != "" {
			v, err := strconv.ParseFloat(minStr, 64)
			if err != nil {
				return StatRawInput{}, fmt.Errorf("invalid desired min '%s' for stat %s: %w", minStr, raw.ID, err)
			}
			raw.DesiredMin = &v
		}
	}
	return raw, nil
}

// BuildSelection gathers stats from an optional selection file and --stat specs.
// File stats come first, followed by flag stats in the order given.
func BuildSelection(cfg *Config, lookup StatLookup) ([]schema.SelectedStat, error) {
	var raw []StatRawInput

	if cfg.SelectionFile != "" {
		fromFile, err := ReadSelectionFile(cfg.SelectionFile)
		if err != nil {
			return nil, err
		}
		raw = append(raw, fromFile...)
	}

	for _, spec := range cfg.StatSpecs {
		r, err := ParseStatFlag(spec)
		if err != nil {
			return nil, err
		}
		raw = append(raw, r)
	}

	return ValidateSelection(raw, lookup)
}

// ValidateSelection checks raw stats and converts them into SelectedStat values.
// Text and category are completed from the catalog when lookup knows the id.
func ValidateSelection(raw []StatRawInput, lookup StatLookup) ([]schema.SelectedStat, error) {
	seen := make(map[string]struct{}, len(raw))
	selected := make([]schema.SelectedStat, 0, len(raw))

	for i, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, fmt.Errorf("stat #%d is missing an id", i+1)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("stat %s is selected more than once", id)
		}
		seen[id] = struct{}{}

		if r.Priority < 0 || r.Priority > schema.MaxPriority {
			return nil, fmt.Errorf("priority for stat %s must be between 0 and %d (received %d)", id, schema.MaxPriority, r.Priority)
		}

		direction, ok := schema.ParseDirection(strings.ToLower(strings.TrimSpace(r.Direction)))
		if !ok {
			return nil, fmt.Errorf("invalid direction '%s' for stat %s. must be at-least or at-most", r.Direction, id)
		}

		if r.DesiredMin != nil && (math.IsNaN(*r.DesiredMin) || math.IsInf(*r.DesiredMin, 0)) {
			return nil, fmt.Errorf("desired min for stat %s must be a finite number", id)
		}

		def := schema.StatDefinition{ID: id, Text: strings.TrimSpace(r.Text)}
		if lookup != nil {
			if known, found := lookup.Lookup(id); found {
				if def.Text == "" {
					def.Text = known.Text
				}
				def.Category = known.Category
			}
		}

		selected = append(selected, schema.SelectedStat{
			StatDefinition: def,
			Priority:       r.Priority,
			Direction:      direction,
			DesiredMin:     r.DesiredMin,
		})
	}

	return selected, nil
}
