package contract

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/weightexile/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultStatsFile   = "data/stats.json"
	DefaultItemsFile   = "data/items.json"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ScaleOverrideRaw is one entry of the scales list in the config file.
// A list is used instead of a map because stat ids contain dots.
type ScaleOverrideRaw struct {
	ID    string  `mapstructure:"id"`
	Scale float64 `mapstructure:"scale"`
}

// Config holds the runtime configuration for a command.
// This struct is the "final, validated" config.
type Config struct {
	StatsFile     string
	ItemsFile     string
	SelectionFile string
	StatSpecs     []string // Raw --stat values, parsed by the selection boundary
	Query         string
	TypeFilter    string
	ResultLimit   int
	Output        schema.OutputMode
	OutputFile    string
	Width         int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	// ScaleOverrides maps a stat id to the scale used in place of the built-in table.
	ScaleOverrides map[string]float64

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SelectionPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	StatsFile      string `mapstructure:"stats-file"`
	ItemsFile      string `mapstructure:"items-file"`
	OutputFile     string `mapstructure:"output-file"`
	Output         string `mapstructure:"output"`
	Width          int    `mapstructure:"width"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`
	ScalesStr      string `mapstructure:"scales-override"`

	// --- Fields from weightsCmd / groupCmd ---
	Stats []string `mapstructure:"stat"`

	// --- Fields from typesCmd / statsCmd ---
	Query string `mapstructure:"query"`
	Type  string `mapstructure:"type"`
	Limit int    `mapstructure:"limit"`

	// --- Scale overrides from config file ---
	Scales []ScaleOverrideRaw `mapstructure:"scales"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.StatSpecs != nil {
		clone.StatSpecs = slices.Clone(c.StatSpecs)
	}
	if c.ScaleOverrides != nil {
		clone.ScaleOverrides = maps.Clone(c.ScaleOverrides)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processScaleOverrides(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// validateSimpleInputs processes and validates the plain fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.SelectionFile = strings.TrimSpace(input.SelectionPathStr)
	cfg.OutputFile = input.OutputFile
	cfg.Query = strings.TrimSpace(input.Query)
	cfg.TypeFilter = strings.TrimSpace(input.Type)
	cfg.Width = input.Width

	cfg.StatsFile = strings.TrimSpace(input.StatsFile)
	if cfg.StatsFile == "" {
		cfg.StatsFile = DefaultStatsFile
	}
	cfg.ItemsFile = strings.TrimSpace(input.ItemsFile)
	if cfg.ItemsFile == "" {
		cfg.ItemsFile = DefaultItemsFile
	}

	cfg.StatSpecs = nil
	for _, s := range input.Stats {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			cfg.StatSpecs = append(cfg.StatSpecs, trimmed)
		}
	}

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// processScaleOverrides merges config file scales with the --scales-override flag.
// The flag takes precedence. Every scale must be a positive finite number.
func processScaleOverrides(cfg *Config, input *ConfigRawInput) error {
	overrides := make(map[string]float64)

	for _, s := range input.Scales {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return fmt.Errorf("scale override is missing an id")
		}
		overrides[id] = s.Scale
	}

	if input.ScalesStr != "" {
		parsed, err := parseScalesString(input.ScalesStr)
		if err != nil {
			return fmt.Errorf("invalid --scales-override format: %w", err)
		}
		maps.Copy(overrides, parsed)
	}

	for id, scale := range overrides {
		if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
			return fmt.Errorf("scale for stat %s must be greater than 0 (received %v)", id, scale)
		}
	}

	cfg.ScaleOverrides = overrides
	return nil
}

// RevalidateScales merges a 'id:scale,id:scale' override string into cfg.ScaleOverrides.
// It is used when scales arrive outside of the CLI flags, such as from an MCP tool call.
func RevalidateScales(cfg *Config, scalesStr string) error {
	if strings.TrimSpace(scalesStr) == "" {
		return nil
	}
	parsed, err := parseScalesString(scalesStr)
	if err != nil {
		return fmt.Errorf("invalid scales override: %w", err)
	}
	merged := maps.Clone(cfg.ScaleOverrides)
	if merged == nil {
		merged = make(map[string]float64, len(parsed))
	}
	for id, scale := range parsed {
		if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
			return fmt.Errorf("scale for stat %s must be greater than 0 (received %v)", id, scale)
		}
		merged[id] = scale
	}
	cfg.ScaleOverrides = merged
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// parseScalesString parses a string like "pseudo.pseudo_total_life:80,explicit.stat_1:40"
// into a map of stat id to scale.
func parseScalesString(s string) (map[string]float64, error) {
	scales := make(map[string]float64)

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, ":")
		if idx <= 0 || idx == len(part)-1 {
			return nil, fmt.Errorf("invalid scale format '%s', expected 'id:value'", part)
		}

		id := strings.TrimSpace(part[:idx])
		valueStr := strings.TrimSpace(part[idx+1:])

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid scale value '%s' for stat %s: %w", valueStr, id, err)
		}
		scales[id] = value
	}

	return scales, nil
}
