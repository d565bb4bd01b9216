package schema

import "math"

// Custom string types for type safety.
type (
	// Direction is the comparison a selected stat is searched with.
	Direction string

	// ThresholdRule names the rule that produced a minSum.
	ThresholdRule string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// FilterGroupType is the trade API group type for weighted sums.
const FilterGroupType = "weight2"

// Priority bounds for selected stats.
const (
	MinPriority = 1
	MaxPriority = 5
)

// All directions supported.
const (
	AtLeast Direction = "at-least" // default
	AtMost  Direction = "at-most"
)

// All threshold rules.
const (
	DesiredRule ThresholdRule = "desired" // sum of desired rolls
	HalfRule    ThresholdRule = "half"    // half the total weight
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ParseDirection maps user spellings of a direction to a Direction.
// The empty string maps to AtLeast.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "", "at-least", "atleast", "at_least", "min", ">=", "gte":
		return AtLeast, true
	case "at-most", "atmost", "at_most", "max", "<=", "lte":
		return AtMost, true
	default:
		return "", false
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
