package schema

// WeightRow is one line of a weights report, joining a selected stat to its computed weight.
type WeightRow struct {
	Index      int       `json:"index"`
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	Priority   int       `json:"priority"`
	Label      string    `json:"label"`
	Direction  Direction `json:"direction"`
	DesiredMin *float64  `json:"desiredMin,omitempty"`
	Scale      float64   `json:"scale"`
	Weight     int       `json:"weight"`
}

// WeightsReport is the render model for the weights command.
type WeightsReport struct {
	Rows        []WeightRow   `json:"rows"`
	TotalWeight int           `json:"totalWeight"`
	MinSum      int           `json:"minSum"`
	Rule        ThresholdRule `json:"rule"`
	Group       FilterGroup   `json:"group"`
}

// ScaleRow is one entry of the active scale table.
type ScaleRow struct {
	Kind  string  `json:"kind"`  // "override", "keyword" or "default"
	Match string  `json:"match"` // stat id or comma-separated keywords
	Scale float64 `json:"scale"`
}

// Priority labels.
const (
	EssentialValue = "Essential"
	HighValue      = "High"
	MediumValue    = "Medium"
	LowValue       = "Low"
	OptionalValue  = "Optional"
	UnsetValue     = "Unset"
)

// GetPriorityLabel returns a plain text label for a stat priority.
func GetPriorityLabel(priority int) string {
	switch {
	case priority >= 5:
		return EssentialValue
	case priority == 4:
		return HighValue
	case priority == 3:
		return MediumValue
	case priority == 2:
		return LowValue
	case priority == 1:
		return OptionalValue
	default:
		return UnsetValue
	}
}

// ClassifiedBase pairs an item base name with its classified type.
type ClassifiedBase struct {
	Base string `json:"base"`
	Type string `json:"type"`
}
