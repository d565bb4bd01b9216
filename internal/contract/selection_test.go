package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/weightexile/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapLookup is a StatLookup backed by a map.
type mapLookup map[string]schema.StatDefinition

func (m mapLookup) Lookup(id string) (schema.StatDefinition, bool) {
	def, ok := m[id]
	return def, ok
}

func ptr(v float64) *float64 { return &v }

func TestParseSelection(t *testing.T) {
	t.Run("yaml document", func(t *testing.T) {
		data := []byte(`
stats:
  - id: pseudo.pseudo_total_life
    priority: 5
    desiredMin: 90
  - id: explicit.stat_1
    priority: 2
    direction: at-most
`)
		got, err := ParseSelection(data)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "pseudo.pseudo_total_life", got[0].ID)
		assert.Equal(t, 5, got[0].Priority)
		require.NotNil(t, got[0].DesiredMin)
		assert.Equal(t, 90.0, *got[0].DesiredMin)
		assert.Equal(t, "at-most", got[1].Direction)
		assert.Nil(t, got[1].DesiredMin)
	})

	t.Run("json list", func(t *testing.T) {
		got, err := ParseSelection([]byte(`[{"id": "a", "priority": 3, "desiredMin": 12.5}]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, 12.5, *got[0].DesiredMin)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := ParseSelection([]byte(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("scalar", func(t *testing.T) {
		_, err := ParseSelection([]byte("hello"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseSelection([]byte("stats: [unclosed"))
		assert.Error(t, err)
	})
}

func TestParseStatFlag(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    StatRawInput
		expectError bool
	}{
		{
			name:     "id and priority",
			input:    "pseudo.pseudo_total_life:5",
			expected: StatRawInput{ID: "pseudo.pseudo_total_life", Priority: 5},
		},
		{
			name:     "with direction",
			input:    "explicit.stat_1:2:max",
			expected: StatRawInput{ID: "explicit.stat_1", Priority: 2, Direction: "max"},
		},
		{
			name:     "with desired min",
			input:    "a:3:at-least:80",
			expected: StatRawInput{ID: "a", Priority: 3, Direction: "at-least", DesiredMin: ptr(80)},
		},
		{
			name:     "empty direction keeps min",
			input:    "a:3::40",
			expected: StatRawInput{ID: "a", Priority: 3, DesiredMin: ptr(40)},
		},
		{name: "missing priority", input: "a", expectError: true},
		{name: "bad priority", input: "a:high", expectError: true},
		{name: "bad min", input: "a:1:at-least:lots", expectError: true},
		{name: "too many parts", input: "a:1:at-least:2:3", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatFlag(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateSelection(t *testing.T) {
	lookup := mapLookup{
		"pseudo.pseudo_total_life": {ID: "pseudo.pseudo_total_life", Text: "+# total maximum Life", Category: "Pseudo"},
	}

	t.Run("fills text from the catalog", func(t *testing.T) {
		got, err := ValidateSelection([]StatRawInput{
			{ID: "pseudo.pseudo_total_life", Priority: 5},
			{ID: "explicit.unknown", Text: "custom text", Priority: 1, Direction: "<="},
		}, lookup)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "+# total maximum Life", got[0].Text)
		assert.Equal(t, "Pseudo", got[0].Category)
		assert.Equal(t, schema.AtLeast, got[0].Direction)

		assert.Equal(t, "custom text", got[1].Text)
		assert.Empty(t, got[1].Category)
		assert.Equal(t, schema.AtMost, got[1].Direction)
	})

	t.Run("user text wins over the catalog", func(t *testing.T) {
		got, err := ValidateSelection([]StatRawInput{{ID: "pseudo.pseudo_total_life", Text: "mine", Priority: 1}}, lookup)
		require.NoError(t, err)
		assert.Equal(t, "mine", got[0].Text)
	})

	t.Run("nil lookup", func(t *testing.T) {
		got, err := ValidateSelection([]StatRawInput{{ID: "a", Priority: 0}}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, got[0].Priority)
	})

	t.Run("empty selection", func(t *testing.T) {
		got, err := ValidateSelection(nil, lookup)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	errorCases := []struct {
		name string
		raw  []StatRawInput
	}{
		{"missing id", []StatRawInput{{ID: " ", Priority: 1}}},
		{"duplicate id", []StatRawInput{{ID: "a", Priority: 1}, {ID: "a", Priority: 2}}},
		{"negative priority", []StatRawInput{{ID: "a", Priority: -1}}},
		{"priority too high", []StatRawInput{{ID: "a", Priority: 6}}},
		{"bad direction", []StatRawInput{{ID: "a", Priority: 1, Direction: "sideways"}}},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateSelection(tc.raw, lookup)
			assert.Error(t, err)
		})
	}
}

func TestBuildSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: a\n  priority: 4\n"), 0o644))

	cfg := &Config{SelectionFile: path, StatSpecs: []string{"b:2:at-most:10"}}
	got, err := BuildSelection(cfg, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, schema.AtMost, got[1].Direction)
	assert.Equal(t, 10.0, *got[1].DesiredMin)

	t.Run("missing file", func(t *testing.T) {
		_, err := BuildSelection(&Config{SelectionFile: filepath.Join(dir, "nope.yaml")}, nil)
		assert.Error(t, err)
	})

	t.Run("duplicate across sources", func(t *testing.T) {
		_, err := BuildSelection(&Config{SelectionFile: path, StatSpecs: []string{"a:1"}}, nil)
		assert.Error(t, err)
	})
}
