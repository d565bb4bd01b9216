package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/weightexile/core/algo"
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/internal/iocache"
	"github.com/huangsam/weightexile/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testStatsJSON = `{
	"result": [
		{
			"label": "Pseudo",
			"entries": [
				{"id": "pseudo.pseudo_total_life", "text": "+# total maximum Life", "type": "pseudo"}
			]
		},
		{
			"label": "Explicit",
			"entries": [
				{"id": "explicit.stat_1050105434", "text": "+# to maximum Mana", "type": "explicit"},
				{"id": "explicit.stat_3299347043", "text": "+# to maximum Life", "type": "explicit"}
			]
		}
	]
}`

const testItemsJSON = `{
	"result": [
		{
			"label": "Accessories",
			"entries": [
				{"type": "Two-Stone Ring"},
				{"type": "Iron Ring"},
				{"type": "Coral Amulet"},
				{"name": "Berek's Grip", "type": "Two-Stone Ring"}
			]
		},
		{
			"label": "Armour",
			"entries": [
				{"type": "Hubris Circlet"}
			]
		}
	]
}`

func ptr(v float64) *float64 { return &v }

// newTestConfig writes the catalogs to a temp dir and returns a config that reads them.
func newTestConfig(t *testing.T) *contract.Config {
	t.Helper()
	dir := t.TempDir()
	statsFile := filepath.Join(dir, "stats.json")
	itemsFile := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(statsFile, []byte(testStatsJSON), 0o644))
	require.NoError(t, os.WriteFile(itemsFile, []byte(testItemsJSON), 0o644))
	return &contract.Config{
		StatsFile:   statsFile,
		ItemsFile:   itemsFile,
		ResultLimit: contract.DefaultResultLimit,
		Output:      schema.JSONOut,
		OutputFile:  filepath.Join(dir, "out.json"),
	}
}

// noCacheManager returns a mock manager with caching disabled.
func noCacheManager() *iocache.MockCacheManager {
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetCatalogStore").Return(nil)
	return mgr
}

func TestBuildWeightsReport(t *testing.T) {
	selected := []schema.SelectedStat{
		{
			StatDefinition: schema.StatDefinition{ID: "pseudo.pseudo_total_life", Text: "+# total maximum Life", Category: "Pseudo"},
			Priority:       5,
			Direction:      schema.AtLeast,
			DesiredMin:     ptr(90),
		},
		{
			StatDefinition: schema.StatDefinition{ID: "explicit.stat_1050105434", Text: "+# to maximum Mana", Category: "Explicit"},
			Priority:       2,
			Direction:      schema.AtLeast,
		},
	}

	report := BuildWeightsReport(selected, algo.DefaultScales)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, 1, report.Rows[0].Index)
	assert.Equal(t, schema.EssentialValue, report.Rows[0].Label)
	assert.Equal(t, 120.0, report.Rows[0].Scale)
	assert.Equal(t, 68, report.Rows[0].Weight)
	assert.Equal(t, 100.0, report.Rows[1].Scale)
	assert.Equal(t, 32, report.Rows[1].Weight)
	assert.Equal(t, 100, report.TotalWeight)

	// 90 * 68 / 120 = 51
	assert.Equal(t, 51, report.MinSum)
	assert.Equal(t, schema.DesiredRule, report.Rule)

	assert.Equal(t, schema.FilterGroupType, report.Group.Type)
	assert.Equal(t, 51, report.Group.Min)
	require.Len(t, report.Group.Filters, 2)
	assert.Equal(t, "pseudo.pseudo_total_life", report.Group.Filters[0].ID)
	assert.Equal(t, 68, report.Group.Filters[0].Value.Weight)
	assert.False(t, report.Group.Filters[1].Disabled)
}

func TestBuildWeightsReportNilResolver(t *testing.T) {
	selected := []schema.SelectedStat{
		{StatDefinition: schema.StatDefinition{ID: "a"}, Priority: 3},
	}
	report := BuildWeightsReport(selected, nil)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, algo.DefaultScale, report.Rows[0].Scale)
	assert.Equal(t, 100, report.Rows[0].Weight)
	assert.Equal(t, 50, report.MinSum)
	assert.Equal(t, schema.HalfRule, report.Rule)
}

func TestGetWeightsResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)
	cfg.StatSpecs = []string{"pseudo.pseudo_total_life:5:at-least:90", "explicit.stat_1050105434:2"}
	mgr := noCacheManager()

	report, err := GetWeightsResults(ctx, cfg, mgr)
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "+# total maximum Life", report.Rows[0].Text)
	assert.Equal(t, "Pseudo", report.Rows[0].Category)
	assert.Equal(t, "Explicit", report.Rows[1].Category)
	assert.Equal(t, 51, report.MinSum)
	mgr.AssertExpectations(t)
}

func TestGetWeightsResultsScaleOverride(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)
	cfg.StatSpecs = []string{"pseudo.pseudo_total_life:5", "explicit.stat_1050105434:5"}
	cfg.ScaleOverrides = map[string]float64{"pseudo.pseudo_total_life": 100}

	report, err := GetWeightsResults(ctx, cfg, noCacheManager())
	require.NoError(t, err)
	assert.Equal(t, 50, report.Rows[0].Weight)
	assert.Equal(t, 50, report.Rows[1].Weight)
}

func TestGetWeightsResultsSelectionFile(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)
	cfg.SelectionFile = filepath.Join(t.TempDir(), "selection.yaml")
	require.NoError(t, os.WriteFile(cfg.SelectionFile, []byte(`stats:
  - id: explicit.stat_3299347043
    priority: 4
    direction: at-most
`), 0o644))

	report, err := GetWeightsResults(ctx, cfg, noCacheManager())
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, schema.AtMost, report.Rows[0].Direction)
	assert.Equal(t, "+# to maximum Life", report.Rows[0].Text)
}

func TestGetWeightsResultsErrors(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	tests := []struct {
		name  string
		specs []string
	}{
		{"empty selection", nil},
		{"bad flag", []string{"pseudo.pseudo_total_life"}},
		{"bad priority", []string{"pseudo.pseudo_total_life:9"}},
		{"duplicate", []string{"a:1", "a:2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			cfg.StatSpecs = tt.specs
			_, err := GetWeightsResults(ctx, cfg, noCacheManager())
			assert.Error(t, err)
		})
	}
}

func TestGetWeightsResultsMissingCatalog(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)
	cfg.StatsFile = filepath.Join(t.TempDir(), "missing.json")
	cfg.StatSpecs = []string{"pseudo.pseudo_total_life:5"}

	report, err := GetWeightsResults(ctx, cfg, noCacheManager())
	require.NoError(t, err)
	assert.Empty(t, report.Rows[0].Text)
	assert.Equal(t, 100, report.Rows[0].Weight)
}

func TestGetSelectionResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)
	raw := []contract.StatRawInput{{ID: "pseudo.pseudo_total_life", Priority: 3}}

	report, err := GetSelectionResults(ctx, cfg, nil, raw)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, schema.AtLeast, report.Rows[0].Direction)

	_, err = GetSelectionResults(ctx, cfg, nil, []contract.StatRawInput{{Priority: 3}})
	assert.Error(t, err)
}

func TestGetTypesResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	tests := []struct {
		name       string
		query      string
		typeFilter string
		expected   []schema.TypeBucket
	}{
		{
			name: "all",
			expected: []schema.TypeBucket{
				{Type: "Amulet", Bases: []string{"Coral Amulet"}},
				{Type: "Helmet", Bases: []string{"Hubris Circlet"}},
				{Type: "Ring", Bases: []string{"Iron Ring", "Two-Stone Ring"}},
			},
		},
		{
			name:     "query",
			query:    "iron",
			expected: []schema.TypeBucket{{Type: "Ring", Bases: []string{"Iron Ring"}}},
		},
		{
			name:       "type filter",
			typeFilter: "helm",
			expected:   []schema.TypeBucket{{Type: "Helmet", Bases: []string{"Hubris Circlet"}}},
		},
		{
			name:       "no match",
			typeFilter: "sword",
			expected:   []schema.TypeBucket{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			cfg.Query = tt.query
			cfg.TypeFilter = tt.typeFilter
			assert.Equal(t, tt.expected, GetTypesResults(ctx, cfg, noCacheManager()))
		})
	}
}

func TestGetStatsResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)

	cfg.Query = "maximum life"
	results := GetStatsResults(ctx, cfg, noCacheManager())
	require.Len(t, results, 2)
	assert.Equal(t, "pseudo.pseudo_total_life", results[0].ID)

	cfg.ResultLimit = 1
	assert.Len(t, GetStatsResults(ctx, cfg, noCacheManager()), 1)
}

func TestGetClassifyResults(t *testing.T) {
	results := GetClassifyResults([]string{"Hubris Circlet", "Cobalt Jewel"})
	assert.Equal(t, []schema.ClassifiedBase{
		{Base: "Hubris Circlet", Type: "Helmet"},
		{Base: "Cobalt Jewel", Type: "Jewel"},
	}, results)
}

func TestGetScalesResults(t *testing.T) {
	cfg := &contract.Config{ScaleOverrides: map[string]float64{"explicit.stat_1": 42}}
	rows := GetScalesResults(cfg)
	require.NotEmpty(t, rows)
	assert.Equal(t, schema.ScaleRow{Kind: "override", Match: "explicit.stat_1", Scale: 42}, rows[0])
	assert.Equal(t, "default", rows[len(rows)-1].Kind)
}

func TestExecuteGroup(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)
	cfg.StatSpecs = []string{"pseudo.pseudo_total_life:5"}

	require.NoError(t, ExecuteGroup(ctx, cfg, noCacheManager()))

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var group schema.FilterGroup
	require.NoError(t, json.Unmarshal(content, &group))
	assert.Equal(t, schema.FilterGroupType, group.Type)
	assert.Equal(t, 50, group.Min)
	assert.Equal(t, []schema.FilterEntry{{ID: "pseudo.pseudo_total_life", Value: schema.FilterValue{Weight: 100}}}, group.Filters)
}

func TestExecuteWeightsError(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)
	assert.Error(t, ExecuteWeights(ctx, cfg, noCacheManager()))
}

func TestExecuteCacheStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, ExecuteCacheStatus(ctx, cfg, noCacheManager()))
		content, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"backend": "none"`)
	})

	t.Run("store", func(t *testing.T) {
		cfg := newTestConfig(t)
		store := &iocache.MockCacheStore{}
		store.On("GetStatus").Return(schema.CacheStatus{Backend: "sqlite", Connected: true, TotalEntries: 2}, nil)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetCatalogStore").Return(store)

		require.NoError(t, ExecuteCacheStatus(ctx, cfg, mgr))
		content, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"total_entries": 2`)
		store.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		cfg := newTestConfig(t)
		store := &iocache.MockCacheStore{}
		store.On("GetStatus").Return(schema.CacheStatus{}, assert.AnError)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetCatalogStore").Return(store)

		assert.ErrorIs(t, ExecuteCacheStatus(ctx, cfg, mgr), assert.AnError)
	})
}

func TestCatalogLoadUsesCache(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := newTestConfig(t)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return(nil, 0, int64(0), assert.AnError)
	store.On("Set", mock.Anything, mock.Anything, 1, mock.Anything).Return(nil)
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetCatalogStore").Return(store)

	results := GetStatsResults(ctx, cfg, mgr)
	assert.Len(t, results, 3)
	store.AssertNumberOfCalls(t, "Set", 1)
}
