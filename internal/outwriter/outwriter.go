// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteWeights prints a weights report using the configured output format.
func (ow *OutWriter) WriteWeights(report schema.WeightsReport, cfg *contract.Config) error {
	return WriteWeightsReport(report, cfg)
}

// WriteGroup prints the filter group document.
func (ow *OutWriter) WriteGroup(group schema.FilterGroup, cfg *contract.Config) error {
	return WriteFilterGroup(group, cfg)
}

// WriteTypes prints type buckets using the configured output format.
func (ow *OutWriter) WriteTypes(buckets []schema.TypeBucket, cfg *contract.Config) error {
	return WriteTypeBuckets(buckets, cfg)
}

// WriteClassified prints classified bases using the configured output format.
func (ow *OutWriter) WriteClassified(results []schema.ClassifiedBase, cfg *contract.Config) error {
	return WriteClassified(results, cfg)
}

// WriteStats prints stat definitions using the configured output format.
func (ow *OutWriter) WriteStats(defs []schema.StatDefinition, cfg *contract.Config) error {
	return WriteStatDefinitions(defs, cfg)
}

// WriteScales prints the scale table using the configured output format.
func (ow *OutWriter) WriteScales(rows []schema.ScaleRow, cfg *contract.Config) error {
	return WriteScaleRows(rows, cfg)
}

// WriteCacheStatus prints cache status information.
func (ow *OutWriter) WriteCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	return WriteCacheStatus(status, cfg)
}
