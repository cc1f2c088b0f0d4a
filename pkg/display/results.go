package display

import (
	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/output"
)

// NewOptionsResult converts a snapshot into an options result.
//
// Parameters:
//   - cfg: Configuration providing dimension labels
//   - snap: Session snapshot
//   - cleared: Dimensions cleared by the last change, may be nil
//   - sorter: Orders the selectable values
//
// Returns:
//   - *output.OptionsResult: Result with one entry per dimension
func NewOptionsResult(cfg *config.Config, snap filtering.Snapshot, cleared []filtering.Dimension, sorter *Sorter) *output.OptionsResult {
	result := &output.OptionsResult{
		Summary: output.Summary{Visible: len(snap.Visible), Total: snap.Total},
	}
	for _, d := range filtering.Dimensions {
		result.Dimensions = append(result.Dimensions, output.DimensionOptions{
			Key:      d.String(),
			Label:    cfg.Label(d),
			Selected: snap.State.Get(d),
			Values:   sorter.Sort(snap.Selectable[d]),
		})
	}
	for _, d := range cleared {
		result.Cleared = append(result.Cleared, d.String())
	}
	return result
}

// NewItemsResult converts a snapshot into an items result.
//
// Parameters:
//   - cfg: Configuration providing dimension labels
//   - snap: Session snapshot
//
// Returns:
//   - *output.ItemsResult: Visible items in catalog order
func NewItemsResult(cfg *config.Config, snap filtering.Snapshot) *output.ItemsResult {
	result := &output.ItemsResult{
		Summary: output.Summary{Visible: len(snap.Visible), Total: snap.Total},
		Items:   make([]output.ItemEntry, 0, len(snap.Visible)),
	}
	for i, d := range filtering.Dimensions {
		result.Labels[i] = cfg.Label(d)
	}
	for _, it := range snap.Visible {
		result.Items = append(result.Items, output.ItemEntry{ID: it.ID, Dim1: it.Dim1, Dim2: it.Dim2, Dim3: it.Dim3})
	}
	return result
}
