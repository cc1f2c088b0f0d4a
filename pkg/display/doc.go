// Package display turns filtering results into what the user sees.
//
// Option Ordering:
//
// Selectable values are sets; Sorter orders them with locale-aware
// collation so "Zürich" sorts next to "Zurich" and "Tag2" before "Tag10":
//
//	sorter, err := display.NewSorter(cfg.GetLocale())
//	values := sorter.Sort(selectable)
//
// Results:
//
// NewOptionsResult and NewItemsResult convert a session snapshot into the
// output package's result types, which are printed as tables here or
// written as JSON, CSV or XML by pkg/output.
//
// Messages:
//
//	display.PrintWarnings(os.Stderr, collector.Messages())
//	display.PrintSummary(os.Stdout, result.Summary)
package display
