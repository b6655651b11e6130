// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing ordered observations,
// along with functions for loading data from CSV files and basic slicing and
// summary statistics.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{112, 118, 132, 129, 121, 135}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a column by position (second column, header present)
//	series, err := timeseries.LoadCSVColumnIndex("data.csv", 1, true)
//
//	// Load a column by header name
//	series, err := timeseries.LoadCSVColumn("data.csv", "Passengers")
//
// Rows whose value cell fails to parse are reported as errors rather than
// skipped, so a corrupted file cannot silently shorten the series.
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Slicing and Splitting
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	train, test := series.Split(0.67) // contiguous prefix/suffix, no shuffling
//	copy := series.Copy()
package timeseries
