// Package extract reads the two source datasets into entity slices.
//
// LoadNEOs reads the tabular NEO dataset: delimited text with a header row,
// columns located by name so column order never matters. LoadApproaches
// reads the close-approach dataset: a JSON document whose "data" key holds
// fixed-length rows, with the fields of interest at fixed positions.
//
// Both loaders consume the whole file, close it on every exit path, and
// report malformed input as a *FormatError naming the dataset and record.
// Fields the parsers do not recognize are dropped here and never reach the
// entity constructors.
package extract
