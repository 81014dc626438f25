// Package dataset orchestrates the batch conversion of a labeled
// speech corpus into aligned feature and label arrays on disk.
package dataset
