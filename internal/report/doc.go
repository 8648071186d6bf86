// Package report writes ranked census results to the report file, one
// section per volume, in the order volumes were scanned.
package report
