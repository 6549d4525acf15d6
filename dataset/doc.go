// Package dataset holds the immutable binary instance table searched by the
// subgroup miner.
//
// Every row has NumAttributes binary attribute values followed by the binary
// class label. Next to the rows, each column is indexed as a roaring bitmap of
// the row ids holding value 1, which lets the quality engine compute coverage
// by bitmap intersection instead of row scans.
//
// The text format read by Parse is:
//
//	numInstances,numAttributes,K,functionChoice
//	a_0,a_1,...,a_{M-1},label
//	...
//
// Open additionally detects zstd, gzip and lz4 compressed input.
package dataset
