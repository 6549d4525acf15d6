// Package report renders discovery results.
//
// Two formats are supported: the line oriented text form
//
//	Hypo: attributes: [0, 3] quality = 0.21
//
// with the best hypothesis first, and a JSON document carrying the run
// configuration, traversal statistics and per-hypothesis coverage counts.
package report
