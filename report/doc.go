/*
Package report renders B-trees and validation reports for humans.

Three output formats are supported:

  - Console writes a plain-text report, optionally coloured, wrapped to the
    width of the terminal,
  - HTML writes an HTML fragment with the tree as nested lists,
  - Dot writes the tree in Graphviz DOT format (for debugging purposes).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'multiway'
func tracer() tracing.Trace {
	return tracing.Select("multiway")
}
