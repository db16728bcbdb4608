/*
Package keyfile reads B-tree keys from text.

A key file holds signed decimal integers separated by whitespace, commas or
semicolons. A '#' starts a comment which runs to the end of the line:

	# keys of the demo tree
	10, 20, 5
	6 -12 +7   # signs are allowed

Text is segmented along line-break opportunities; keys are delivered in
batches, one batch per completed input line. Load and Parse are synchronous.
Stream publishes batches to any number of subscribers while parsing in the
background.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package keyfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'multiway'
func tracer() tracing.Trace {
	return tracing.Select("multiway")
}
