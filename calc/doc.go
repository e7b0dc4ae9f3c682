/*
Package calc implements a calculator on top of expression trees.

A Calculator accepts expressions as strings, one at a time. Committing an
expression runs it through the whole chain

    scanner.Tokenize  ➞  expr.Build  ➞  eval.Evaluate

and records the input, together with its result, in a history of previous
calculations. Entries of the history may be recalled, either as the input
text or as the formatted result, to be edited and committed again.

Values are those of the expression trees, as calculated by package eval.
Chains of * and / group to the right: "8/2/2" results in 8, not in 2.

Results are formatted for display with Format: integers print without a
fractional part, other numbers are rounded to 12 decimal places.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package calc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treecalc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("treecalc.eval")
}
