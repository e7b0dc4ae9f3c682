/*
Package eval calculates the value of expression trees.

Evaluation is a post-order reduction over a tree, using an explicit value
stack. Numbers are represented as big.Float values with a configurable
mantissa precision:

    tree, _ := expr.Parse("1 + 2 * 3")
    v, err := eval.Evaluate(tree, eval.Prec(128))

A parenthesis node evaluates to the value of its single child, whether it has
been closed or not.

Evaluation follows the structure of the tree strictly. The tree builder nests
chains of * and / to the right, while chains of + and - nest to the left.
Therefore

    8 / 2 / 2    evaluates as   8 / (2 / 2)  = 8
    6 / 2 * 3    evaluates as   6 / (2 * 3)  = 1

which differs from the usual left-to-right reading of division. Clients
wanting conventional results have to parenthesize, as in "(8/2)/2".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treecalc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("treecalc.eval")
}
