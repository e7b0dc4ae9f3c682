/*
Package tcalc/main provides an interactive command line calculator (T.CALC)
for arithmetic expressions over numbers with the operators + - * / and
parentheses. Expressions are evaluated by building an expression tree,
which may be displayed for inspection.

Usage:

    tcalc [-trace level] [-prec bits] [-history n] [-init file] [expression ...]

At the prompt, enter an expression to evaluate it, or one of the commands

    :tree EXPR    display the expression tree of EXPR
    :hist [n]     list the n most recent calculations (default 10)
    !n            edit the input of the n-th previous calculation
    !n=           edit the result of the n-th previous calculation
    :help         show this list
    :quit         leave (or <ctrl>D)


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treecalc.eval'
func tracer() tracing.Trace {
	return tracing.Select("treecalc.eval")
}
