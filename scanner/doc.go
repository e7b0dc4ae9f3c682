/*
Package scanner turns arithmetic expressions into tokens.

Input may contain digits, decimal points, the operators + - * /, parentheses and
spaces. Spaces are removed before scanning, so "1 2" is the single number 12.
Runs of digits and points form a value token; every operator and every
parenthesis forms a token of its own, even when repeated. A minus sign is folded
into the value following it if it is the first token of the input, or if it
follows an operator or an opening parenthesis:

    Fragments("1 - -1")    ⇒  ["1", "-", "-1"]
    Fragments("(1)-1")     ⇒  ["(", "1", ")", "-", "1"]
    Fragments("1++2")      ⇒  ["1", "+", "+", "2"]

Scanning never fails. Checking the grammar of an expression is up to package expr.

Two tokenizers are provided, both implementing interface Tokenizer: (1) an
adapter for lexmachine (the default), and (2) a scanner reading sequences of
rune categories. Tokenize uses either of them and applies minus-folding.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treecalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("treecalc.scanner")
}
