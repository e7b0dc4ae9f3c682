/*
Package expr builds binary expression trees from arithmetic tokens.

The builder does not use an operator stack. Instead it keeps a single cursor,
the index of the node attached most recently, and performs local surgery on
an arena tree for every incoming token:

■ Values are attached below the cursor (as the right operand of an operator,
or as the first content of a group).

■ Operators * and / bind tightly: they are inserted directly above the cursor,
taking over its place and adopting it as their left operand.

■ Operators + and - bind loosely: starting at the cursor, the builder climbs
upwards until it reaches the root or a node directly below an opening
parenthesis, and inserts the operator there.

■ An opening parenthesis becomes a node of its own, holding the grouped
sub-expression as its left child.

■ A closing parenthesis does not create a node. The builder climbs up to the
matching opening parenthesis node and re-tags it as closed, in place.

For example, "1 + 2 * 3" yields

        +
       / \
      1   *
         / \
        2   3

Grammar violations, like two consecutive operators, abort the build with an
error. No partial tree is ever returned. The builder does not validate a tree
after the last token: "1+" and "(1+2" result in trees with a dangling
operator or an unclosed group, which will be rejected during evaluation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treecalc.tree'.
func tracer() tracing.Trace {
	return tracing.Select("treecalc.tree")
}
