/*
Package treecalc is a small calculator toolbox, centered around building binary
expression trees without an operator stack.

Tokens of an arithmetic expression are fed one at a time into a tree builder,
which performs local surgery on an arena-backed binary tree: inserting nodes above
or below a cursor, replacing the root, and re-tagging parenthesis nodes in place.
Package structure is as follows:

■ arena: Package arena implements a generic binary tree with nodes stored in a
table and addressed by stable integer indices, together with an iterative
post-order sequencer.

■ scanner: Package scanner turns raw input into tokens, folding unary minus into
numeric literals.

■ expr: Package expr implements the expression tree builder.

■ eval: Package eval reduces a completed expression tree to a number.

■ calc: Package calc ties everything together for interactive use, including a
history of calculations.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treecalc
