/*
Package arena implements a binary tree with nodes held in a table.

Nodes are referenced by integer indices into the table. Indices are stable: they
are never re-used or compacted during the lifetime of a tree, so an index obtained
once remains a valid identity for its node until the node is removed explicitly.
Removal leaves a tombstone in the table.

Every node carries links to its left and right child and to its parent. Ownership
flows from parent to child only; the parent link is a back-reference kept as a
lookup aid for walking upwards, and it is maintained with every change of a child
link:

    if n.left == c or n.right == c  then  c.parent == n

A tree has at most one parentless node, its root.

Trees are not safe for concurrent mutation. A completed tree, however, may be
read by many readers (e.g., sequencers) in parallel.

Post-Order Sequencing

A Sequencer produces the indices of a tree in post-order (left subtree, right
subtree, node), lazily and without recursion:

    seq := arena.PostOrder(tree)
    for i, ok := seq.Next(); ok; i, ok = seq.Next() {
        node, _ := tree.Get(i)
        …
    }

A sequencer is exhausted after one pass; create a fresh one to traverse again.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treecalc.tree'.
func tracer() tracing.Trace {
	return tracing.Select("treecalc.tree")
}
