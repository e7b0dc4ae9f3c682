package arena

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Sequencer produces the node indices of a tree in post-order. It keeps an
// explicit stack of pending nodes, so the depth of a tree is not limited by
// the call stack.
//
// A sequencer is finite and single-pass. It must not be used while the tree
// is being modified.
type Sequencer[T any] struct {
	tree    *Tree[T]
	pending *arraystack.Stack // indices not yet yielded
	visited *hashset.Set      // indices already yielded
}

// PostOrder creates a sequencer for a tree, starting at the root.
// For an empty tree the sequence is empty.
func PostOrder[T any](tree *Tree[T]) *Sequencer[T] {
	seq := &Sequencer[T]{
		tree:    tree,
		pending: arraystack.New(),
		visited: hashset.New(),
	}
	if root, ok := tree.Root(); ok {
		seq.pending.Push(root)
	}
	return seq
}

// Next returns the next index in post-order, and false if the sequence is
// exhausted.
//
// The top of the pending stack is yielded only after both of its children have
// been yielded. Children are pushed right first, so the left subtree comes out
// before the right one.
func (seq *Sequencer[T]) Next() (Index, bool) {
	for !seq.pending.Empty() {
		top, _ := seq.pending.Peek()
		i := top.(Index)
		node, ok := seq.tree.Get(i)
		if !ok {
			seq.pending.Pop()
			continue
		}
		pushed := seq.pushUnvisited(node.right)
		pushed = seq.pushUnvisited(node.left) || pushed
		if !pushed {
			seq.pending.Pop()
			seq.visited.Add(i)
			return i, true
		}
	}
	return Nil, false
}

func (seq *Sequencer[T]) pushUnvisited(i Index) bool {
	if _, ok := seq.tree.Get(i); !ok || seq.visited.Contains(i) {
		return false
	}
	seq.pending.Push(i)
	return true
}

// Collect drains a sequencer and returns the remaining indices.
func Collect[T any](seq *Sequencer[T]) []Index {
	var indices []Index
	for i, ok := seq.Next(); ok; i, ok = seq.Next() {
		indices = append(indices, i)
	}
	return indices
}
