package arena

import (
	"errors"
	"fmt"
)

// Index is a stable reference to a node slot within a tree.
type Index int

// Nil is the index referring to no node at all.
const Nil Index = -1

// Side selects one of the two children of a node.
type Side int

// A node has a left and a right child.
const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Errors of tree operations. No operation panics on a missing index; instead one
// of these is returned (possibly wrapped), and the tree is left unchanged.
var (
	ErrNoNode       = errors.New("no node at index")
	ErrNoRoot       = errors.New("tree has no root")
	ErrIsRoot       = errors.New("node has no parent")
	ErrCycle        = errors.New("link would create a cycle")
	ErrInconsistent = errors.New("tree links are inconsistent")
)

// --- Nodes -----------------------------------------------------------------

// Node is a slot in a tree. Clients may change the payload of a node, but links
// between nodes are changed through tree operations only.
type Node[T any] struct {
	Payload T
	left    Index
	right   Index
	parent  Index // back-reference, never owning
}

func newNode[T any](payload T) *Node[T] {
	return &Node[T]{
		Payload: payload,
		left:    Nil,
		right:   Nil,
		parent:  Nil,
	}
}

func optional(i Index) (Index, bool) {
	return i, i != Nil
}

// Left returns the index of the left child, if any.
func (n *Node[T]) Left() (Index, bool) {
	return optional(n.left)
}

// Right returns the index of the right child, if any.
func (n *Node[T]) Right() (Index, bool) {
	return optional(n.right)
}

// Child returns the index of the child at a given side, if any.
func (n *Node[T]) Child(side Side) (Index, bool) {
	return optional(*n.childRef(side))
}

// Parent returns the index of the parent node. The root has no parent.
func (n *Node[T]) Parent() (Index, bool) {
	return optional(n.parent)
}

// HasLeft is a predicate.
func (n *Node[T]) HasLeft() bool {
	return n.left != Nil
}

// HasRight is a predicate.
func (n *Node[T]) HasRight() bool {
	return n.right != Nil
}

// ChildCount returns 0, 1 or 2.
func (n *Node[T]) ChildCount() int {
	cnt := 0
	if n.left != Nil {
		cnt++
	}
	if n.right != Nil {
		cnt++
	}
	return cnt
}

func (n *Node[T]) childRef(side Side) *Index {
	if side == Left {
		return &n.left
	}
	return &n.right
}

// --- Tree ------------------------------------------------------------------

// Tree is a binary tree with nodes stored in a table. Create one with New.
type Tree[T any] struct {
	slots []*Node[T] // nil for removed nodes
	root  Index
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: Nil}
}

// Add appends a new node and returns its index. The node is not linked to any
// other node.
func (t *Tree[T]) Add(payload T) Index {
	t.slots = append(t.slots, newNode(payload))
	i := Index(len(t.slots) - 1)
	tracer().Debugf("arena: added node #%d", i)
	return i
}

// AddWithChildren appends a new node and links existing nodes as its children.
// Either child may be Nil. Linking errors are logged, but the new node is
// returned anyway.
func (t *Tree[T]) AddWithChildren(payload T, left, right Index) Index {
	i := t.Add(payload)
	if left != Nil {
		if err := t.SetChild(i, left, Left); err != nil {
			tracer().Errorf("arena: cannot link left child of #%d: %v", i, err)
		}
	}
	if right != Nil {
		if err := t.SetChild(i, right, Right); err != nil {
			tracer().Errorf("arena: cannot link right child of #%d: %v", i, err)
		}
	}
	return i
}

// Get returns the node at index i. It returns false for indices out of range
// and for removed nodes.
func (t *Tree[T]) Get(i Index) (*Node[T], bool) {
	if t == nil || i < 0 || int(i) >= len(t.slots) || t.slots[i] == nil {
		return nil, false
	}
	return t.slots[i], true
}

func (t *Tree[T]) node(i Index) *Node[T] {
	n, _ := t.Get(i)
	return n
}

// Len returns the number of slots, including removed ones. Every index ever
// returned by Add is less than Len.
func (t *Tree[T]) Len() int {
	return len(t.slots)
}

// Size returns the number of nodes not removed.
func (t *Tree[T]) Size() int {
	cnt := 0
	for _, n := range t.slots {
		if n != nil {
			cnt++
		}
	}
	return cnt
}

// Root returns the index of the root node, if the tree is not empty.
func (t *Tree[T]) Root() (Index, bool) {
	if t == nil || t.node(t.root) == nil {
		return Nil, false
	}
	return t.root, true
}

// IsRoot is a predicate.
func (t *Tree[T]) IsRoot(i Index) bool {
	r, ok := t.Root()
	return ok && r == i
}

// SetRoot makes node i the root of the tree. A root cannot have a parent.
// Setting Nil empties the tree without removing any node.
func (t *Tree[T]) SetRoot(i Index) error {
	if i == Nil {
		t.root = Nil
		return nil
	}
	n := t.node(i)
	if n == nil {
		return fmt.Errorf("%w: #%d cannot be root", ErrNoNode, i)
	}
	if n.parent != Nil {
		return fmt.Errorf("%w: #%d has parent #%d and cannot be root", ErrInconsistent, i, n.parent)
	}
	t.root = i
	return nil
}

// ParentOf returns the parent of node i. There is none for the root and for
// absent nodes.
func (t *Tree[T]) ParentOf(i Index) (Index, bool) {
	n := t.node(i)
	if n == nil {
		return Nil, false
	}
	return n.Parent()
}

// SetChild links child as the child of parent at the given side. child may be
// Nil to clear the slot. A node previously occupying the slot loses its
// parent. If child was linked elsewhere it is moved, not shared.
//
// SetChild fails if parent is absent, if child is neither Nil nor present,
// or if child is parent itself or one of its ancestors.
//
// Linking a leaf takes constant time. For a child with children of its own,
// SetChild walks up from parent to rule out cycles, which costs O(depth).
func (t *Tree[T]) SetChild(parent, child Index, side Side) error {
	p := t.node(parent)
	if p == nil {
		return fmt.Errorf("%w: parent #%d", ErrNoNode, parent)
	}
	if child != Nil {
		c := t.node(child)
		if c == nil {
			return fmt.Errorf("%w: child #%d", ErrNoNode, child)
		}
		// a leaf cannot be above any node other than itself
		if child == parent || (c.ChildCount() > 0 && t.isAncestorOrSelf(child, parent)) {
			return fmt.Errorf("%w: #%d is above #%d", ErrCycle, child, parent)
		}
	}
	t.link(parent, child, side)
	return nil
}

// link does the work of SetChild without any checks.
func (t *Tree[T]) link(parent, child Index, side Side) {
	p := t.node(parent)
	c := t.node(child)
	if c != nil {
		t.detach(child)
	}
	ref := p.childRef(side)
	if old := t.node(*ref); old != nil {
		old.parent = Nil
	}
	*ref = child
	if c != nil {
		c.parent = parent
		if t.root == child { // former root moved below parent
			t.root = t.topmost(parent)
		}
	}
}

// ReplaceRootWith makes node newRoot the root of the tree and links the old
// root as its child at the given side.
func (t *Tree[T]) ReplaceRootWith(newRoot Index, side Side) error {
	old, ok := t.Root()
	if !ok {
		return ErrNoRoot
	}
	if t.node(newRoot) == nil {
		return fmt.Errorf("%w: new root #%d", ErrNoNode, newRoot)
	}
	if newRoot == old {
		return fmt.Errorf("%w: #%d is already root", ErrCycle, newRoot)
	}
	t.detach(newRoot)
	if err := t.SetChild(newRoot, old, side); err != nil {
		return err
	}
	t.root = newRoot
	tracer().Debugf("arena: #%d replaces root #%d, old root goes %s", newRoot, old, side)
	return nil
}

// InsertBelow links newChild as the child of parent at oldSide. The node which
// occupied that slot before is moved down to become newChild's child at newSide.
func (t *Tree[T]) InsertBelow(parent Index, oldSide Side, newChild Index, newSide Side) error {
	p := t.node(parent)
	if p == nil {
		return fmt.Errorf("%w: parent #%d", ErrNoNode, parent)
	}
	if t.node(newChild) == nil {
		return fmt.Errorf("%w: new child #%d", ErrNoNode, newChild)
	}
	oldChild := *p.childRef(oldSide)
	if oldChild == newChild {
		return fmt.Errorf("%w: #%d cannot be inserted below itself", ErrCycle, newChild)
	}
	if err := t.SetChild(parent, newChild, oldSide); err != nil {
		return err
	}
	t.link(newChild, oldChild, newSide) // oldChild is detached now, no cycle possible
	return nil
}

// InsertAbove puts node newIndex in the place of node target, which then becomes
// the child of newIndex at the given side.
//
// target must have a parent. To insert above the root, clients use ReplaceRootWith.
func (t *Tree[T]) InsertAbove(target, newIndex Index, side Side) error {
	pi, ok := t.ParentOf(target)
	if !ok {
		if t.node(target) == nil {
			return fmt.Errorf("%w: target #%d", ErrNoNode, target)
		}
		return fmt.Errorf("%w: cannot insert above #%d", ErrIsRoot, target)
	}
	p := t.node(pi)
	if p == nil {
		return fmt.Errorf("%w: parent #%d of #%d is missing", ErrInconsistent, pi, target)
	}
	var oldSide Side
	switch target {
	case p.left:
		oldSide = Left
	case p.right:
		oldSide = Right
	default:
		return fmt.Errorf("%w: #%d is not a child of its parent #%d", ErrInconsistent, target, pi)
	}
	return t.InsertBelow(pi, oldSide, newIndex, side)
}

// Remove clears the slot of node i and returns its payload. The index will not
// be re-used. Links from and to the removed node are cleared; its children
// become parentless.
func (t *Tree[T]) Remove(i Index) (T, bool) {
	n := t.node(i)
	if n == nil {
		var zero T
		return zero, false
	}
	t.detach(i)
	for _, ch := range [2]Index{n.left, n.right} {
		if c := t.node(ch); c != nil && c.parent == i {
			c.parent = Nil
		}
	}
	if t.root == i {
		t.root = Nil
	}
	t.slots[i] = nil
	tracer().Debugf("arena: removed node #%d", i)
	return n.Payload, true
}

// Validate checks the link invariants of a tree: child and parent links mirror
// each other, the root has no parent, and every other node has one.
func (t *Tree[T]) Validate() error {
	for k, n := range t.slots {
		if n == nil {
			continue
		}
		i := Index(k)
		for _, ch := range [2]Index{n.left, n.right} {
			if ch == Nil {
				continue
			}
			if c := t.node(ch); c == nil || c.parent != i {
				return fmt.Errorf("%w: child #%d of #%d does not link back", ErrInconsistent, ch, i)
			}
		}
		if n.parent == Nil {
			if t.root != i {
				return fmt.Errorf("%w: #%d has no parent but is not root", ErrInconsistent, i)
			}
			continue
		}
		p := t.node(n.parent)
		if p == nil || (p.left != i && p.right != i) {
			return fmt.Errorf("%w: parent #%d does not link to #%d", ErrInconsistent, n.parent, i)
		}
	}
	return nil
}

// detach unlinks node i from its parent, if any.
func (t *Tree[T]) detach(i Index) {
	n := t.node(i)
	if n == nil || n.parent == Nil {
		return
	}
	if p := t.node(n.parent); p != nil {
		if p.left == i {
			p.left = Nil
		} else if p.right == i {
			p.right = Nil
		}
	}
	n.parent = Nil
}

// isAncestorOrSelf walks upwards from node i, looking for node a.
func (t *Tree[T]) isAncestorOrSelf(a, i Index) bool {
	for steps := 0; i != Nil && steps <= len(t.slots); steps++ {
		if i == a {
			return true
		}
		n := t.node(i)
		if n == nil {
			return false
		}
		i = n.parent
	}
	return false
}

func (t *Tree[T]) topmost(i Index) Index {
	for steps := 0; steps <= len(t.slots); steps++ {
		n := t.node(i)
		if n == nil || n.parent == Nil {
			break
		}
		i = n.parent
	}
	return i
}
