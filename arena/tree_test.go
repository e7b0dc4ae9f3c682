package arena

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	a := tree.Add("a")
	b := tree.Add("b")
	assert.Equal(t, Index(0), a)
	assert.Equal(t, Index(1), b)
	n, ok := tree.Get(b)
	require.True(t, ok)
	assert.Equal(t, "b", n.Payload)
	for _, i := range []Index{Nil, 2, 100} {
		_, ok := tree.Get(i)
		assert.False(t, ok, "expected no node at #%d", i)
	}
	if _, ok := tree.Root(); ok {
		t.Errorf("expected fresh tree to have no root")
	}
}

func TestSetChildMaintainsParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[int]()
	p := tree.Add(0)
	c1 := tree.Add(1)
	c2 := tree.Add(2)
	require.NoError(t, tree.SetRoot(p))
	require.NoError(t, tree.SetChild(p, c1, Left))
	parent, ok := tree.ParentOf(c1)
	assert.True(t, ok)
	assert.Equal(t, p, parent)
	require.NoError(t, tree.SetChild(p, c2, Left))
	_, ok = tree.ParentOf(c1)
	assert.False(t, ok, "replaced child should have lost its parent")
	parent, _ = tree.ParentOf(c2)
	assert.Equal(t, p, parent)
	require.NoError(t, tree.SetChild(p, Nil, Left))
	node, _ := tree.Get(p)
	assert.False(t, node.HasLeft())
	_, ok = tree.ParentOf(c2)
	assert.False(t, ok)
}

func TestSetChildMovesNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[int]()
	r := tree.Add(0)
	a := tree.Add(1)
	b := tree.Add(2)
	require.NoError(t, tree.SetRoot(r))
	require.NoError(t, tree.SetChild(r, a, Left))
	require.NoError(t, tree.SetChild(r, b, Right))
	require.NoError(t, tree.SetChild(a, b, Right)) // move b below a
	root, _ := tree.Get(r)
	assert.False(t, root.HasRight())
	assert.Equal(t, 1, root.ChildCount())
	parent, _ := tree.ParentOf(b)
	assert.Equal(t, a, parent)
	assert.NoError(t, tree.Validate())
}

func TestSetChildFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[int]()
	p := tree.Add(0)
	c := tree.Add(1)
	assert.ErrorIs(t, tree.SetChild(7, c, Left), ErrNoNode)
	assert.ErrorIs(t, tree.SetChild(p, 7, Left), ErrNoNode)
	require.NoError(t, tree.SetChild(p, c, Left))
	assert.ErrorIs(t, tree.SetChild(c, p, Right), ErrCycle)
	assert.ErrorIs(t, tree.SetChild(c, c, Right), ErrCycle)
	node, _ := tree.Get(c)
	assert.False(t, node.HasRight(), "failed operation must not change the tree")
}

func TestAddWithChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	l := tree.Add("1")
	r := tree.Add("2")
	op := tree.AddWithChildren("+", l, r)
	require.NoError(t, tree.SetRoot(op))
	node, _ := tree.Get(op)
	left, _ := node.Left()
	right, _ := node.Right()
	assert.Equal(t, l, left)
	assert.Equal(t, r, right)
	assert.NoError(t, tree.Validate())
	lonely := tree.AddWithChildren("x", 99, Nil) // bad child is logged, node is added
	_, ok := tree.Get(lonely)
	assert.True(t, ok)
}

func TestReplaceRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	a := tree.Add("a")
	b := tree.Add("b")
	assert.ErrorIs(t, tree.ReplaceRootWith(b, Left), ErrNoRoot)
	require.NoError(t, tree.SetRoot(a))
	assert.ErrorIs(t, tree.ReplaceRootWith(42, Left), ErrNoNode)
	assert.ErrorIs(t, tree.ReplaceRootWith(a, Left), ErrCycle)
	require.NoError(t, tree.ReplaceRootWith(b, Left))
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, b, root)
	assert.True(t, tree.IsRoot(b))
	assert.False(t, tree.IsRoot(a))
	parent, ok := tree.ParentOf(a)
	assert.True(t, ok)
	assert.Equal(t, b, parent)
	assert.NoError(t, tree.Validate())
}

func TestInsertAbove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	r := tree.Add("+")
	l := tree.Add("1")
	c := tree.Add("2")
	n := tree.Add("*")
	require.NoError(t, tree.SetRoot(r))
	require.NoError(t, tree.SetChild(r, l, Left))
	require.NoError(t, tree.SetChild(r, c, Right))
	assert.ErrorIs(t, tree.InsertAbove(r, n, Left), ErrIsRoot)
	assert.ErrorIs(t, tree.InsertAbove(17, n, Left), ErrNoNode)
	require.NoError(t, tree.InsertAbove(c, n, Left))
	root, _ := tree.Get(r)
	right, _ := root.Right()
	assert.Equal(t, n, right)
	star, _ := tree.Get(n)
	left, _ := star.Left()
	assert.Equal(t, c, left)
	assert.False(t, star.HasRight())
	assert.NoError(t, tree.Validate())
}

func TestInsertAboveInconsistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	r := tree.Add("r")
	x := tree.Add("x")
	n := tree.Add("n")
	require.NoError(t, tree.SetRoot(r))
	tree.slots[x].parent = r // parent link without child link
	assert.ErrorIs(t, tree.InsertAbove(x, n, Left), ErrInconsistent)
	assert.ErrorIs(t, tree.Validate(), ErrInconsistent)
}

func TestInsertBelow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	p := tree.Add("p")
	old := tree.Add("old")
	n := tree.Add("new")
	require.NoError(t, tree.SetRoot(p))
	require.NoError(t, tree.SetChild(p, old, Right))
	require.NoError(t, tree.InsertBelow(p, Right, n, Right))
	parent, _ := tree.ParentOf(old)
	assert.Equal(t, n, parent)
	parent, _ = tree.ParentOf(n)
	assert.Equal(t, p, parent)
	assert.ErrorIs(t, tree.InsertBelow(p, Right, n, Left), ErrCycle)
	assert.NoError(t, tree.Validate())
}

func TestInsertBelowMovesLeafOutOfSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	p := tree.Add("p")
	a := tree.Add("a")
	leaf := tree.Add("leaf")
	require.NoError(t, tree.SetRoot(p))
	require.NoError(t, tree.SetChild(p, a, Left))
	require.NoError(t, tree.SetChild(a, leaf, Right))
	require.NoError(t, tree.InsertBelow(p, Left, leaf, Left))
	parent, _ := tree.ParentOf(a)
	assert.Equal(t, leaf, parent)
	node, _ := tree.Get(a)
	assert.False(t, node.HasRight())
	assert.NoError(t, tree.Validate())
}

func TestCycleInDetachedSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[int]()
	top := tree.Add(0) // neither root nor child of any node
	mid := tree.Add(1)
	low := tree.Add(2)
	require.NoError(t, tree.SetChild(top, mid, Left))
	require.NoError(t, tree.SetChild(mid, low, Left))
	assert.ErrorIs(t, tree.SetChild(low, top, Right), ErrCycle)
	assert.ErrorIs(t, tree.SetChild(low, mid, Right), ErrCycle)
	assert.ErrorIs(t, tree.SetChild(low, low, Right), ErrCycle)
	require.NoError(t, tree.SetChild(top, low, Right)) // leaf moves up
	node, _ := tree.Get(mid)
	assert.Equal(t, 0, node.ChildCount())
}

func TestLongRightChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	const n = 20000
	tree := New[string]()
	cursor := tree.Add("1")
	require.NoError(t, tree.SetRoot(cursor))
	for k := 0; k < n; k++ {
		op := tree.Add("*")
		if tree.IsRoot(cursor) {
			require.NoError(t, tree.ReplaceRootWith(op, Left))
		} else {
			require.NoError(t, tree.InsertAbove(cursor, op, Left))
		}
		v := tree.Add("x")
		require.NoError(t, tree.SetChild(op, v, Right))
		cursor = v
	}
	require.NoError(t, tree.Validate())
	indices := Collect(PostOrder(tree))
	require.Len(t, indices, 2*n+1)
	last, _ := tree.Get(indices[len(indices)-1])
	assert.Equal(t, "*", last.Payload)
	root, _ := tree.Root()
	assert.Equal(t, Index(1), root)
}

func TestRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.tree")
	defer teardown()
	//
	tree := New[string]()
	r := tree.Add("r")
	c := tree.Add("c")
	require.NoError(t, tree.SetRoot(r))
	require.NoError(t, tree.SetChild(r, c, Left))
	payload, ok := tree.Remove(c)
	assert.True(t, ok)
	assert.Equal(t, "c", payload)
	_, ok = tree.Get(c)
	assert.False(t, ok)
	_, ok = tree.Remove(c)
	assert.False(t, ok, "second removal must be a no-op")
	root, _ := tree.Get(r)
	assert.False(t, root.HasLeft())
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 1, tree.Size())
	d := tree.Add("d")
	assert.Equal(t, Index(2), d, "indices must not be re-used")
	tree.Remove(r)
	_, ok = tree.Root()
	assert.False(t, ok)
}
