package expr

import (
	"github.com/npillmayer/treecalc"
	"github.com/npillmayer/treecalc/arena"
)

// Walk traverses an expression tree top-down, calling listener methods for
// every node encountered. It returns the value ExitTerm calculated for the
// root, or nil for an empty tree.
//
// Walk recurses along the tree, which is fine for display purposes. Clients
// processing trees of arbitrary depth should use arena.PostOrder instead.
func Walk(tree *Tree, listener Listener, breakmode Breakmode) interface{} {
	root, ok := tree.Root()
	if !ok {
		return nil
	}
	tracer().Debugf("walk starting at #%d", root)
	return walk(tree, root, listener, breakmode, 0)
}

func walk(tree *Tree, i arena.Index, listener Listener, breakmode Breakmode, level int) interface{} {
	n, _ := tree.Get(i)
	ctxt := TermCtxt{Index: i, Level: level}
	var values [2]interface{}
	doContinue := listener.EnterTerm(n.Payload, ctxt)
	if doContinue || breakmode == Continue {
		for _, side := range [2]arena.Side{arena.Left, arena.Right} {
			if child, ok := n.Child(side); ok {
				values[side] = walk(tree, child, listener, breakmode, level+1)
			}
		}
	}
	return listener.ExitTerm(n.Payload, values, ctxt)
}

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as EnterTerm signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking an expression tree.
//
// EnterTerm returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitTerm receives the values calculated for the
// left and right child (nil for missing children) and may return a user-defined
// value to be propagated upwards of the tree.
type Listener interface {
	EnterTerm(Term, TermCtxt) bool
	ExitTerm(Term, [2]interface{}, TermCtxt) interface{}
}

// TermCtxt is a context structure for Listeners.
type TermCtxt struct {
	Index arena.Index // node of the term
	Level int         // nesting level, 0 for the root
}

// --- Rendering -------------------------------------------------------------

// rendered is the infix text of a sub-tree. prec is the binding strength of
// its top-level operator, 0 for values and groups.
type rendered struct {
	text string
	prec int
}

func precedence(op string) int {
	if treecalc.BindsTight(op) {
		return 2
	}
	return 1
}

type infix struct{}

func (infix) EnterTerm(Term, TermCtxt) bool { return true }

func (infix) ExitTerm(t Term, values [2]interface{}, ctxt TermCtxt) interface{} {
	text := func(side int) string {
		if r, ok := values[side].(rendered); ok {
			return r.text
		}
		return ""
	}
	switch t.Kind {
	case treecalc.OperatorToken:
		p := precedence(t.Text)
		l, r := "?", "?"
		if lr, ok := values[0].(rendered); ok {
			l = lr.text
			if lr.prec != 0 && lr.prec < p {
				l = "(" + l + ")"
			}
		}
		if rr, ok := values[1].(rendered); ok {
			r = rr.text
			if rr.prec != 0 && rr.prec <= p {
				r = "(" + r + ")"
			}
		}
		return rendered{l + " " + t.Text + " " + r, p}
	case treecalc.OpenParenToken:
		return rendered{"(" + text(0), 0}
	case treecalc.CloseParenToken:
		return rendered{"(" + text(0) + ")", 0}
	}
	return rendered{t.Text, 0}
}

// String renders an expression tree in infix notation, with single spaces
// around operators. Missing operands are rendered as '?', an unclosed group
// lacks its closing parenthesis. Where the tree groups differently from a
// left-to-right reading, parentheses are added: the tree for "8/2/2" is
// rendered as "8 / (2 / 2)".
func String(tree *Tree) string {
	r, _ := Walk(tree, infix{}, Continue).(rendered)
	return r.text
}

// Lexemes returns the texts of all terms of a tree in post-order. A closed
// group appears as ")" after its contents.
func Lexemes(tree *Tree) []string {
	var lexemes []string
	seq := arena.PostOrder(tree)
	for i, ok := seq.Next(); ok; i, ok = seq.Next() {
		n, _ := tree.Get(i)
		lexemes = append(lexemes, n.Payload.Text)
	}
	return lexemes
}
