package expr

import (
	"github.com/npillmayer/treecalc"
	"github.com/npillmayer/treecalc/arena"
	"github.com/npillmayer/treecalc/scanner"
)

// Build constructs an expression tree from a sequence of tokens. Tokens are
// processed strictly left to right, in a single pass.
//
// On a grammar violation Build returns a *BuildError and no tree.
// Build does not check the tree after the last token, see package doc.
func Build(tokens []treecalc.Token) (*Tree, error) {
	b := &builder{
		tree:   arena.New[Term](),
		cursor: arena.Nil,
	}
	for _, token := range tokens {
		if err := b.push(token); err != nil {
			tracer().Infof("build: %v", err)
			return nil, err
		}
	}
	if root, ok := b.tree.Root(); ok {
		tracer().Debugf("build: %d tokens, root is #%d", len(tokens), root)
	}
	return b.tree, nil
}

// Parse tokenizes an input string and builds its expression tree.
func Parse(input string, opts ...scanner.Option) (*Tree, error) {
	return Build(scanner.Tokenize(input, opts...))
}

// builder holds the state of a single build: the tree under construction and
// the cursor, i.e. the node attached most recently.
type builder struct {
	tree   *Tree
	cursor arena.Index
}

func (b *builder) push(token treecalc.Token) error {
	switch token.TokType() {
	case treecalc.ValueToken:
		return b.value(token)
	case treecalc.OperatorToken:
		return b.operator(token)
	case treecalc.OpenParenToken:
		return b.openParen(token)
	case treecalc.CloseParenToken:
		return b.closeParen(token)
	}
	return b.fail(ErrInternal, token, nil)
}

func (b *builder) fail(err error, token treecalc.Token, cause error) error {
	return &BuildError{
		Err:   err,
		Token: token,
		Index: b.cursor,
		Cause: cause,
	}
}

// value places a number.
func (b *builder) value(token treecalc.Token) error {
	cur, ok := b.tree.Get(b.cursor)
	if !ok {
		return b.plant(token)
	}
	switch cur.Payload.Kind {
	case treecalc.ValueToken:
		return b.fail(ErrConsecutiveValues, token, nil)
	case treecalc.CloseParenToken:
		return b.fail(ErrValueAfterCloseParen, token, nil)
	case treecalc.OperatorToken:
		if !cur.HasLeft() {
			return b.fail(ErrInternal, token, nil)
		}
		return b.attach(token, arena.Right)
	case treecalc.OpenParenToken:
		return b.attach(token, arena.Left)
	}
	return b.fail(ErrInternal, token, nil)
}

// openParen starts a group.
func (b *builder) openParen(token treecalc.Token) error {
	cur, ok := b.tree.Get(b.cursor)
	if !ok {
		return b.plant(token)
	}
	switch cur.Payload.Kind {
	case treecalc.ValueToken:
		return b.fail(ErrOpenParenAfterValue, token, nil)
	case treecalc.CloseParenToken:
		return b.fail(ErrOpenParenAfterCloseParen, token, nil)
	case treecalc.OperatorToken:
		if !cur.HasLeft() {
			return b.fail(ErrInternal, token, nil)
		}
		return b.attach(token, arena.Right)
	case treecalc.OpenParenToken:
		return b.attach(token, arena.Left)
	}
	return b.fail(ErrInternal, token, nil)
}

// operator places a binary operator above the operand which precedes it.
// For + and - this is the top of the current group, for * and / it is the
// cursor itself.
func (b *builder) operator(token treecalc.Token) error {
	cur, ok := b.tree.Get(b.cursor)
	if !ok {
		return b.fail(ErrLeadingOperator, token, nil)
	}
	switch cur.Payload.Kind {
	case treecalc.OperatorToken:
		return b.fail(ErrConsecutiveOperators, token, nil)
	case treecalc.OpenParenToken:
		return b.fail(ErrOperatorAfterOpenParen, token, nil)
	}
	at := b.cursor
	if !treecalc.BindsTight(token.Lexeme()) {
		var err error
		if at, err = b.groupTop(b.cursor); err != nil {
			return b.fail(err, token, nil)
		}
	}
	op := b.tree.Add(termFrom(token))
	var err error
	if b.tree.IsRoot(at) {
		err = b.tree.ReplaceRootWith(op, arena.Left)
	} else {
		err = b.tree.InsertAbove(at, op, arena.Left)
	}
	if err != nil {
		return b.fail(ErrInternal, token, err)
	}
	tracer().Debugf("build: operator %q inserted above #%d", token.Lexeme(), at)
	b.cursor = op
	return nil
}

// groupTop climbs from node i to the topmost node of the enclosing group,
// i.e. to the root or to the child of an opening parenthesis. Operators
// passed on the way must be complete.
func (b *builder) groupTop(i arena.Index) (arena.Index, error) {
	for steps := 0; !b.tree.IsRoot(i); steps++ {
		p, ok := b.tree.ParentOf(i)
		if !ok || steps > b.tree.Len() {
			return arena.Nil, ErrInternal
		}
		parent, _ := b.tree.Get(p)
		switch parent.Payload.Kind {
		case treecalc.OpenParenToken:
			return i, nil
		case treecalc.OperatorToken:
			if parent.ChildCount() < 2 {
				return arena.Nil, ErrMalformedSubexpression
			}
		}
		i = p
	}
	return i, nil
}

// closeParen finds the innermost open group and closes it. No node is
// created; the opening parenthesis node is re-tagged.
func (b *builder) closeParen(token treecalc.Token) error {
	i := b.cursor
	for steps := 0; steps <= b.tree.Len(); steps++ {
		n, ok := b.tree.Get(i)
		if !ok {
			return b.fail(ErrUnmatchedCloseParen, token, nil)
		}
		switch n.Payload.Kind {
		case treecalc.OpenParenToken:
			n.Payload.Kind = treecalc.CloseParenToken
			n.Payload.Text = token.Lexeme()
			n.Payload.Span = n.Payload.Span.Extend(token.Span())
			b.cursor = i
			return nil
		case treecalc.OperatorToken:
			if n.ChildCount() < 2 {
				return b.fail(ErrMalformedSubexpression, token, nil)
			}
		}
		if i, ok = b.tree.ParentOf(i); !ok {
			return b.fail(ErrUnmatchedCloseParen, token, nil)
		}
	}
	return b.fail(ErrInternal, token, nil)
}

// plant makes the first node the root of the tree.
func (b *builder) plant(token treecalc.Token) error {
	i := b.tree.Add(termFrom(token))
	if err := b.tree.SetRoot(i); err != nil {
		return b.fail(ErrInternal, token, err)
	}
	b.cursor = i
	return nil
}

// attach links a new node below the cursor and moves the cursor to it.
func (b *builder) attach(token treecalc.Token, side arena.Side) error {
	cur, _ := b.tree.Get(b.cursor)
	if _, occupied := cur.Child(side); occupied {
		return b.fail(ErrInternal, token, nil)
	}
	i := b.tree.Add(termFrom(token))
	if err := b.tree.SetChild(b.cursor, i, side); err != nil {
		return b.fail(ErrInternal, token, err)
	}
	b.cursor = i
	return nil
}
