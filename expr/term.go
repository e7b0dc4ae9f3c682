package expr

import (
	"fmt"

	"github.com/npillmayer/treecalc"
	"github.com/npillmayer/treecalc/arena"
)

// Term is the payload of an expression tree node: the token category and the
// literal text of the token. Parenthesis terms are re-tagged from open to
// closed when the matching closing token is found.
type Term struct {
	Kind treecalc.TokType
	Text string
	Span treecalc.Span
}

func termFrom(token treecalc.Token) Term {
	return Term{
		Kind: token.TokType(),
		Text: token.Lexeme(),
		Span: token.Span(),
	}
}

// IsParen is true for open and closed parenthesis terms.
func (t Term) IsParen() bool {
	return t.Kind == treecalc.OpenParenToken || t.Kind == treecalc.CloseParenToken
}

func (t Term) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Tree is an expression tree.
type Tree = arena.Tree[Term]
