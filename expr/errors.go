package expr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/treecalc"
	"github.com/npillmayer/treecalc/arena"
)

// Errors of the tree builder. Every error returned by Build is a *BuildError
// wrapping one of these.
var (
	ErrConsecutiveValues        = errors.New("a value cannot follow another value")
	ErrConsecutiveOperators     = errors.New("an operator cannot follow another operator")
	ErrLeadingOperator          = errors.New("an expression cannot start with an operator")
	ErrOperatorAfterOpenParen   = errors.New("an operator cannot follow an opening parenthesis")
	ErrValueAfterCloseParen     = errors.New("a value cannot follow a closing parenthesis")
	ErrOpenParenAfterValue      = errors.New("an opening parenthesis cannot follow a value")
	ErrOpenParenAfterCloseParen = errors.New("an opening parenthesis cannot follow a closing parenthesis")
	ErrMalformedSubexpression   = errors.New("sub-expression is missing an operand")
	ErrUnmatchedCloseParen      = errors.New("closing parenthesis without opening parenthesis")
	ErrInternal                 = errors.New("expression tree is in an inconsistent state")
)

// BuildError is the error type of Build. It names the offending token and the
// node the builder was positioned at.
type BuildError struct {
	Err   error          // one of the Err... sentinels
	Token treecalc.Token // token which could not be placed
	Index arena.Index    // cursor at the time of failure, or arena.Nil
	Cause error          // failing tree operation, for ErrInternal
}

func (e *BuildError) Error() string {
	msg := fmt.Sprintf("syntax error at %d (%q): %v", e.Token.Span().From(), e.Token.Lexeme(), e.Err)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap makes the sentinel and the cause available to errors.Is and errors.As.
func (e *BuildError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
