package eval

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/treecalc"
	"github.com/npillmayer/treecalc/arena"
	"github.com/npillmayer/treecalc/expr"
)

// Errors of evaluation. Evaluate wraps them in an *Error.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidLiteral = errors.New("invalid number literal")
	ErrIncomplete     = errors.New("incomplete expression")
)

// Error is the error type of Evaluate. Term is the term at which evaluation
// failed; it is the zero Term for empty trees.
type Error struct {
	Err  error
	Term expr.Term
}

func (e *Error) Error() string {
	if e.Term.Text == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v at %d (%q)", e.Err, e.Term.Span.From(), e.Term.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// DefaultPrec is the mantissa precision of results, if not set with option Prec.
const DefaultPrec uint = 64

// Option configures an evaluation.
type Option func(*config)

type config struct {
	prec uint
}

// Prec sets the mantissa precision in bits for all numbers of an evaluation.
// Values of 0 select DefaultPrec.
func Prec(prec uint) Option {
	return func(c *config) {
		if prec == 0 {
			prec = DefaultPrec
		}
		c.prec = prec
	}
}

// Evaluate calculates the value of an expression tree.
//
// The tree is processed in post-order, leaves first. Evaluation fails for
// literals which are not numbers, for division by zero, and for trees with
// missing operands, such as the ones built from "1+" or "()".
// The tree is not modified.
func Evaluate(tree *expr.Tree, opts ...Option) (*big.Float, error) {
	conf := config{prec: DefaultPrec}
	for _, opt := range opts {
		opt(&conf)
	}
	stack := arraystack.New()
	seq := arena.PostOrder(tree)
	for i, ok := seq.Next(); ok; i, ok = seq.Next() {
		node, _ := tree.Get(i)
		term := node.Payload
		switch term.Kind {
		case treecalc.ValueToken:
			f, _, err := big.ParseFloat(term.Text, 10, conf.prec, big.ToNearestEven)
			if err != nil {
				tracer().Debugf("eval: cannot parse %q: %v", term.Text, err)
				return nil, &Error{Err: ErrInvalidLiteral, Term: term}
			}
			stack.Push(f)
		case treecalc.OperatorToken:
			if node.ChildCount() < 2 || stack.Size() < 2 {
				return nil, &Error{Err: ErrIncomplete, Term: term}
			}
			r, _ := stack.Pop()
			l, _ := stack.Pop()
			z, err := apply(term.Text, l.(*big.Float), r.(*big.Float), conf.prec)
			if err != nil {
				return nil, &Error{Err: err, Term: term}
			}
			stack.Push(z)
		case treecalc.OpenParenToken, treecalc.CloseParenToken:
			if !node.HasLeft() { // the group's value is already on the stack
				return nil, &Error{Err: ErrIncomplete, Term: term}
			}
		default:
			return nil, &Error{Err: ErrIncomplete, Term: term}
		}
	}
	if stack.Size() != 1 {
		return nil, &Error{Err: ErrIncomplete}
	}
	v, _ := stack.Pop()
	tracer().Debugf("eval: result = %s", v.(*big.Float).Text('g', 20))
	return v.(*big.Float), nil
}

func apply(op string, x, y *big.Float, prec uint) (*big.Float, error) {
	z := new(big.Float).SetPrec(prec)
	switch op {
	case "+":
		return z.Add(x, y), nil
	case "-":
		return z.Sub(x, y), nil
	case "*":
		return z.Mul(x, y), nil
	case "/":
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return z.Quo(x, y), nil
	}
	return nil, fmt.Errorf("%w: unknown operator %q", ErrIncomplete, op)
}
