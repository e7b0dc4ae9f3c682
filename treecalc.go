package treecalc

import "fmt"

// --- Tokens for arithmetic expressions -------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories. EOF is used by scanners to signal end of input and is never
// part of a token sequence handed to a tree builder.
const (
	EOF TokType = iota - 1
	_
	ValueToken      // numeric literal, possibly with folded unary minus
	OperatorToken   // one of + - * /
	OpenParenToken  // (
	CloseParenToken // )
)

var tokTypeNames = map[TokType]string{
	EOF:             "EOF",
	ValueToken:      "Value",
	OperatorToken:   "Operator",
	OpenParenToken:  "OpenParen",
	CloseParenToken: "CloseParen",
}

func (tt TokType) String() string {
	if s, ok := tokTypeNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokType(%d)", int(tt))
}

// Tokens represent input tokens. They are produced by a scanner and consumed
// left to right by the expression tree builder.
//
// An example would be a token for a negative number:
//
//    TokType = ValueToken  // category of this token
//    Lexeme  = "-3.1416"   // lexeme as it appeared in the input stream (minus spaces)
//    Span    = 4…12        // byte positions in the original input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// IsOperator is a predicate for operator characters.
func IsOperator(r rune) bool {
	return r == '+' || r == '-' || r == '*' || r == '/'
}

// BindsTight returns true for operators * and /, which bind tighter than + and -.
func BindsTight(op string) bool {
	return op == "*" || op == "/"
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
