package scanner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/treecalc"
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() treecalc.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by both tokenizers.
type DefaultToken struct {
	kind   treecalc.TokType
	lexeme string
	span   treecalc.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ treecalc.TokType, lexeme string, span treecalc.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() treecalc.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() treecalc.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s(%q)", t.kind, t.lexeme)
}

func eofToken(pos uint64) DefaultToken {
	return MakeDefaultToken(treecalc.EOF, "", treecalc.Span{pos, pos})
}

// tokenTypeFor categorizes a single-rune lexeme.
func tokenTypeFor(r rune) treecalc.TokType {
	switch {
	case treecalc.IsOperator(r):
		return treecalc.OperatorToken
	case r == '(':
		return treecalc.OpenParenToken
	case r == ')':
		return treecalc.CloseParenToken
	case isNumeric(r):
		return treecalc.ValueToken
	}
	return treecalc.EOF
}

func isNumeric(r rune) bool {
	return r >= '0' && r <= '9' || r == '.'
}

// --- Tokenizing ------------------------------------------------------------

// Option configures Tokenize.
type Option func(c *config)

type config struct {
	errorHandler  func(error)
	useCategories bool
}

// ErrorHandler sets a handler for illegal input characters. They are reported
// and skipped. The default handler logs them.
func ErrorHandler(h func(error)) Option {
	return func(c *config) {
		c.errorHandler = h
	}
}

// UseCategories switches between the lexmachine tokenizer (false, default) and
// the rune category tokenizer (true).
func UseCategories(b bool) Option {
	return func(c *config) {
		c.useCategories = b
	}
}

// Tokenize splits an expression into tokens. Spans of the tokens refer to
// byte positions in input. White space of any kind separates nothing: it is
// removed before scanning, so "1 2" is the number 12. An empty or all-space
// input results in an empty token sequence.
func Tokenize(input string, opts ...Option) []treecalc.Token {
	c := &config{errorHandler: logError}
	for _, opt := range opts {
		opt(c)
	}
	src := clean(input, c.errorHandler)
	if src.text == "" {
		return nil
	}
	var tz Tokenizer
	if !c.useCategories {
		if lm, err := Lexer(); err == nil {
			tz = lm.Scanner(src.text)
		} else {
			tracer().Errorf("lexmachine not available, falling back to category scanner: %v", err)
		}
	}
	if tz == nil {
		tz = NewCatScanner(strings.NewReader(src.text))
	}
	tz.SetErrorHandler(c.errorHandler)
	var raw []treecalc.Token
	for token := tz.NextToken(); token.TokType() != treecalc.EOF; token = tz.NextToken() {
		raw = append(raw, token)
	}
	tokens := foldUnaryMinus(raw)
	for i, token := range tokens {
		tokens[i] = MakeDefaultToken(token.TokType(), token.Lexeme(), src.mapSpan(token.Span()))
	}
	tracer().Debugf("tokenized %q into %d tokens", input, len(tokens))
	return tokens
}

// Fragments returns the lexemes of the tokens of input.
func Fragments(input string, opts ...Option) []string {
	tokens := Tokenize(input, opts...)
	fragments := make([]string, len(tokens))
	for i, token := range tokens {
		fragments[i] = token.Lexeme()
	}
	return fragments
}

// foldUnaryMinus merges a minus with a following value, if the minus is in
// unary position. A unary minus without a value following it becomes a value
// token of its own.
func foldUnaryMinus(raw []treecalc.Token) []treecalc.Token {
	tokens := make([]treecalc.Token, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		token := raw[i]
		if token.TokType() != treecalc.OperatorToken || token.Lexeme() != "-" || !isUnaryPosition(tokens) {
			tokens = append(tokens, token)
			continue
		}
		lexeme, span := token.Lexeme(), token.Span()
		if i+1 < len(raw) && raw[i+1].TokType() == treecalc.ValueToken {
			i++
			lexeme += raw[i].Lexeme()
			span = span.Extend(raw[i].Span())
		}
		tokens = append(tokens, MakeDefaultToken(treecalc.ValueToken, lexeme, span))
	}
	return tokens
}

func isUnaryPosition(tokens []treecalc.Token) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1].TokType()
	return last == treecalc.OperatorToken || last == treecalc.OpenParenToken
}

// --- Input cleaning --------------------------------------------------------

// source is an input string with white space and illegal characters removed.
// offsets[i] is the position in the original input of text[i].
type source struct {
	text    string
	offsets []uint64
}

func clean(input string, errorHandler func(error)) source {
	var b strings.Builder
	src := source{}
	for pos, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		if tokenTypeFor(r) == treecalc.EOF {
			errorHandler(fmt.Errorf("illegal character %q at position %d", r, pos))
			continue
		}
		b.WriteRune(r) // all legal runes are single bytes
		src.offsets = append(src.offsets, uint64(pos))
	}
	src.text = b.String()
	return src
}

func (src source) mapSpan(span treecalc.Span) treecalc.Span {
	if len(src.offsets) == 0 || span.Len() == 0 {
		return span
	}
	from, to := span.From(), span.To()-1
	if int(to) >= len(src.offsets) {
		return span
	}
	return treecalc.Span{src.offsets[from], src.offsets[to] + 1}
}
