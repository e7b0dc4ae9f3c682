package scanner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/treecalc"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// The tokens representing literal one-char lexemes
var literals = []string{"+", "-", "*", "/", "(", ")"}

// tokenIds maps token names to their token types.
var tokenIds = map[string]int{
	"NUM": int(treecalc.ValueToken),
	"+":   int(treecalc.OperatorToken),
	"-":   int(treecalc.OperatorToken),
	"*":   int(treecalc.OperatorToken),
	"/":   int(treecalc.OperatorToken),
	"(":   int(treecalc.OpenParenToken),
	")":   int(treecalc.CloseParenToken),
}

var (
	lexerOnce sync.Once // monitors one-time DFA compilation
	lexer     *LMAdapter
	lexerErr  error
)

// Lexer returns the lexmachine adapter for arithmetic expressions. The DFA is
// compiled on first use.
func Lexer() (*LMAdapter, error) {
	lexerOnce.Do(func() {
		patterns := func(lx *lexmachine.Lexer) {
			lx.Add([]byte(`([0-9]|\.)+`), MakeToken("NUM", tokenIds["NUM"]))
			lx.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		lexer, lexerErr = NewLMAdapter(patterns, literals, tokenIds)
	})
	return lexer, lexerErr
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// for setting up patterns, a list of literals ('+', '(', …) and a map for
// translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) *LMScanner {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		logError(err)
		return &LMScanner{Error: logError}
	}
	return &LMScanner{scanner: s, Error: logError}
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	pos     uint64
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
// Unconsumed input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() treecalc.Token {
	if lms.scanner == nil {
		return eofToken(lms.pos)
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			lms.Error(err)
			return eofToken(lms.pos)
		}
		lms.Error(fmt.Errorf("unconsumed input: %w", err))
		lms.scanner.TC = ui.FailTC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return eofToken(lms.pos)
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	lms.pos = uint64(token.TC + len(token.Lexeme))
	return MakeDefaultToken(
		treecalc.TokType(token.Type),
		string(token.Lexeme),
		treecalc.Span{uint64(token.TC), lms.pos},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
