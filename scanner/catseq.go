package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/treecalc"
)

// --- Category codes --------------------------------------------------------

// CatCode is a category code for runes.
type CatCode int16

// IllegalCatCode is the category of runes not allowed in the input.
const IllegalCatCode CatCode = 0

// Categories of runes within arithmetic expressions.
const (
	NumberCat CatCode = iota + 1
	OperatorCat
	OpenParenCat
	CloseParenCat
	SpaceCat
)

// RuneCategorizer assigns a category to a rune. Loners are runes which are not
// allowed to form sequences, even with runes of the same category.
type RuneCategorizer interface {
	Cat(r rune) (cat CatCode, isLoner bool)
}

// CatSeq is a run of runes of the same category.
type CatSeq struct {
	Cat    CatCode // catcode of all runes in this sequence
	Length int     // length of sequence in terms of runes
}

type arithCategorizer struct{}

func (arithCategorizer) Cat(r rune) (CatCode, bool) {
	switch {
	case isNumeric(r):
		return NumberCat, false
	case treecalc.IsOperator(r):
		return OperatorCat, true
	case r == '(':
		return OpenParenCat, true
	case r == ')':
		return CloseParenCat, true
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return SpaceCat, false
	}
	return IllegalCatCode, false
}

// ArithmeticCategories is the rune categorizer for arithmetic expressions.
var ArithmeticCategories RuneCategorizer = arithCategorizer{}

// --- Category sequence reader ----------------------------------------------

// CatSeqReader reads runs of runes of the same category.
type CatSeqReader struct {
	isEof      bool
	next       rune   // lookahead, 0 if none
	start, end uint64 // as bytes index
	reader     io.RuneReader
	writer     bytes.Buffer
}

// NewCatSeqReader creates a sequence reader for an input.
func NewCatSeqReader(r io.RuneReader) *CatSeqReader {
	return &CatSeqReader{
		reader: r,
	}
}

// Next reads the next sequence of runes of equal category. It returns io.EOF
// at the end of input.
func (rs *CatSeqReader) Next(rc RuneCategorizer) (csq CatSeq, err error) {
	var r rune
	if r, err = rs.lookahead(); err != nil {
		if err != io.EOF {
			err = fmt.Errorf("scanner cannot read sequence (%w)", err)
		}
		return csq, err
	}
	var isLoner bool
	csq.Cat, isLoner = rc.Cat(r)
	rs.match(r)
	csq.Length = 1
	if isLoner { // rune category is not allowed to form sequences
		return csq, nil
	}
	for {
		if r, err = rs.lookahead(); err != nil {
			if err == io.EOF { // sequence ends with input
				err = nil
			}
			return
		}
		if cc, _ := rc.Cat(r); cc != csq.Cat {
			return
		}
		rs.match(r)
		csq.Length++
	}
}

// OutputString returns the runes read since the last reset.
func (rs *CatSeqReader) OutputString() string {
	return rs.writer.String()
}

// ResetOutput clears the output buffer.
func (rs *CatSeqReader) ResetOutput() {
	rs.writer.Reset()
	rs.start = rs.end
}

// Span returns the span of the runes read since the last reset.
func (rs *CatSeqReader) Span() treecalc.Span {
	return treecalc.Span{rs.start, rs.end}
}

func (rs *CatSeqReader) lookahead() (r rune, err error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.next != 0 {
		return rs.next, nil
	}
	r, _, err = rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return 0, err
	}
	rs.next = r
	return r, nil
}

func (rs *CatSeqReader) match(r rune) {
	rs.writer.WriteRune(r)
	rs.end += uint64(utf8.RuneLen(r))
	rs.next = 0
}

// --- Category scanner ------------------------------------------------------

// CatScanner is a tokenizer reading sequences of rune categories.
// Spaces are skipped, illegal runes are reported to the error handler.
type CatScanner struct {
	reader *CatSeqReader
	Error  func(error)
}

var _ Tokenizer = (*CatScanner)(nil)

// NewCatScanner creates a category scanner for an input.
func NewCatScanner(input io.Reader) *CatScanner {
	var rr io.RuneReader
	if r, ok := input.(io.RuneReader); ok {
		rr = r
	} else {
		rr = bufio.NewReader(input)
	}
	return &CatScanner{
		reader: NewCatSeqReader(rr),
		Error:  logError,
	}
}

// CatTokenizer creates a category scanner for a string.
func CatTokenizer(input string) *CatScanner {
	return NewCatScanner(strings.NewReader(input))
}

// SetErrorHandler sets an error handler for the scanner.
func (cs *CatScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		cs.Error = logError
		return
	}
	cs.Error = h
}

// NextToken is part of the Tokenizer interface.
func (cs *CatScanner) NextToken() treecalc.Token {
	for {
		cs.reader.ResetOutput()
		csq, err := cs.reader.Next(ArithmeticCategories)
		if err != nil {
			if err != io.EOF {
				cs.Error(err)
			}
			return eofToken(cs.reader.end)
		}
		lexeme, span := cs.reader.OutputString(), cs.reader.Span()
		switch csq.Cat {
		case SpaceCat:
			continue
		case IllegalCatCode:
			cs.Error(fmt.Errorf("illegal input %q at %v", lexeme, span))
			continue
		}
		r, _ := utf8.DecodeRuneInString(lexeme)
		tracer().Debugf("category scanner: %q at %v", lexeme, span)
		return MakeDefaultToken(tokenTypeFor(r), lexeme, span)
	}
}
