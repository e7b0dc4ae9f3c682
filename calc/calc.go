package calc

import (
	"errors"
	"math/big"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/treecalc/eval"
	"github.com/npillmayer/treecalc/expr"
)

// ErrEmpty is reported for inputs without any tokens.
var ErrEmpty = errors.New("nothing to calculate")

// Result is the outcome of committing an expression. Exactly one of Value and
// Err is set. Tree is nil if building the expression tree failed.
type Result struct {
	Input string
	Value *big.Float
	Err   error
	Tree  *expr.Tree
}

// String formats a result for display.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return Format(r.Value)
}

// Calculator evaluates expressions and keeps a history of them.
// A Calculator is not safe for concurrent use.
type Calculator struct {
	prec    uint
	history *History
	cache   *treemap.Map // fingerprint ➞ cached
}

type cached struct {
	value *big.Float
	err   error
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPrecision sets the mantissa precision of calculations in bits.
func WithPrecision(prec uint) Option {
	return func(c *Calculator) {
		c.prec = prec
	}
}

// WithHistoryLimit sets the maximum number of history entries. Older entries
// are dropped. Values < 1 select DefaultHistoryLimit.
func WithHistoryLimit(limit int) Option {
	return func(c *Calculator) {
		c.history = NewHistory(limit)
	}
}

// New creates a calculator with an empty history.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		prec:  eval.DefaultPrec,
		cache: treemap.NewWithStringComparator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.history == nil {
		c.history = NewHistory(DefaultHistoryLimit)
	}
	return c
}

// History returns the history of committed calculations.
func (c *Calculator) History() *History {
	return c.history
}

// Commit calculates the value of an expression and appends it to the history.
// Blank inputs are rejected with ErrEmpty and are not recorded.
func (c *Calculator) Commit(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return Result{Input: input, Err: ErrEmpty}
	}
	r := c.calculate(input)
	c.history.add(r)
	if r.Err != nil {
		tracer().Infof("calc: %q ➞ %v", input, r.Err)
	} else {
		tracer().Infof("calc: %q = %s", input, Format(r.Value))
	}
	return r
}

func (c *Calculator) calculate(input string) Result {
	r := Result{Input: input}
	tree, err := expr.Parse(input)
	if err != nil {
		r.Err = err
		return r
	}
	r.Tree = tree
	if _, ok := tree.Root(); !ok {
		r.Err = ErrEmpty
		return r
	}
	fp, err := expr.Fingerprint(tree)
	if err != nil {
		tracer().Errorf("calc: %v", err)
	} else if v, found := c.cache.Get(fp); found {
		tracer().Debugf("calc: cache hit for %q", input)
		hit := v.(cached)
		r.Value, r.Err = copyOf(hit.value), hit.err
		return r
	}
	r.Value, r.Err = eval.Evaluate(tree, eval.Prec(c.prec))
	if fp != "" {
		if c.cache.Size() >= c.history.Limit() {
			c.cache.Clear()
		}
		c.cache.Put(fp, cached{value: copyOf(r.Value), err: r.Err})
	}
	return r
}

func copyOf(f *big.Float) *big.Float {
	if f == nil {
		return nil
	}
	return new(big.Float).Copy(f)
}

// Recall returns the input of the n-th previous calculation, or its formatted
// result if result is true. n = 1 denotes the most recent calculation.
// Failed calculations have no result to recall.
func (c *Calculator) Recall(n int, result bool) (string, bool) {
	entry, ok := c.history.At(n)
	if !ok {
		return "", false
	}
	if result {
		if entry.Err != nil {
			return "", false
		}
		return Format(entry.Value), true
	}
	return entry.Input, true
}
