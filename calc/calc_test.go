package calc

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treecalc/eval"
	"github.com/npillmayer/treecalc/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.eval")
	defer teardown()
	//
	c := New()
	for input, expected := range map[string]string{
		"1 + 2":           "3",
		"0.1 + 0.2":       "0.3",
		"(1+2) + (3+4)*5": "38",
		"1 / 3":           "0.333333333333",
		"2 / 3":           "0.666666666667",
		"-5 * 2":          "-10",
		"1.5 * 2":         "3",
		"8/2/2":           "8",
		"0 * -1":          "0",
	} {
		r := c.Commit(input)
		require.NoError(t, r.Err, input)
		assert.NotNil(t, r.Tree)
		assert.Equal(t, expected, r.String(), input)
	}
	assert.Equal(t, 9, c.History().Len())
}

func TestCommitErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.eval")
	defer teardown()
	//
	c := New()
	r := c.Commit("1 ++ 2")
	assert.True(t, errors.Is(r.Err, expr.ErrConsecutiveOperators))
	assert.Nil(t, r.Tree)
	assert.Nil(t, r.Value)
	r = c.Commit("4 / (2-2)")
	assert.True(t, errors.Is(r.Err, eval.ErrDivisionByZero))
	assert.NotNil(t, r.Tree)
	r = c.Commit("1 +")
	assert.True(t, errors.Is(r.Err, eval.ErrIncomplete))
	assert.Equal(t, 3, c.History().Len(), "failed calculations are recorded too")
	r = c.Commit("   ")
	assert.ErrorIs(t, r.Err, ErrEmpty)
	assert.Equal(t, 3, c.History().Len(), "blank input is not recorded")
}

func TestCachedResultsAreCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.eval")
	defer teardown()
	//
	c := New()
	r1 := c.Commit("6*7")
	r1.Value.SetInt64(0)
	r2 := c.Commit(" 6 * 7 ")
	require.NoError(t, r2.Err)
	assert.Equal(t, "42", Format(r2.Value))
	r3 := c.Commit("1/0")
	r4 := c.Commit("1 / 0")
	assert.ErrorIs(t, r3.Err, eval.ErrDivisionByZero)
	assert.ErrorIs(t, r4.Err, eval.ErrDivisionByZero)
}

func TestRecall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.eval")
	defer teardown()
	//
	c := New()
	c.Commit("1 + 1")
	c.Commit("10 / 4")
	c.Commit("2 ** 3")
	s, ok := c.Recall(2, false)
	require.True(t, ok)
	assert.Equal(t, "10 / 4", s)
	s, ok = c.Recall(2, true)
	require.True(t, ok)
	assert.Equal(t, "2.5", s)
	_, ok = c.Recall(1, true)
	assert.False(t, ok, "a failed calculation has no result")
	s, ok = c.Recall(1, false)
	require.True(t, ok)
	assert.Equal(t, "2 ** 3", s)
	assert.Equal(t, 3, c.History().Len(), "recalling must not add to the history")
	_, ok = c.Recall(4, false)
	assert.False(t, ok)
	_, ok = c.Recall(0, false)
	assert.False(t, ok)
}

func TestHistoryLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.eval")
	defer teardown()
	//
	c := New(WithHistoryLimit(3))
	for i := 1; i <= 5; i++ {
		c.Commit(fmt.Sprintf("%d * 2", i))
	}
	h := c.History()
	assert.Equal(t, 3, h.Len())
	last := h.Last(10)
	require.Len(t, last, 3)
	assert.Equal(t, "3 * 2", last[0].Input)
	assert.Equal(t, "5 * 2", last[2].Input)
	last = h.Last(2)
	require.Len(t, last, 2)
	assert.Equal(t, "4 * 2", last[0].Input)
	assert.Nil(t, h.Last(0))
	assert.Equal(t, DefaultHistoryLimit, New().History().Limit())
}

func TestPrecisionOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.eval")
	defer teardown()
	//
	r := New(WithPrecision(256)).Commit("1 / 7")
	require.NoError(t, r.Err)
	assert.Equal(t, uint(256), r.Value.Prec())
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treecalc.eval")
	defer teardown()
	//
	for _, test := range []struct {
		value    *big.Float
		expected string
	}{
		{big.NewFloat(0), "0"},
		{big.NewFloat(42), "42"},
		{big.NewFloat(-3), "-3"},
		{big.NewFloat(2.5), "2.5"},
		{big.NewFloat(-0.125), "-0.125"},
		{big.NewFloat(1e-15), "0"},
		{big.NewFloat(-1e-15), "0"},
		{big.NewFloat(0.9999999999999), "1"},
		{big.NewFloat(1e20), "100000000000000000000"},
		{new(big.Float).Neg(big.NewFloat(0)), "0"},
		{nil, ""},
	} {
		assert.Equal(t, test.expected, Format(test.value))
	}
}
