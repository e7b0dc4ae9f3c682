package calc

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// DefaultHistoryLimit is the number of calculations a history keeps by default.
const DefaultHistoryLimit = 1000

// History is a list of previous calculations, oldest first.
type History struct {
	entries *arraylist.List
	limit   int
}

// NewHistory creates an empty history holding at most limit entries.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{
		entries: arraylist.New(),
		limit:   limit,
	}
}

func (h *History) add(r Result) {
	h.entries.Add(r)
	for h.entries.Size() > h.limit {
		h.entries.Remove(0)
	}
}

// Len returns the number of entries.
func (h *History) Len() int {
	return h.entries.Size()
}

// Limit returns the maximum number of entries.
func (h *History) Limit() int {
	return h.limit
}

// At returns the n-th previous calculation, counting backwards from the most
// recent one, which is n = 1.
func (h *History) At(n int) (Result, bool) {
	if n < 1 || n > h.entries.Size() {
		return Result{}, false
	}
	r, ok := h.entries.Get(h.entries.Size() - n)
	if !ok {
		return Result{}, false
	}
	return r.(Result), true
}

// Last returns up to n of the most recent calculations, oldest first.
func (h *History) Last(n int) []Result {
	size := h.entries.Size()
	if n > size {
		n = size
	}
	if n <= 0 {
		return nil
	}
	results := make([]Result, 0, n)
	it := h.entries.Iterator()
	for it.Next() {
		if it.Index() >= size-n {
			results = append(results, it.Value().(Result))
		}
	}
	return results
}
