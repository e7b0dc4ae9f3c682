package expr

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/treecalc/arena"
)

// shape describes a tree in post-order. Together with the child flags the
// sequence determines the tree uniquely.
type shape struct {
	Terms []shapeTerm `hash:"name:terms"`
}

type shapeTerm struct {
	Kind  int    `hash:"name:kind"`
	Text  string `hash:"name:text"`
	Left  bool   `hash:"name:l"`
	Right bool   `hash:"name:r"`
}

// Fingerprint calculates a hash of the structure and the terms of a tree.
// Token positions do not contribute, therefore inputs which differ in spacing
// only result in identical fingerprints.
func Fingerprint(tree *Tree) (string, error) {
	var sh shape
	seq := arena.PostOrder(tree)
	for i, ok := seq.Next(); ok; i, ok = seq.Next() {
		n, _ := tree.Get(i)
		sh.Terms = append(sh.Terms, shapeTerm{
			Kind:  int(n.Payload.Kind),
			Text:  n.Payload.Text,
			Left:  n.HasLeft(),
			Right: n.HasRight(),
		})
	}
	h, err := structhash.Hash(sh, 1)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint expression: %w", err)
	}
	return h, nil
}
