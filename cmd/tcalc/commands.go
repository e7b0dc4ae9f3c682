package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/treecalc"
	"github.com/npillmayer/treecalc/calc"
	"github.com/npillmayer/treecalc/expr"
	"github.com/pterm/pterm"
)

const usage = `Enter an arithmetic expression, or one of
    :tree EXPR    display the expression tree of EXPR
    :hist [n]     list the n most recent calculations (default 10)
    !n            edit the input of the n-th previous calculation
    !n=           edit the result of the n-th previous calculation
    :help         show this list
    :quit         leave (or <ctrl>D)`

const defaultHistCount = 10

// splitCommand separates a command from its argument. Lines which are not
// commands have an empty command and the whole line as argument.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "!") {
		return "!", strings.TrimSpace(line[1:])
	}
	if !strings.HasPrefix(line, ":") {
		return "", line
	}
	if i := strings.IndexAny(line, " \t"); i > 0 {
		return line[:i], strings.TrimSpace(line[i:])
	}
	return line, ""
}

// parseRecall interprets the argument of a recall command: "n" or "n=".
// An empty argument recalls the most recent calculation.
func parseRecall(arg string) (n int, result bool, err error) {
	if strings.HasSuffix(arg, "=") {
		result = true
		arg = strings.TrimSpace(strings.TrimSuffix(arg, "="))
	}
	if arg == "" {
		return 1, result, nil
	}
	if n, err = strconv.Atoi(arg); err != nil || n < 1 {
		return 0, false, fmt.Errorf("cannot recall %q: expected a positive number", arg)
	}
	return n, result, nil
}

func histCount(arg string) (int, error) {
	if arg == "" {
		return defaultHistCount, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid history count %q", arg)
	}
	return n, nil
}

// --- Output ----------------------------------------------------------------

func printTree(input string) error {
	tree, err := expr.Parse(input)
	if err != nil {
		return err
	}
	ll := leveledTree(tree)
	if len(ll) == 0 {
		pterm.Println("empty tree")
		return nil
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.Println(expr.String(tree))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func printHistory(results []calc.Result) {
	if len(results) == 0 {
		pterm.Println("history is empty")
		return
	}
	data := pterm.TableData{{"#", "Input", "Result"}}
	for i, r := range results {
		back := len(results) - i
		data = append(data, []string{strconv.Itoa(back), r.Input, r.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// leveler collects the terms of an expression tree as a leveled list, the
// input format of pterm trees.
type leveler struct {
	ll pterm.LeveledList
}

func (l *leveler) EnterTerm(t expr.Term, ctxt expr.TermCtxt) bool {
	l.ll = append(l.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  termLabel(t),
	})
	return true
}

func (l *leveler) ExitTerm(expr.Term, [2]interface{}, expr.TermCtxt) interface{} {
	return nil
}

func leveledTree(tree *expr.Tree) pterm.LeveledList {
	l := &leveler{}
	expr.Walk(tree, l, expr.Continue)
	return l.ll
}

func termLabel(t expr.Term) string {
	switch t.Kind {
	case treecalc.OpenParenToken:
		return "( …"
	case treecalc.CloseParenToken:
		return "( )"
	}
	return t.Text
}
