package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/treecalc/calc"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("T.CALC"), where users may enter arithmetic
// expressions. T.CALC will evaluate each expression and print out the result.
// Previous calculations are kept in a history and may be recalled.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	prec := flag.Uint("prec", 64, "Mantissa precision of numbers in bits")
	histlen := flag.Int("history", calc.DefaultHistoryLimit, "Maximum number of history entries")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	setTraceLevel(tracing.LevelInfo)
	pterm.Info.Println("Welcome to TCALC") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:          "tcalc> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		calc: calc.New(calc.WithPrecision(*prec), calc.WithHistoryLimit(*histlen)),
		repl: repl,
	}
	intp.edit = intp.prefill
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	if input != "" {
		if r := intp.commit(input); r.Err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  =",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	calc *calc.Calculator
	repl *readline.Instance
	edit func(string) // pre-fills the next input line
}

// prefill puts text into the line editor, as if the user had typed it.
func (intp *Intp) prefill(text string) {
	if _, err := intp.repl.WriteStdin([]byte(text)); err != nil {
		tracer().Errorf("cannot pre-fill input: %v", err)
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if r := intp.commit(line); r.Err != nil {
			tracer().Errorf("Error line %d: %v", lineno, r.Err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or evaluates an expression, given on a line by itself.
// It returns true if the user asked to quit.
//
func (intp *Intp) Eval(line string) bool {
	cmd, arg := splitCommand(line)
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		pterm.Println(usage)
	case ":tree":
		if err := printTree(arg); err != nil {
			pterm.Error.Println(err.Error())
		}
	case ":hist":
		n, err := histCount(arg)
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		printHistory(intp.calc.History().Last(n))
	case "!":
		n, result, err := parseRecall(arg)
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		recalled, ok := intp.calc.Recall(n, result)
		if !ok {
			pterm.Error.Printf("Nothing to recall for calculation #%d\n", n)
			break
		}
		intp.edit(recalled) // user may change it before committing
	default:
		if strings.HasPrefix(cmd, ":") {
			pterm.Error.Printf("Unknown command %s, try :help\n", cmd)
			break
		}
		intp.commit(line)
	}
	return false
}

func (intp *Intp) commit(input string) calc.Result {
	r := intp.calc.Commit(input)
	printResult(r)
	return r
}

func printResult(r calc.Result) {
	if r.Err != nil {
		pterm.Error.Println(r.Err.Error())
		return
	}
	pterm.Info.Println(calc.Format(r.Value))
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"treecalc.tree", "treecalc.scanner", "treecalc.eval"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
