// The redfa command compiles regular expressions into minimal DFAs and tests strings against
// them.
//
// Without flags it prompts for an expression, prints the automaton of every stage and then
// prompts for strings to test:
//
//	$ redfa
//	$ redfa -e '(a|b)*.a.b.b' -match abb -match ab
//
// REDFA_LOG_LEVEL (debug, info, warn, error) sets the level of the log written to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/geange/redfa"
)

const exitToken = "$"

// Version is set at build time via -ldflags.
var Version = "dev"

// inputList collects repeated -match flags.
type inputList []string

func (l *inputList) String() string {
	return strings.Join(*l, ",")
}

func (l *inputList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

func main() {
	expr := flag.String("e", "", "expression to compile; prompts for one when empty")
	quiet := flag.Bool("quiet", false, "do not print the automata of each stage")
	var inputs inputList
	flag.Var(&inputs, "match", "string to test against the expression (repeatable)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("REDFA_LOG_LEVEL", "warn")),
	}))
	slog.SetDefault(logger)
	logger.Debug("starting redfa", "version", Version)

	if *expr == "" {
		printIntroduction()
		for processCase(logger, !*quiet) {
		}
		fmt.Println("Exiting...")
		return
	}

	c, err := compile(*expr, logger, !*quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile %q: %v\n", *expr, err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		testLoop(c)
		return
	}

	rejected := false
	for _, input := range inputs {
		input = emptyIfEpsilon(input)
		accepted := c.Match(input)
		rejected = rejected || !accepted
		printVerdict(input, accepted)
	}
	if rejected {
		os.Exit(2)
	}
}

func printIntroduction() {
	fmt.Println("Available operators:")
	fmt.Println("1. Parenthesis, <(> and <)>")
	fmt.Println("2. Kleene, <*>")
	fmt.Println("3. Alternative, <|>")
	fmt.Println("4. Concatenation, <.>")
	fmt.Println()
	fmt.Println("Some examples:")
	fmt.Println("(a|b)*.a.b.b -- All strings ending with abb")
	fmt.Println("a.(a|b)*.b -- All strings starting with a and ending with b")
	fmt.Println("f.e.d.e.r.i.c.o -- Only the string federico")
	fmt.Println()
	fmt.Println("The alphabet is taken from the expression.")
	fmt.Println("Concatenation is always written explicitly with <.>.")
	fmt.Printf("<%s> can not be part of the alphabet, <%s> stands for the empty string.\n", exitToken, redfa.Epsilon)
	fmt.Println()
}

// processCase prompts for one expression, prints its automata and tests strings against it.
// It returns false once the user asks to exit.
func processCase(logger *slog.Logger, verbose bool) bool {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Regular expression (%s to exit)", exitToken),
	}
	expr, err := prompt.Run()
	if err != nil {
		if !errors.Is(err, promptui.ErrInterrupt) && !errors.Is(err, promptui.ErrEOF) {
			fmt.Fprintf(os.Stderr, "Prompt failed: %v\n", err)
		}
		return false
	}
	if expr == exitToken {
		return false
	}

	c, err := compile(expr, logger, verbose)
	if err != nil {
		fmt.Println(promptui.Styler(promptui.FGRed)(fmt.Sprintf("Couldn't compile %q: %v", expr, err)))
		return true
	}
	testLoop(c)
	return true
}

func compile(expr string, logger *slog.Logger, verbose bool) (*redfa.Compilation, error) {
	c, err := redfa.Compile(expr, redfa.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if !verbose {
		return c, nil
	}

	fmt.Printf("Input: %s\n", c.Expression)
	fmt.Printf("Postfix Expression: %s\n", c.Postfix)
	stages := []struct {
		title string
		table interface{ String() string }
	}{
		{"Resulting NFA from Thompson's Construction:", c.NFA},
		{"Resulting DFA from Subset Construction:", c.DFA},
		{"Resulting Minimal DFA from Hopcroft's Algorithm:", c.Minimal},
	}
	for _, stage := range stages {
		fmt.Println(stage.title)
		fmt.Println(stage.table.String())
	}
	return c, nil
}

// testLoop prompts for strings until the exit token.
func testLoop(c *redfa.Compilation) {
	for {
		prompt := promptui.Prompt{
			Label: fmt.Sprintf("Input string (%s to exit, %s to test the empty string)", exitToken, redfa.Epsilon),
		}
		input, err := prompt.Run()
		if err != nil || input == exitToken {
			return
		}
		input = emptyIfEpsilon(input)
		printVerdict(input, c.Match(input))
	}
}

// emptyIfEpsilon maps a lone epsilon marker to the empty string.
func emptyIfEpsilon(input string) string {
	if input == string(redfa.Epsilon) {
		return ""
	}
	return input
}

func printVerdict(input string, accepted bool) {
	if accepted {
		fmt.Println(promptui.Styler(promptui.FGGreen)(fmt.Sprintf("Input <%s> accepted.", input)))
		return
	}
	fmt.Println(promptui.Styler(promptui.FGRed)(fmt.Sprintf("Input <%s> rejected.", input)))
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
