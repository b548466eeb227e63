package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// RunSourceWithPrinter scans and parses source as a single expression and
// prints its tree. Diagnostics are printed instead when either stage fails.
// Returns whether the tree was printed.
func RunSourceWithPrinter(name string, source io.Reader, cfg Config, p IPrinter) bool {
	state := newInterpreterState(name, cfg, p)

	lexer := newLexer(source, cfg, state)
	tokens, _ := lexer.scanTokens()

	if state.PrintErrors() {
		return false
	}

	parser := newParser[string](tokens, cfg, state)

	if state.PrintErrors() {
		return false
	}

	p.Println(printTree(parser.root))
	return true
}

// ParseString returns the printed tree of source, or the diagnostics that
// stopped it as an error.
func ParseString(source string, cfg Config) (string, error) {
	state := newInterpreterState("", cfg, nil)

	lexer := newLexer(strings.NewReader(source), cfg, state)
	tokens, _ := lexer.scanTokens()
	if err := state.err(); err != nil {
		return "", err
	}

	parser := newParser[string](tokens, cfg, state)
	if err := state.err(); err != nil {
		return "", err
	}

	return printTree(parser.root), nil
}

// Tokenize scans source without parsing it. The error is only set when the
// source could not be read or decoded; lexical problems are returned as
// diagnostics next to the tokens that could be scanned.
func Tokenize(source io.Reader, cfg Config) ([]Token, []Diagnostic, error) {
	state := newInterpreterState("", cfg, nil)
	tokens, err := newLexer(source, cfg, state).scanTokens()
	return tokens, state.Diagnostics(), err
}

// TokenTable renders tokens as a text table with one row per token.
func TokenTable(tokens []Token, width int) string {
	data := [][]string{{"Line", "Col", "Type", "Lexeme", "Literal"}}
	for _, tk := range tokens {
		literal := ""
		if tk.Type == STRING || tk.Type == NUMBER {
			literal = strconv.Quote(tk.Literal)
		}
		data = append(data, []string{
			strconv.Itoa(tk.Line),
			strconv.Itoa(tk.Col),
			tk.Type.String(),
			tk.Lexeme,
			literal,
		})
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, width, tableOpts).
		String()
}

// PrintDiagnostics prints diagnostics returned by Tokenize the same way a
// failed run prints them.
func PrintDiagnostics(name string, diagnostics []Diagnostic, cfg Config, p IPrinter) bool {
	state := newInterpreterState(name, cfg, p)
	state.diagnostics = append(state.diagnostics, diagnostics...)
	return state.PrintErrors()
}
