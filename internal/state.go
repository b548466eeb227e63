package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind int

const (
	DiagDecode DiagnosticKind = iota
	DiagUnterminatedString
	DiagInvalidNumber
	DiagUnexpectedChar
	DiagTooManyTokens
	DiagParse
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagDecode:
		return "decode error"
	case DiagUnterminatedString:
		return "unterminated string literal"
	case DiagInvalidNumber:
		return "invalid numeric literal"
	case DiagUnexpectedChar:
		return "unexpected character"
	case DiagTooManyTokens:
		return "too many tokens"
	case DiagParse:
		return "parse error"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is a problem found while scanning or parsing, located at the
// 1-based line and column where the offending construct starts. Near holds
// the offending text when there is one.
type Diagnostic struct {
	Kind DiagnosticKind
	Line int
	Col  int
	Near string
	Err  error
}

func (d Diagnostic) Error() string {
	if d.Near != "" {
		return fmt.Sprintf("line %d:%d: %v near %q", d.Line, d.Col, d.Err, d.Near)
	}
	return fmt.Sprintf("line %d:%d: %v", d.Line, d.Col, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// diagnosticList is returned as a single error by callers that do not print.
type diagnosticList []Diagnostic

func (l diagnosticList) Error() string {
	msgs := make([]string, len(l))
	for i := range l {
		msgs[i] = l[i].Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap gives the first diagnostic so errors.Is reaches its sentinel.
func (l diagnosticList) Unwrap() error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

// interpreterState stores the state shared by the stages of one run
type interpreterState struct {
	name        string
	diagnostics []Diagnostic
	logger      *logrus.Logger
	printer     IPrinter
	color       *color.Color
}

func newInterpreterState(name string, cfg Config, p IPrinter) *interpreterState {
	return &interpreterState{
		name:    name,
		logger:  cfg.logger(),
		printer: p,
		color:   newColor(cfg.Color, os.Stderr),
	}
}

// newColor styles text written to out; it stays plain unless enabled is set
// and out is a terminal.
func newColor(enabled bool, out io.Writer) *color.Color {
	c := color.New()
	c.Enable()
	c.SetOutput(out)
	if !enabled {
		c.Disable()
	}
	return c
}

func (s *interpreterState) log() *logrus.Entry {
	return s.logger.WithField("source", s.name)
}

func (s *interpreterState) setError(kind DiagnosticKind, err error, line, col int, near string) Diagnostic {
	d := Diagnostic{
		Kind: kind,
		Line: line,
		Col:  col,
		Near: near,
		Err:  err,
	}
	s.diagnostics = append(s.diagnostics, d)
	s.log().WithFields(logrus.Fields{
		"kind": kind.String(),
		"line": line,
		"col":  col,
	}).Warn(err)
	return d
}

// fatalError records the diagnostic and unwinds to the recover in the stage
// that raised it.
func (s *interpreterState) fatalError(kind DiagnosticKind, err error, line, col int, near string) {
	panic(s.setError(kind, err, line, col, near))
}

// Valid returns true if no diagnostic has been recorded
func (s *interpreterState) Valid() bool {
	return len(s.diagnostics) == 0
}

// Diagnostics returns every diagnostic recorded so far, in order.
func (s *interpreterState) Diagnostics() []Diagnostic {
	return s.diagnostics
}

func (s *interpreterState) err() error {
	if s.Valid() {
		return nil
	}
	return diagnosticList(s.diagnostics)
}

// PrintErrors prints all errors and reports whether there were any. Printed
// diagnostics are cleared.
func (s *interpreterState) PrintErrors() bool {
	if s.Valid() {
		return false
	}
	for _, d := range s.diagnostics {
		where := fmt.Sprintf("line %d:%d", d.Line, d.Col)
		if s.name != "" {
			where = s.name + ":" + where
		}
		s.printer.Fprintf(os.Stderr, "%s on %s (%s)\n", s.color.Red("Error"), s.color.Bold(where), d.Kind)
		msg := d.Err.Error()
		if d.Near != "" {
			msg += " near " + s.color.Yellow(fmt.Sprintf("%q", d.Near))
		}
		s.printer.Fprintln(os.Stderr, "\t"+msg)
	}
	s.diagnostics = nil
	return true
}

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errUnclosedString = errors.New("Closing \" was expected")
var errExpectedDigit = errors.New("Expected digit after '.'")
var errBadNumberEnd = errors.New("Number literal is followed by an invalid character")
var errTooManyTokens = errors.New("Token limit exceeded")

// Parser errors
var errOutOfTokens = errors.New("Out of tokens while parsing expression")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errUndefinedExpr = errors.New("Undefined expression")
var errTrailingTokens = errors.New("Expected end of expression")
var errMaxDepth = errors.New("Expression is nested too deeply")
