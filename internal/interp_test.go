package internal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

type testPrinter struct {
	printed string
	errors  string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	t.printed += fmt.Sprintln(a...)
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	t.errors += fmt.Sprintf(format, a...)
	return 0, nil
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	t.errors += fmt.Sprintln(a...)
	return 0, nil
}

func checkExpression(t *testing.T, exp string, result string) {
	tp := &testPrinter{}
	ok := RunSourceWithPrinter("", strings.NewReader(exp), testConfig(), tp)
	if !ok || tp.printed != result+"\n" {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s%s",
			exp,
			result,
			tp.printed,
			tp.errors,
		)
	}
}

func checkErrorMsg(t *testing.T, source string, errorMsg string) {
	tp := &testPrinter{}
	ok := RunSourceWithPrinter("test.lox", strings.NewReader(source), testConfig(), tp)
	if ok || tp.printed != "" || tp.errors != errorMsg {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----",
			source,
			errorMsg,
			tp.errors,
		)
	}
}

func TestExpressions(t *testing.T) {
	checkExpression(t, "1 + 2 * 3", "(+ 1 (* 2 3))")
	checkExpression(t, "(1 + 2) * 3", "(* (group (+ 1 2)) 3)")
	checkExpression(t, "-(1.5)", "(- (group 1.5))")
	checkExpression(t, "!(1 <= 2) != false", "(!= (! (group (<= 1 2))) false)")
	checkExpression(t, `"hello" + "world"`, "(+ hello world)")
	checkExpression(t, "  nil  \n", "nil")
}

func TestErrors(t *testing.T) {
	checkErrorMsg(t, "1 +", "Error on test.lox:line 1:4 (parse error)\n\tOut of tokens while parsing expression\n")
	checkErrorMsg(t, "(1", "Error on test.lox:line 1:3 (parse error)\n\tExpect ')' after expression\n")
	checkErrorMsg(t, "\"unterminated", "Error on test.lox:line 1:1 (unterminated string literal)\n\tClosing \" was expected\n")
	checkErrorMsg(t, "1 # 2", "Error on test.lox:line 1:3 (unexpected character)\n\tIllegal character near \"#\"\n")
	checkErrorMsg(
		t,
		"1.\n@",
		"Error on test.lox:line 1:1 (invalid numeric literal)\n\tExpected digit after '.' near \"1.\"\n"+
			"Error on test.lox:line 2:1 (unexpected character)\n\tIllegal character near \"@\"\n",
	)
}

func TestRunSourceWithPrinter_readError(t *testing.T) {
	assert := assert.New(t)

	tp := &testPrinter{}
	ok := RunSourceWithPrinter("", iotest.ErrReader(io.ErrUnexpectedEOF), testConfig(), tp)

	assert.False(ok)
	assert.Empty(tp.printed)
	assert.Contains(tp.errors, "(decode error)")
	assert.Contains(tp.errors, io.ErrUnexpectedEOF.Error())
}

func TestRunSourceWithPrinter_lexErrorsStopBeforeParsing(t *testing.T) {
	assert := assert.New(t)

	tp := &testPrinter{}
	ok := RunSourceWithPrinter("", strings.NewReader("1 + @"), testConfig(), tp)

	assert.False(ok)
	assert.Contains(tp.errors, "unexpected character")
	assert.NotContains(tp.errors, "parse error")
}

func TestPrintErrors_color(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig()
	cfg.Color = true

	tp := &testPrinter{}
	state := newInterpreterState("", cfg, tp)
	state.color.Enable()
	state.setError(DiagParse, errOutOfTokens, 1, 1, "")

	assert.True(state.PrintErrors())
	assert.Contains(tp.errors, "\x1b[")
	assert.Contains(tp.errors, "Out of tokens while parsing expression")
	assert.True(state.Valid())
	assert.False(state.PrintErrors())
}

func Test_newColor(t *testing.T) {
	testCases := []struct {
		name    string
		enabled bool
		out     io.Writer
	}{
		{name: "disabled by config", enabled: false, out: os.Stderr},
		{name: "output is not a terminal", enabled: true, out: &bytes.Buffer{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			c := newColor(tc.enabled, tc.out)
			assert.Same(tc.out, c.Output())
			assert.Equal("Error", c.Red("Error"))
		})
	}
}

func TestTokenTable(t *testing.T) {
	assert := assert.New(t)

	tokens, diagnostics, err := Tokenize(strings.NewReader(`1 + "s"`), testConfig())
	assert.NoError(err)
	assert.Empty(diagnostics)

	table := TokenTable(tokens, 80)

	last := -1
	for _, want := range []string{"LINE", "LITERAL", "NUMBER", "PLUS", "STRING", `"s"`, "EOF"} {
		idx := strings.Index(table, want)
		if assert.Greater(idx, last, "expected %q after previous cell in:\n%s", want, table) {
			last = idx
		}
	}
}

func TestPrintDiagnostics(t *testing.T) {
	assert := assert.New(t)

	_, diagnostics, err := Tokenize(strings.NewReader("1 $"), testConfig())
	assert.NoError(err)

	tp := &testPrinter{}
	assert.True(PrintDiagnostics("in.lox", diagnostics, testConfig(), tp))
	assert.Equal("Error on in.lox:line 1:3 (unexpected character)\n\tIllegal character near \"$\"\n", tp.errors)

	tp = &testPrinter{}
	assert.False(PrintDiagnostics("in.lox", nil, testConfig(), tp))
	assert.Empty(tp.errors)
}
