package internal

import (
	"io"
	"strings"
)

// eofRune marks an exhausted position in the lookahead window.
const eofRune rune = -1

type lexer struct {
	reader *utf8Reader

	// current, next and third form the lookahead window.
	current rune
	next    rune
	third   rune

	// position of current
	line int
	col  int

	// position of the token being scanned
	startLine int
	startCol  int
	lexeme    strings.Builder

	tokens []Token
	halted bool
	err    error

	cfg   Config
	state *interpreterState
}

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

func newLexer(src io.Reader, cfg Config, state *interpreterState) *lexer {
	l := &lexer{
		reader: newUTF8Reader(src),
		line:   1,
		col:    1,
		cfg:    cfg,
		state:  state,
	}
	l.current = l.pull()
	l.next = l.pull()
	l.third = l.pull()
	return l
}

// scanTokens drives the scanner to the end of input. The returned token
// sequence always ends with exactly one EOF token. The error is only set
// when the source could not be read or decoded.
func (l *lexer) scanTokens() ([]Token, error) {
	for !l.isAtEnd() && !l.halted {
		l.startLine, l.startCol = l.line, l.col
		l.lexeme.Reset()
		l.scanToken()
		l.advance()
	}

	if l.err != nil && !l.halted {
		l.state.setError(DiagDecode, l.err, l.line, l.col, "")
	}

	l.tokens = append(l.tokens, Token{
		Type: EOF,
		Line: l.line,
		Col:  l.col,
	})
	l.state.log().WithField("tokens", len(l.tokens)).Debug("scan finished")
	return l.tokens, l.err
}

// scanToken leaves current on the last character of the construct it
// scanned.
func (l *lexer) scanToken() {
	c := l.current
	switch c {
	case '(':
		l.emit(LEFT_PAREN)
	case ')':
		l.emit(RIGHT_PAREN)
	case '{':
		l.emit(LEFT_BRACE)
	case '}':
		l.emit(RIGHT_BRACE)
	case ',':
		l.emit(COMMA)
	case '.':
		l.emit(DOT)
	case '-':
		l.emit(MINUS)
	case '+':
		l.emit(PLUS)
	case ';':
		l.emit(SEMICOLON)
	case '*':
		l.emit(STAR)
	case '!':
		l.emitWithEqual(BANG, BANG_EQUAL)
	case '=':
		l.emitWithEqual(EQUAL, EQUAL_EQUAL)
	case '<':
		l.emitWithEqual(LESS, LESS_EQUAL)
	case '>':
		l.emitWithEqual(GREATER, GREATER_EQUAL)
	case '/':
		if l.next == '/' {
			l.comment()
		} else {
			l.emit(SLASH)
		}

	// Ignore whitespace, advance counts lines
	case ' ', '\r', '\t', '\n':

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(DiagUnexpectedChar, errIllegalChar, l.line, l.col, string(c))
		}
	}
}

func (l *lexer) emitWithEqual(bare, withEqual TokenType) {
	if l.next == '=' {
		l.step()
		l.emit(withEqual)
	} else {
		l.emit(bare)
	}
}

// comment discards the rest of the line, newline included.
func (l *lexer) comment() {
	for l.next != '\n' && l.next != eofRune {
		l.advance()
	}
	if l.next == '\n' {
		l.advance()
	}
}

func (l *lexer) string() {
	for {
		if l.next == eofRune {
			l.state.setError(DiagUnterminatedString, errUnclosedString, l.startLine, l.startCol, "")
			return
		}
		l.step()
		switch l.current {
		case '"':
			l.emit(STRING)
			return
		case '\\':
			// the escaped character is kept raw and never closes the string
			if l.next != eofRune {
				l.step()
			}
		}
	}
}

func (l *lexer) number() {
	for isDigit(l.next) {
		l.step()
	}

	if l.next == '.' {
		if !isDigit(l.third) {
			l.step()
			l.state.setError(DiagInvalidNumber, errExpectedDigit, l.startLine, l.startCol, l.lexeme.String()+string(l.current))
			return
		}
		l.step()
		for isDigit(l.next) {
			l.step()
		}
	}

	if !l.endsNumber(l.next) {
		l.malformedNumber()
		return
	}

	l.emit(NUMBER)
}

// malformedNumber swallows the offending character and the alphanumeric
// run after it, so the reported literal is never scanned again.
func (l *lexer) malformedNumber() {
	l.step()
	for isAlpha(l.next) || isDigit(l.next) || l.next == '.' {
		l.step()
	}
	l.state.setError(DiagInvalidNumber, errBadNumberEnd, l.startLine, l.startCol, l.lexeme.String()+string(l.current))
}

func (l *lexer) endsNumber(c rune) bool {
	if c == eofRune {
		return true
	}
	if l.cfg.StrictNumbers {
		switch c {
		case ' ', '\t', '\r', '\n', ',', ')', ';':
			return true
		}
		return false
	}
	return !isAlpha(c) && c != '.'
}

func (l *lexer) identifier() {
	for isAlpha(l.next) {
		l.step()
	}

	text := l.lexeme.String() + string(l.current)
	tokenType, ok := keywords[text]
	if !ok {
		tokenType = IDENTIFIER
	}

	l.emit(tokenType)
}

// emit closes the token being scanned with current as its last character.
func (l *lexer) emit(tokenType TokenType) {
	if l.cfg.MaxTokens > 0 && len(l.tokens) >= l.cfg.MaxTokens {
		l.state.setError(DiagTooManyTokens, errTooManyTokens, l.startLine, l.startCol, "")
		l.halted = true
		return
	}

	l.lexeme.WriteRune(l.current)
	lexeme := l.lexeme.String()

	var literal string
	switch tokenType {
	case STRING:
		literal = lexeme[1 : len(lexeme)-1]
	case NUMBER:
		literal = lexeme
	}

	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    l.startLine,
		Col:     l.startCol,
	})
}

// step adds current to the lexeme and moves the window.
func (l *lexer) step() {
	l.lexeme.WriteRune(l.current)
	l.advance()
}

func (l *lexer) advance() {
	if l.current == '\n' {
		l.line++
		l.col = 1
	} else if l.current != eofRune {
		l.col++
	}
	l.current = l.next
	l.next = l.third
	l.third = l.pull()
}

func (l *lexer) pull() rune {
	if l.err != nil {
		return eofRune
	}
	c, err := l.reader.Next()
	if err == io.EOF {
		return eofRune
	}
	if err != nil {
		l.err = err
		return eofRune
	}
	return c
}

func (l *lexer) isAtEnd() bool {
	return l.current == eofRune
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
