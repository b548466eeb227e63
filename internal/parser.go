package internal

// parser stores parser data
type parser[T any] struct {
	current int
	depth   int
	tokens  []Token

	root expr[T]

	cfg   Config
	state *interpreterState
}

// numberText is the unparsed text of a number literal.
type numberText string

// newParser parses tokens right away. On failure root is nil and the
// diagnostic is recorded in state.
func newParser[T any](tokens []Token, cfg Config, state *interpreterState) *parser[T] {
	p := &parser[T]{
		tokens: tokens,
		cfg:    cfg,
		state:  state,
	}
	p.parse()
	return p
}

func (p *parser[T]) parse() {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(Diagnostic); !ok {
				panic(r)
			}
			p.root = nil
		}
	}()

	root := p.expression()
	if !p.isAtEnd() {
		p.fail(errTrailingTokens)
	}
	p.root = root
	p.state.log().Debug("parse finished")
}

func (p *parser[T]) expression() expr[T] {
	p.enter()
	defer p.leave()
	return p.equality()
}

func (p *parser[T]) equality() expr[T] {
	expr := p.comparison()
	for p.match(EQUAL_EQUAL, BANG_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr[T]{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser[T]) comparison() expr[T] {
	expr := p.term()
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr[T]{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser[T]) term() expr[T] {
	expr := p.factor()
	for p.match(PLUS, MINUS) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr[T]{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser[T]) factor() expr[T] {
	expr := p.unary()
	for p.match(SLASH, STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr[T]{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser[T]) unary() expr[T] {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		p.enter()
		defer p.leave()
		right := p.unary()
		return &unaryExpr[T]{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser[T]) primary() expr[T] {
	if p.isAtEnd() {
		p.fail(errOutOfTokens)
	}
	if p.match(FALSE) {
		return &literalExpr[T]{value: false}
	}
	if p.match(TRUE) {
		return &literalExpr[T]{value: true}
	}
	if p.match(NIL) {
		return &literalExpr[T]{value: nil}
	}
	if p.match(NUMBER) {
		return &literalExpr[T]{value: numberText(p.previous().Literal)}
	}
	if p.match(STRING) {
		return &literalExpr[T]{value: p.previous().Literal}
	}
	if p.match(LEFT_PAREN) {
		expr := p.expression()
		p.consume(RIGHT_PAREN, errUnclosedParen)
		return &groupingExpr[T]{expression: expr}
	}

	p.fail(errUndefinedExpr)
	return nil
}

func (p *parser[T]) enter() {
	p.depth++
	if p.cfg.MaxDepth > 0 && p.depth > p.cfg.MaxDepth {
		p.fail(errMaxDepth)
	}
}

func (p *parser[T]) leave() {
	p.depth--
}

// fail records err at the current token and abandons the parse.
func (p *parser[T]) fail(err error) {
	tk := p.peek()
	near := tk.Lexeme
	if tk.Type == EOF {
		near = ""
	}
	p.state.fatalError(DiagParse, err, tk.Line, tk.Col, near)
}

func (p *parser[T]) consume(tk TokenType, err error) *Token {
	if p.check(tk) {
		return p.advance()
	}
	p.fail(err)
	return nil
}

func (p *parser[T]) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser[T]) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser[T]) check(token TokenType) bool {
	if p.isAtEnd() {
		return token == EOF
	}
	return p.peek().Type == token
}

// peek returns the token under the cursor. A sequence missing its EOF token
// behaves as if it had one after the last token.
func (p *parser[T]) peek() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	eof := Token{Type: EOF, Line: 1, Col: 1}
	if n := len(p.tokens); n > 0 {
		eof.Line = p.tokens[n-1].Line
		eof.Col = p.tokens[n-1].Col + len([]rune(p.tokens[n-1].Lexeme))
	}
	return eof
}

func (p *parser[T]) previous() *Token {
	return &p.tokens[p.current-1]
}

func (p *parser[T]) isAtEnd() bool {
	return p.peek().Type == EOF
}
