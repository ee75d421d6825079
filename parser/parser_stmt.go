package parser

const (
	stmtStart = "{'print', 'vars', 'tree', 'tokens', 'gui', 'refactor', '(', '!', '-', NUMBER, STRING, 'true', 'false', ID}"
	exprStart = "{'(', '!', '-', NUMBER, STRING, 'true', 'false', ID}"
)

// ParseProgram parses a complete program: any number of statements up to
// end of input. The returned Program is usable for inspection even when
// err is non-nil; err is SyntaxErrors in that case.
func (p *Parser) ParseProgram() (*Program, error) {
	return p.parse("calcIn", false)
}

// ParseReplInput parses one REPL unit, which must hold at least one
// statement.
func (p *Parser) ParseReplInput() (*Program, error) {
	return p.parse("replIn", true)
}

func (p *Parser) parse(rule string, requireStmt bool) (*Program, error) {
	p.errors = nil
	p.rules = nil
	p.pos = p.nextDefault(0)

	p.enter(rule)
	prog := &Program{Tokens: p.tokens}
	prog.First = p.token(0)
	if requireStmt && p.cur().Type == TOKEN_EOF {
		p.addError(p.errorf(p.cur(), "mismatched input '<EOF>' expecting %s", stmtStart))
	}
	prog.Stmts = p.parseStatements(TOKEN_EOF)
	prog.Last = p.consume() // EOF
	p.exit(rule)

	if len(p.errors) > 0 {
		return prog, p.errors
	}
	return prog, nil
}

// parseStatements parses statements until end (or EOF), recording and
// recovering from errors as it goes.
func (p *Parser) parseStatements(end TokenType) []Stmt {
	var statements []Stmt
	for {
		tok := p.cur()
		if tok.Type == end || tok.Type == TOKEN_EOF {
			return statements
		}
		if !canStartStatement(tok.Type) {
			p.addError(p.errorf(tok, "extraneous input '%s' expecting %s", tok.displayText(), stmtStart))
			p.consume()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			serr := err.(*SyntaxError)
			p.addError(serr)
			p.synchronize(serr.Pos.Line, end)
			continue
		}
		statements = append(statements, stmt)
	}
}

// synchronize skips to a token that can start a statement on a line after
// the error, or to end/EOF.
func (p *Parser) synchronize(errLine int, end TokenType) {
	for {
		tok := p.cur()
		if tok.Type == TOKEN_EOF || tok.Type == end {
			return
		}
		if tok.Position.Line > errLine && canStartStatement(tok.Type) {
			return
		}
		p.consume()
	}
}

// parseStatement parses a single statement
func (p *Parser) parseStatement() (Stmt, error) {
	p.enter("stmt")
	defer p.exit("stmt")

	tok := p.cur()
	switch tok.Type {
	case TOKEN_IDENTIFIER:
		if p.peek().Type == TOKEN_ASSIGN {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	case TOKEN_PRINT:
		return p.parsePrint()
	case TOKEN_VARS:
		p.consume()
		return &VarsStmt{Span: Span{First: tok, Last: tok}}, nil
	case TOKEN_TREE, TOKEN_TOKENS, TOKEN_GUI, TOKEN_REFACTOR:
		return p.parseMeta()
	default:
		return p.parseExpressionStatement()
	}
}

// parseAssignment parses ID '=' expr
func (p *Parser) parseAssignment() (Stmt, error) {
	name := p.consume()
	if _, err := p.match(TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &AssignStmt{
		Span:  Span{First: name, Last: p.lastToken(value)},
		Name:  name.Value,
		Value: value,
	}, nil
}

// parsePrint parses print expr expr ...
// Operands continue while the next token can start an expression, except
// where it begins an assignment (ID '='), which starts the next statement.
func (p *Parser) parsePrint() (Stmt, error) {
	kw := p.consume()
	first, err := p.ParseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	args := []Expr{first}
	for canStartExpr(p.cur().Type) {
		if p.cur().Type == TOKEN_IDENTIFIER && p.peek().Type == TOKEN_ASSIGN {
			break
		}
		arg, err := p.ParseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &PrintStmt{
		Span: Span{First: kw, Last: p.lastToken(args[len(args)-1])},
		Args: args,
	}, nil
}

// parseExpressionStatement parses a bare expression
func (p *Parser) parseExpressionStatement() (Stmt, error) {
	expr, err := p.ParseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{
		Span: Span{First: p.firstToken(expr), Last: p.lastToken(expr)},
		Expr: expr,
	}, nil
}

// parseMeta parses tree, tokens, gui and refactor. All take a braced
// block; all but refactor may instead wrap another meta statement.
func (p *Parser) parseMeta() (Stmt, error) {
	p.enter("metaStmt")
	defer p.exit("metaStmt")

	kw := p.consume()
	stmt := &MetaStmt{Kind: kw.Type}

	next := p.cur()
	switch {
	case next.Type == TOKEN_LBRACE:
		stmt.Open = p.consume()
		stmt.Body = p.parseStatements(TOKEN_RBRACE)
		closing, err := p.match(TOKEN_RBRACE)
		if err != nil {
			return nil, err
		}
		stmt.Close = closing
		stmt.Span = Span{First: kw, Last: closing}
	case kw.Type != TOKEN_REFACTOR && isMetaKeyword(next.Type):
		inner, err := p.parseMeta()
		if err != nil {
			return nil, err
		}
		stmt.Inner = inner.(*MetaStmt)
		stmt.Span = Span{First: kw, Last: p.lastToken(inner)}
	default:
		return nil, p.errorf(next, "mismatched input '%s' expecting '{'", next.displayText())
	}
	return stmt, nil
}

func isMetaKeyword(t TokenType) bool {
	switch t {
	case TOKEN_TREE, TOKEN_TOKENS, TOKEN_GUI, TOKEN_REFACTOR:
		return true
	}
	return false
}

func canStartStatement(t TokenType) bool {
	switch t {
	case TOKEN_PRINT, TOKEN_VARS:
		return true
	}
	return isMetaKeyword(t) || canStartExpr(t)
}

func canStartExpr(t TokenType) bool {
	switch t {
	case TOKEN_LPAREN, TOKEN_NOT, TOKEN_MINUS, TOKEN_NUMBER, TOKEN_STRING,
		TOKEN_TRUE, TOKEN_FALSE, TOKEN_IDENTIFIER:
		return true
	}
	return false
}
