package parser

import (
	"errors"
	"strconv"
	"strings"

	"littlecalc/types"
)

// Operator precedence levels (higher = tighter binding)
const (
	precLowest     = iota
	precTernary    // ? :
	precOr         // ||
	precAnd        // &&
	precEquality   // == !=
	precComparison // < <= > >=
	precAdditive   // + -
	precMultiply   // * /
	precExponent   // ^
	precUnary      // ! -
)

// binaryPrecedence returns the precedence of a binary operator token, or
// precLowest for anything else
func binaryPrecedence(t TokenType) int {
	switch t {
	case TOKEN_OR:
		return precOr
	case TOKEN_AND:
		return precAnd
	case TOKEN_EQ, TOKEN_NE:
		return precEquality
	case TOKEN_LT, TOKEN_LE, TOKEN_GT, TOKEN_GE:
		return precComparison
	case TOKEN_PLUS, TOKEN_MINUS:
		return precAdditive
	case TOKEN_STAR, TOKEN_SLASH:
		return precMultiply
	case TOKEN_CARET:
		return precExponent
	}
	return precLowest
}

// ParseExpression parses an expression whose operators all bind at least
// as tightly as minPrec. Every binary operator, ^ included, associates to
// the left; the ternary associates to the right.
func (p *Parser) ParseExpression(minPrec int) (Expr, error) {
	p.enter("expr")
	defer p.exit("expr")

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.cur()

		if op.Type == TOKEN_QUESTION && minPrec <= precTernary {
			p.consume()
			thenExpr, err := p.ParseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			if _, err := p.match(TOKEN_COLON); err != nil {
				return nil, err
			}
			elseExpr, err := p.ParseExpression(precTernary)
			if err != nil {
				return nil, err
			}
			left = &TernaryExpr{
				Span:      Span{First: p.firstToken(left), Last: p.lastToken(elseExpr)},
				Condition: left,
				ThenExpr:  thenExpr,
				ElseExpr:  elseExpr,
			}
			continue
		}

		prec := binaryPrecedence(op.Type)
		if prec == precLowest || prec < minPrec {
			return left, nil
		}
		p.consume()
		right, err := p.ParseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Span:     Span{First: p.firstToken(left), Last: p.lastToken(right)},
			Left:     left,
			Operator: op.Type,
			OpToken:  op,
			Right:    right,
		}
	}
}

// parseUnary parses prefix ! and - applied to a primary
func (p *Parser) parseUnary() (Expr, error) {
	tok := p.cur()
	if tok.Type != TOKEN_NOT && tok.Type != TOKEN_MINUS {
		return p.parsePrimary()
	}
	p.consume()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{
		Span:     Span{First: tok, Last: p.lastToken(operand)},
		Operator: tok.Type,
		Operand:  operand,
	}, nil
}

// parsePrimary parses literals, identifiers and parenthesized expressions
func (p *Parser) parsePrimary() (Expr, error) {
	p.enter("primary")
	defer p.exit("primary")

	tok := p.cur()
	switch tok.Type {
	case TOKEN_NUMBER:
		p.consume()
		val, err := strconv.ParseFloat(strings.ReplaceAll(tok.Value, "_", ""), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, p.errorf(tok, "invalid number '%s'", tok.Value)
		}
		return &LiteralExpr{Span: Span{First: tok, Last: tok}, Value: types.NewNumber(val, tok.Position.Pos())}, nil
	case TOKEN_STRING:
		p.consume()
		return &LiteralExpr{Span: Span{First: tok, Last: tok}, Value: types.NewStr(tok.Literal, tok.Position.Pos())}, nil
	case TOKEN_TRUE, TOKEN_FALSE:
		p.consume()
		return &LiteralExpr{Span: Span{First: tok, Last: tok}, Value: types.NewBool(tok.Type == TOKEN_TRUE, tok.Position.Pos())}, nil
	case TOKEN_IDENTIFIER:
		p.consume()
		return &IdentifierExpr{Span: Span{First: tok, Last: tok}, Name: tok.Value}, nil
	case TOKEN_LPAREN:
		p.consume()
		inner, err := p.ParseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		closing, err := p.match(TOKEN_RPAREN)
		if err != nil {
			return nil, err
		}
		return &ParenExpr{Span: Span{First: tok, Last: closing}, Expr: inner}, nil
	}

	// Single-token deletion: if dropping this token leaves a valid
	// expression start, report it and carry on.
	if tok.Type != TOKEN_EOF && canStartExpr(p.peek().Type) {
		p.addError(p.errorf(tok, "extraneous input '%s' expecting %s", tok.displayText(), exprStart))
		p.consume()
		return p.parsePrimary()
	}
	return nil, p.errorf(tok, "mismatched input '%s' expecting %s", tok.displayText(), exprStart)
}
