package parser

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/token"
)

// parseExpr is the entry point into the precedence chain, lowest to
// highest: or, and, not, cmp, add, mul, unary, primary.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expr, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.accept(token.OR)
		if !ok {
			return node, nil
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{NodeBase: ast.At(tok.Line), Op: "OR", Left: node, Right: rhs}
	}
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	node, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.accept(token.AND)
		if !ok {
			return node, nil
		}
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{NodeBase: ast.At(tok.Line), Op: "AND", Left: node, Right: rhs}
	}
}

func (p *Parser) parseNot() (ast.Expr, error) {
	if tok, ok := p.accept(token.NOT); ok {
		expr, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{NodeBase: ast.At(tok.Line), Op: "NOT", Expr: expr}, nil
	}
	return p.parseCmp()
}

var cmpKinds = []token.Kind{token.EQ, token.NE, token.LT, token.LE, token.GT, token.GE}

// parseCmp handles the non-associative comparison level: at most one
// comparison operator may appear at this level, so a chain such as
// a < b < c is rejected.
func (p *Parser) parseCmp() (ast.Expr, error) {
	node, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.accept(cmpKinds...); ok {
		rhs, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{NodeBase: ast.At(tok.Line), Op: tok.Kind.String(), Left: node, Right: rhs}
	}
	return node, nil
}

func (p *Parser) parseAdd() (ast.Expr, error) {
	node, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.accept(token.PLUS, token.MINUS)
		if !ok {
			return node, nil
		}
		rhs, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{NodeBase: ast.At(tok.Line), Op: tok.Kind.String(), Left: node, Right: rhs}
	}
}

var mulKinds = []token.Kind{token.MUL, token.DIVIDE, token.DIV, token.MOD, token.MOD_SYM}

func (p *Parser) parseMul() (ast.Expr, error) {
	node, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.accept(mulKinds...)
		if !ok {
			return node, nil
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{NodeBase: ast.At(tok.Line), Op: tok.Kind.String(), Left: node, Right: rhs}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if tok, ok := p.accept(token.MINUS, token.PLUS); ok {
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{NodeBase: ast.At(tok.Line), Op: tok.Kind.String(), Expr: expr}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	cur := p.current()
	switch cur.Kind {
	case token.NUMBER:
		p.pos++
		if v, ok := cur.Value.(int64); ok {
			return &ast.NumberLit{NodeBase: ast.At(cur.Line), Int: v}, nil
		}
		return &ast.NumberLit{NodeBase: ast.At(cur.Line), IsReal: true, Real: cur.Value.(float64)}, nil
	case token.STRING:
		p.pos++
		return &ast.StringLit{NodeBase: ast.At(cur.Line), Value: cur.Value.(string)}, nil
	case token.TRUE, token.FALSE:
		p.pos++
		return &ast.BoolLit{NodeBase: ast.At(cur.Line), Value: cur.Kind == token.TRUE}, nil
	case token.IDENT:
		p.pos++
		name := cur.Value.(string)
		if _, ok := p.accept(token.LPAREN); ok {
			args, err := p.parseArgumentList()
			if err != nil {
				return nil, err
			}
			return &ast.FunctionCall{NodeBase: ast.At(cur.Line), Name: name, Args: args}, nil
		}
		if _, ok := p.accept(token.LBRACKET); ok {
			indices, err := p.parseIndexList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			return &ast.ArrayRef{NodeBase: ast.At(cur.Line), Name: name, Indices: indices}, nil
		}
		return &ast.VariableRef{NodeBase: ast.At(cur.Line), Name: name}, nil
	case token.LPAREN:
		p.pos++
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, errs.NewParseError(cur.Line, "Συντακτικό λάθος: αναμενόταν έκφραση, βρέθηκε %s", cur.Kind)
	}
}
