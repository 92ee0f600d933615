package parser

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/token"
)

// parseStatement dispatches on the leading keyword.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	cur := p.current()
	switch cur.Kind {
	case token.WRITE:
		return p.parseWrite()
	case token.READ:
		return p.parseRead()
	case token.CALL:
		return p.parseCall()
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.REPEAT:
		return p.parseRepeat()
	case token.SELECT:
		return p.parseSelect()
	case token.FOR:
		return p.parseFor()
	case token.IDENT:
		return p.parseAssignment()
	default:
		return nil, errs.NewParseError(cur.Line, "Άγνωστη εντολή: %s", cur.Kind)
	}
}

func (p *Parser) parseWrite() (ast.Stmt, error) {
	tok, _ := p.accept(token.WRITE)
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	return &ast.Write{NodeBase: ast.At(tok.Line), Exprs: exprs}, nil
}

func (p *Parser) parseExprList() ([]ast.Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}
	for {
		if _, ok := p.accept(token.COMMA); !ok {
			return exprs, nil
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
}

func (p *Parser) parseReadTarget() (ast.ReadTarget, error) {
	idTok, err := p.expect(token.IDENT)
	if err != nil {
		return ast.ReadTarget{}, err
	}
	target := ast.ReadTarget{Name: idTok.Value.(string), Line: idTok.Line}
	if _, ok := p.accept(token.LBRACKET); ok {
		indices, err := p.parseIndexList()
		if err != nil {
			return ast.ReadTarget{}, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return ast.ReadTarget{}, err
		}
		target.Indices = indices
	}
	return target, nil
}

func (p *Parser) parseRead() (ast.Stmt, error) {
	tok, _ := p.accept(token.READ)
	first, err := p.parseReadTarget()
	if err != nil {
		return nil, err
	}
	targets := []ast.ReadTarget{first}
	for {
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
		next, err := p.parseReadTarget()
		if err != nil {
			return nil, err
		}
		targets = append(targets, next)
	}
	return &ast.Read{NodeBase: ast.At(tok.Line), Targets: targets}, nil
}

func (p *Parser) parseCall() (ast.Stmt, error) {
	tok, _ := p.accept(token.CALL)
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	return &ast.ProcedureCall{NodeBase: ast.At(tok.Line), Name: nameTok.Value.(string), Args: args}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	tok, _ := p.accept(token.RETURN)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Return{NodeBase: ast.At(tok.Line), Expr: expr}, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	tok, _ := p.accept(token.IF)
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	thenBody, err := p.parseStatements(token.ELSE, token.END_IF)
	if err != nil {
		return nil, err
	}
	node := &ast.If{NodeBase: ast.At(tok.Line), Cond: cond, Then: thenBody}
	if _, ok := p.accept(token.ELSE); ok {
		elseBody, err := p.parseStatements(token.END_IF)
		if err != nil {
			return nil, err
		}
		node.Else = elseBody
		node.HasElse = true
	}
	if _, err := p.expect(token.END_IF); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	tok, _ := p.accept(token.WHILE)
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(token.END_LOOP)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_LOOP); err != nil {
		return nil, err
	}
	return &ast.While{NodeBase: ast.At(tok.Line), Cond: cond, Body: body}, nil
}

func (p *Parser) parseRepeat() (ast.Stmt, error) {
	tok, _ := p.accept(token.REPEAT)
	body, err := p.parseStatements(token.UNTIL)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.UNTIL); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Repeat{NodeBase: ast.At(tok.Line), Body: body, Cond: cond}, nil
}

// parseSelect parses an ΕΠΙΛΕΞΕ statement. The ΑΛΛΙΩΣ default arm — if
// present — must be the last arm; a CASE following it is a parse error.
func (p *Parser) parseSelect() (ast.Stmt, error) {
	tok, _ := p.accept(token.SELECT)
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	node := &ast.Select{NodeBase: ast.At(tok.Line), Scrutinee: scrutinee}
	defaultSeen := false
	for p.current().Kind != token.END_SELECT {
		caseTok, err := p.expect(token.CASE)
		if err != nil {
			return nil, err
		}
		if defaultSeen {
			return nil, errs.NewParseError(caseTok.Line, "Το ΠΕΡΙΠΤΩΣΗ ΑΛΛΙΩΣ πρέπει να είναι η τελευταία περίπτωση")
		}
		if _, ok := p.accept(token.ELSE); ok {
			p.accept(token.COLON) // the colon after ΑΛΛΙΩΣ is optional
			body, err := p.parseStatements(token.CASE, token.END_SELECT)
			if err != nil {
				return nil, err
			}
			node.Default = body
			node.HasDefault = true
			defaultSeen = true
			continue
		}
		values, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		body, err := p.parseStatements(token.CASE, token.END_SELECT)
		if err != nil {
			return nil, err
		}
		node.Cases = append(node.Cases, ast.SelectCase{Values: values, Body: body})
	}
	if _, err := p.expect(token.END_SELECT); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	tok, _ := p.accept(token.FOR)
	varTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TO); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var step ast.Expr
	if _, ok := p.accept(token.STEP); ok {
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseStatements(token.END_LOOP)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_LOOP); err != nil {
		return nil, err
	}
	return &ast.For{
		NodeBase: ast.At(tok.Line),
		Var:      varTok.Value.(string),
		Start:    start,
		End:      end,
		Step:     step,
		Body:     body,
	}, nil
}

// parseAssignment parses `id [ [expr {, expr}] ] <- expr`.
func (p *Parser) parseAssignment() (ast.Stmt, error) {
	nameTok, _ := p.accept(token.IDENT)
	var indices []ast.Expr
	if _, ok := p.accept(token.LBRACKET); ok {
		var err error
		indices, err = p.parseIndexList()
		if err != nil {
			return nil, err
		}
		if len(indices) > 2 {
			return nil, errs.NewParseError(nameTok.Line, "Υποστηρίζονται το πολύ δύο δείκτες")
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{
		NodeBase: ast.At(nameTok.Line),
		Name:     nameTok.Value.(string),
		Indices:  indices,
		Expr:     expr,
	}, nil
}

func (p *Parser) parseIndexList() ([]ast.Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	indices := []ast.Expr{first}
	for {
		if _, ok := p.accept(token.COMMA); !ok {
			return indices, nil
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		indices = append(indices, next)
	}
}

func (p *Parser) parseArgumentList() ([]ast.Expr, error) {
	if _, ok := p.accept(token.RPAREN); ok {
		return nil, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args := []ast.Expr{first}
	for {
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}
