package parser

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/token"
)

// parseDeclarationSections parses zero or more VARS/ARRAYS sections, in any
// order and repeatable, each holding one or more type-prefixed groups.
func (p *Parser) parseDeclarationSections() ([]ast.VarDecl, error) {
	var decls []ast.VarDecl
	seen := map[string]bool{}

	addDecl := func(d ast.VarDecl) error {
		if seen[d.Name] {
			return errs.NewParseError(d.Line, "Η μεταβλητή '%s' έχει ήδη δηλωθεί", d.Name)
		}
		seen[d.Name] = true
		decls = append(decls, d)
		return nil
	}

	for {
		switch p.current().Kind {
		case token.VARS:
			p.pos++
			for isOneOf(p.current().Kind, typeKinds) {
				typeTok, _ := p.accept(typeKinds...)
				if _, err := p.expect(token.COLON); err != nil {
					return nil, err
				}
				baseType := typeKeywordToBaseType(typeTok.Kind)
				for {
					idTok, err := p.expect(token.IDENT)
					if err != nil {
						return nil, err
					}
					if err := addDecl(ast.VarDecl{
						Name: idTok.Value.(string),
						Type: baseType,
						Line: idTok.Line,
					}); err != nil {
						return nil, err
					}
					if _, ok := p.accept(token.COMMA); !ok {
						break
					}
				}
			}
		case token.ARRAYS:
			p.pos++
			for isOneOf(p.current().Kind, typeKinds) {
				typeTok, _ := p.accept(typeKinds...)
				if _, err := p.expect(token.COLON); err != nil {
					return nil, err
				}
				baseType := typeKeywordToBaseType(typeTok.Kind)
				for {
					idTok, err := p.expect(token.IDENT)
					if err != nil {
						return nil, err
					}
					dims, err := p.parseArrayDimensions()
					if err != nil {
						return nil, err
					}
					if err := addDecl(ast.VarDecl{
						Name: idTok.Value.(string),
						Type: baseType,
						Dims: dims,
						Line: idTok.Line,
					}); err != nil {
						return nil, err
					}
					if _, ok := p.accept(token.COMMA); !ok {
						break
					}
				}
			}
		default:
			return decls, nil
		}
	}
}

// parseArrayDimensions parses a bracketed list of one or two positive
// integer literal dimensions.
func (p *Parser) parseArrayDimensions() ([]int, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var dims []int
	for {
		tok, err := p.expect(token.NUMBER)
		if err != nil {
			return nil, err
		}
		n, ok := tok.Value.(int64)
		if !ok {
			return nil, errs.NewParseError(tok.Line, "Το μέγεθος πίνακα πρέπει να είναι ακέραιο")
		}
		if n <= 0 {
			return nil, errs.NewParseError(tok.Line, "Το μέγεθος πίνακα πρέπει να είναι θετικό")
		}
		dims = append(dims, int(n))
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	if len(dims) != 1 && len(dims) != 2 {
		return nil, errs.NewParseError(p.current().Line, "Υποστηρίζονται μόνο μονοδιάστατοι ή διδιάστατοι πίνακες")
	}
	return dims, nil
}

// parseParameterList parses `( id : TYPE {, id : TYPE} )` or `()`.
func (p *Parser) parseParameterList() ([]ast.Param, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if _, ok := p.accept(token.RPAREN); ok {
		return nil, nil
	}
	var params []ast.Param
	for {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typeTok, err := p.expect(typeKinds...)
		if err != nil {
			return nil, err
		}
		for _, existing := range params {
			if existing.Name == nameTok.Value.(string) {
				return nil, errs.NewParseError(nameTok.Line, "Η παράμετρος '%s' έχει ήδη δηλωθεί", existing.Name)
			}
		}
		params = append(params, ast.Param{Name: nameTok.Value.(string), Type: typeKeywordToBaseType(typeTok.Kind)})
		if _, ok := p.accept(token.COMMA); ok {
			continue
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		break
	}
	return params, nil
}

// parseProcedureDef parses a ΔΙΑΔΙΚΑΣΙΑ definition.
func (p *Parser) parseProcedureDef() (*ast.Procedure, error) {
	header, err := p.expect(token.PROC)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	locals, err := p.parseDeclarationSections()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(token.END_PROC)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_PROC); err != nil {
		return nil, err
	}
	return &ast.Procedure{
		Name:   nameTok.Value.(string),
		Params: params,
		Locals: locals,
		Body:   body,
		Line:   header.Line,
	}, nil
}

// parseFunctionDef parses a ΣΥΝΑΡΤΗΣΗ definition.
func (p *Parser) parseFunctionDef() (*ast.Function, error) {
	header, err := p.expect(token.FUNC)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	retTok, err := p.expect(typeKinds...)
	if err != nil {
		return nil, err
	}
	locals, err := p.parseDeclarationSections()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(token.END_FUNC)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_FUNC); err != nil {
		return nil, err
	}
	return &ast.Function{
		Name:       nameTok.Value.(string),
		Params:     params,
		Locals:     locals,
		Body:       body,
		ReturnType: typeKeywordToBaseType(retTok.Kind),
		Line:       header.Line,
	}, nil
}
