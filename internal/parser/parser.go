// Package parser implements a recursive-descent parser that consumes the
// Glossa token sequence exactly once and produces an *ast.Program.
package parser

import (
	"fmt"
	"strings"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/lexer"
	"github.com/papagiannakis/glossa/internal/token"
)

// Parser holds the token sequence and a single cursor into it; look-ahead
// is exactly one token.
type Parser struct {
	tokens []token.Token
	pos    int
}

// Parse tokenizes and parses source in one call.
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

// NewParser builds a Parser over an already-scanned token sequence.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

// accept consumes and returns the current token if its kind is one of
// kinds; otherwise it leaves the cursor untouched and returns false.
func (p *Parser) accept(kinds ...token.Kind) (token.Token, bool) {
	cur := p.current()
	for _, k := range kinds {
		if cur.Kind == k {
			p.pos++
			return cur, true
		}
	}
	return token.Token{}, false
}

// expect consumes the current token if it matches one of kinds, else
// raises a *errs.ParseError naming the offending line.
func (p *Parser) expect(kinds ...token.Kind) (token.Token, error) {
	if tok, ok := p.accept(kinds...); ok {
		return tok, nil
	}
	cur := p.current()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return token.Token{}, errs.NewParseError(cur.Line,
		"Συντακτικό λάθος: αναμενόταν %s, βρέθηκε %s", strings.Join(names, " ή "), cur.Kind)
}

// ParseProgram parses an entire Glossa program.
//
//	PROGRAM id declaration-sections BEGIN items END_PROGRAM items EOF
func (p *Parser) ParseProgram() (*ast.Program, error) {
	progTok, err := p.expect(token.PROGRAM)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	globals, err := p.parseDeclarationSections()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}

	program := &ast.Program{
		Name:       nameTok.Value.(string),
		Globals:    globals,
		Procedures: map[string]*ast.Procedure{},
		Functions:  map[string]*ast.Function{},
		Line:       progTok.Line,
	}

	for p.current().Kind != token.END_PROGRAM {
		switch p.current().Kind {
		case token.PROC:
			proc, err := p.parseProcedureDef()
			if err != nil {
				return nil, err
			}
			if err := p.registerRoutine(program, proc.Name, proc.Line); err != nil {
				return nil, err
			}
			program.Procedures[proc.Name] = proc
		case token.FUNC:
			fn, err := p.parseFunctionDef()
			if err != nil {
				return nil, err
			}
			if err := p.registerRoutine(program, fn.Name, fn.Line); err != nil {
				return nil, err
			}
			program.Functions[fn.Name] = fn
		default:
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			program.Statements = append(program.Statements, stmt)
		}
	}
	if _, err := p.expect(token.END_PROGRAM); err != nil {
		return nil, err
	}

	for p.current().Kind != token.EOF {
		switch p.current().Kind {
		case token.PROC:
			proc, err := p.parseProcedureDef()
			if err != nil {
				return nil, err
			}
			if err := p.registerRoutine(program, proc.Name, proc.Line); err != nil {
				return nil, err
			}
			program.Procedures[proc.Name] = proc
		case token.FUNC:
			fn, err := p.parseFunctionDef()
			if err != nil {
				return nil, err
			}
			if err := p.registerRoutine(program, fn.Name, fn.Line); err != nil {
				return nil, err
			}
			program.Functions[fn.Name] = fn
		default:
			return nil, errs.NewParseError(p.current().Line, "Απροσδόκητο περιεχόμενο μετά το ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ")
		}
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return program, nil
}

func (p *Parser) registerRoutine(program *ast.Program, name string, line int) error {
	if _, exists := program.Procedures[name]; exists {
		return errs.NewParseError(line, "Η υπορουτίνα '%s' έχει ήδη δηλωθεί", name)
	}
	if _, exists := program.Functions[name]; exists {
		return errs.NewParseError(line, "Η υπορουτίνα '%s' έχει ήδη δηλωθεί", name)
	}
	return nil
}

// parseStatements collects statements until the current token's kind is in
// until.
func (p *Parser) parseStatements(until ...token.Kind) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !isOneOf(p.current().Kind, until) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func isOneOf(k token.Kind, kinds []token.Kind) bool {
	for _, x := range kinds {
		if k == x {
			return true
		}
	}
	return false
}

func typeKeywordToBaseType(k token.Kind) ast.BaseType {
	switch k {
	case token.TYPE_INT:
		return ast.IntegerType
	case token.TYPE_REAL:
		return ast.RealType
	case token.TYPE_CHAR:
		return ast.StringType
	case token.TYPE_BOOL:
		return ast.BooleanType
	default:
		panic(fmt.Sprintf("not a type keyword: %s", k))
	}
}

var typeKinds = []token.Kind{token.TYPE_INT, token.TYPE_REAL, token.TYPE_CHAR, token.TYPE_BOOL}
