package lambda

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenIllegal
)

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Literal)
}

// SyntaxError reports input that has no full parse.
type SyntaxError struct {
	Offset int // byte offset of the offending token
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	start := p.pos
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: start}
		return
	}

	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	switch {
	case r == 'λ' || r == '\\':
		p.pos += size
		p.current = Token{Type: TokenLambda, Literal: p.input[start:p.pos], Pos: start}
	case r == '.':
		p.pos += size
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
	case r == '(':
		p.pos += size
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
	case r == ')':
		p.pos += size
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
	case isIdentRune(r):
		for p.pos < len(p.input) {
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			if !isIdentRune(r) {
				break
			}
			p.pos += size
		}
		p.current = Token{Type: TokenIdent, Literal: p.input[start:p.pos], Pos: start}
	default:
		p.pos += size
		p.current = Token{Type: TokenIllegal, Literal: p.input[start:p.pos], Pos: start}
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

// λ is a Unicode letter, so it has to be excluded explicitly.
func isIdentRune(r rune) bool {
	if r == 'λ' || r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(tt TokenType, what string) (Token, error) {
	tok := p.current
	if tok.Type != tt {
		return tok, p.errorf("expected %s, found %v", what, tok)
	}
	p.next()
	return tok, nil
}

// Parse reads one complete term. Anything but whitespace after it is
// an error.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("unexpected %v after term", p.current)
	}
	return term, nil
}

// Term ::= "(" Parenthesized ")" | Ident
func (p *Parser) parseTerm() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		open := p.current
		p.next()

		var term Term
		var err error
		if p.current.Type == TokenLambda {
			term, err = p.parseAbs()
		} else {
			term, err = p.parseApp()
		}
		if err != nil {
			return nil, err
		}

		if p.current.Type != TokenRParen {
			return nil, p.errorf("expected ')' to close '(' at offset %d, found %v", open.Pos, p.current)
		}
		p.next()
		return term, nil
	default:
		return nil, p.errorf("unexpected %v", p.current)
	}
}

// Parenthesized ::= "λ" Ident "." Term
func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume λ

	arg, err := p.expect(TokenIdent, "identifier after λ")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDot, "'.'"); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Arg: arg.Literal, Body: body}, nil
}

// Parenthesized ::= Term Term
func (p *Parser) parseApp() (Term, error) {
	fun, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	arg, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return App{Fun: fun, Arg: arg}, nil
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}
