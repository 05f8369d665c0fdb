package rdf

import (
	"fmt"
	"strconv"
	"strings"
)

// NTriplesParser parses line-oriented N-Triples text
// Format: <subject> <predicate> object .
type NTriplesParser struct {
	input  string
	pos    int
	length int
}

// NewNTriplesParser creates a new N-Triples parser
func NewNTriplesParser(input string) *NTriplesParser {
	return &NTriplesParser{
		input:  input,
		pos:    0,
		length: len(input),
	}
}

// ParseNTriples parses an N-Triples document
func ParseNTriples(input string) ([]*Triple, error) {
	return NewNTriplesParser(input).Parse()
}

// Parse parses the document and returns triples
func (p *NTriplesParser) Parse() ([]*Triple, error) {
	var triples []*Triple

	for p.pos < p.length {
		p.skipWhitespaceAndComments()
		if p.pos >= p.length {
			break
		}

		triple, err := p.parseTriple()
		if err != nil {
			return nil, err
		}
		triples = append(triples, triple)
	}

	return triples, nil
}

// skipWhitespaceAndComments skips whitespace and comments
func (p *NTriplesParser) skipWhitespaceAndComments() {
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			p.pos++
			continue
		}
		if ch == '#' {
			for p.pos < p.length && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

// parseTriple parses one statement: subject predicate object .
func (p *NTriplesParser) parseTriple() (*Triple, error) {
	subject, err := p.parseSubject()
	if err != nil {
		return nil, fmt.Errorf("error parsing subject: %w", err)
	}

	p.skipWhitespaceAndComments()

	predicate, err := p.parsePredicate()
	if err != nil {
		return nil, fmt.Errorf("error parsing predicate: %w", err)
	}

	p.skipWhitespaceAndComments()

	object, err := p.parseObject()
	if err != nil {
		return nil, fmt.Errorf("error parsing object: %w", err)
	}

	p.skipWhitespaceAndComments()

	if p.pos >= p.length || p.input[p.pos] != '.' {
		return nil, fmt.Errorf("expected '.' at end of statement at position %d", p.pos)
	}
	p.pos++ // skip '.'

	return NewTriple(subject, predicate, object), nil
}

// parseSubject parses an IRI or blank node
func (p *NTriplesParser) parseSubject() (Term, error) {
	switch p.input[p.pos] {
	case '<':
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return NewNamedNode(iri), nil
	case '_':
		return p.parseBlankNode()
	default:
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, p.input[p.pos])
	}
}

// parsePredicate parses an IRI
func (p *NTriplesParser) parsePredicate() (Term, error) {
	if p.input[p.pos] != '<' {
		return nil, fmt.Errorf("expected '<' at position %d", p.pos)
	}
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	return NewNamedNode(iri), nil
}

// parseObject parses an IRI, blank node, or literal
func (p *NTriplesParser) parseObject() (Term, error) {
	switch p.input[p.pos] {
	case '<':
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return NewNamedNode(iri), nil
	case '_':
		return p.parseBlankNode()
	case '"':
		return p.parseLiteral()
	default:
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, p.input[p.pos])
	}
}

// parseIRI parses an IRI enclosed in < >
func (p *NTriplesParser) parseIRI() (string, error) {
	p.pos++ // skip '<'

	var result strings.Builder
	for p.pos < p.length && p.input[p.pos] != '>' {
		ch := p.input[p.pos]
		if ch == '\\' {
			escaped, err := p.parseUnicodeEscape()
			if err != nil {
				return "", err
			}
			result.WriteString(escaped)
			continue
		}
		result.WriteByte(ch)
		p.pos++
	}

	if p.pos >= p.length {
		return "", fmt.Errorf("unclosed IRI")
	}
	p.pos++ // skip '>'

	return result.String(), nil
}

// parseBlankNode parses a blank node label: _:name
func (p *NTriplesParser) parseBlankNode() (Term, error) {
	p.pos++ // skip '_'
	if p.pos >= p.length || p.input[p.pos] != ':' {
		return nil, fmt.Errorf("expected ':' after '_' in blank node")
	}
	p.pos++ // skip ':'

	start := p.pos
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			break
		}
		p.pos++
	}

	// A label may contain dots but not end with one, so trailing dots belong
	// to the statement terminator
	for p.pos > start && p.input[p.pos-1] == '.' {
		p.pos--
	}

	if p.pos == start {
		return nil, fmt.Errorf("empty blank node label at position %d", p.pos)
	}

	return NewBlankNode(p.input[start:p.pos]), nil
}

// parseLiteral parses a quoted literal with optional language tag or datatype
func (p *NTriplesParser) parseLiteral() (Term, error) {
	p.pos++ // skip opening '"'

	var value strings.Builder
	for p.pos < p.length && p.input[p.pos] != '"' {
		ch := p.input[p.pos]
		if ch == '\\' {
			if p.pos+1 >= p.length {
				return nil, fmt.Errorf("unexpected end of input in escape sequence")
			}
			escCh := p.input[p.pos+1]
			switch escCh {
			case 't':
				value.WriteByte('\t')
				p.pos += 2
			case 'b':
				value.WriteByte('\b')
				p.pos += 2
			case 'n':
				value.WriteByte('\n')
				p.pos += 2
			case 'r':
				value.WriteByte('\r')
				p.pos += 2
			case 'f':
				value.WriteByte('\f')
				p.pos += 2
			case '"':
				value.WriteByte('"')
				p.pos += 2
			case '\\':
				value.WriteByte('\\')
				p.pos += 2
			case 'u', 'U':
				escaped, err := p.parseUnicodeEscape()
				if err != nil {
					return nil, err
				}
				value.WriteString(escaped)
			default:
				return nil, fmt.Errorf("invalid escape sequence \\%c at position %d", escCh, p.pos)
			}
			continue
		}
		value.WriteByte(ch)
		p.pos++
	}

	if p.pos >= p.length {
		return nil, fmt.Errorf("unclosed literal")
	}
	p.pos++ // skip closing '"'

	// Optional language tag
	if p.pos < p.length && p.input[p.pos] == '@' {
		p.pos++
		start := p.pos
		for p.pos < p.length {
			ch := p.input[p.pos]
			if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
				p.pos++
				continue
			}
			break
		}
		if p.pos == start {
			return nil, fmt.Errorf("empty language tag at position %d", p.pos)
		}
		return NewLiteralWithLanguage(value.String(), p.input[start:p.pos]), nil
	}

	// Optional datatype
	if p.pos+1 < p.length && p.input[p.pos] == '^' && p.input[p.pos+1] == '^' {
		p.pos += 2
		if p.pos >= p.length || p.input[p.pos] != '<' {
			return nil, fmt.Errorf("expected '<' after '^^' at position %d", p.pos)
		}
		datatype, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return NewLiteralWithDatatype(value.String(), NewNamedNode(datatype)), nil
	}

	return NewLiteral(value.String()), nil
}

// parseUnicodeEscape processes \uXXXX or \UXXXXXXXX escape sequences
func (p *NTriplesParser) parseUnicodeEscape() (string, error) {
	if p.input[p.pos] != '\\' {
		return "", fmt.Errorf("expected '\\' at start of escape sequence")
	}
	p.pos++

	if p.pos >= p.length {
		return "", fmt.Errorf("unexpected end of input in Unicode escape")
	}

	var hexLen int
	switch p.input[p.pos] {
	case 'u':
		hexLen = 4
	case 'U':
		hexLen = 8
	default:
		return "", fmt.Errorf("invalid Unicode escape type: %c", p.input[p.pos])
	}
	p.pos++

	if p.pos+hexLen > p.length {
		return "", fmt.Errorf("incomplete Unicode escape sequence")
	}

	hexStr := p.input[p.pos : p.pos+hexLen]
	code, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return "", fmt.Errorf("invalid hex digits in Unicode escape: %s", hexStr)
	}
	p.pos += hexLen

	return string(rune(code)), nil
}
