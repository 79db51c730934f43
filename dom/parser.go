package dom

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/littlebrowser/result"
)

// ParseError reports a fatal failure of the HTML parser: an unexpected
// byte, an unterminated tag, a mismatched closing tag, mismatched
// attribute quotes, or input truncated mid-construct. The parser does not
// attempt recovery; a ParseError aborts the call that produced it.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("html parse error at byte %d: %s", e.Pos, e.Message)
}

func parseErrorf(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// parser is a single-pass recursive-descent parser over a UTF-8 byte
// buffer with a byte-offset cursor, grounded on the accepted grammar:
//
//	nodes   = { ws, node }, ws ;
//	node    = element | text ;
//	element = '<', name, attrs, '>', nodes, '</', name, '>' ;
//	attrs   = { ws+, attr }, ws* ;
//	attr    = name, '=', ('"' value '"' | '\'' value '\'') ;
//	name    = { 'a'..'z' | 'A'..'Z' | '0'..'9' } ;
//
// It implements neither comments, CDATA, doctypes, void/self-closing
// tags, nor script/style raw-text handling.
type parser struct {
	pos   int
	input string
}

// Parse parses source into a document tree, per the root-fabrication rule:
// if parsing the top level produces exactly one node, that node is
// returned as the root; otherwise the collected nodes are wrapped in a
// synthetic <html> element with no attributes.
func Parse(source string) (*Node, error) {
	p := &parser{input: source}
	nodes, err := p.parseNodes()
	if err != nil {
		tracer().Errorf("html parse failed: %s", err)
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return NewElement("html", AttrMap{}, nodes), nil
}

// ParseResult parses source and returns the outcome as a result.Result,
// an adapter for callers that prefer Match()-style error handling over a
// plain (value, error) return.
func ParseResult(source string) result.Result[*Node] {
	root, err := Parse(source)
	if err != nil {
		return result.Err[*Node](err)
	}
	return result.Ok(root)
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// nextChar returns the rune at the current position without consuming it.
func (p *parser) nextChar() (rune, error) {
	if p.eof() {
		return 0, parseErrorf(p.pos, "unexpected end of input")
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	if r == utf8.RuneError {
		return 0, parseErrorf(p.pos, "invalid UTF-8 sequence")
	}
	return r, nil
}

func (p *parser) startsWith(s string) bool {
	return len(p.input)-p.pos >= len(s) && p.input[p.pos:p.pos+len(s)] == s
}

// expect consumes s if it is found at the current position, and fails
// otherwise.
func (p *parser) expect(s string) error {
	if p.startsWith(s) {
		p.pos += len(s)
		return nil
	}
	return parseErrorf(p.pos, "expected %q but it was not found", s)
}

// consumeChar consumes and returns the current rune, advancing pos by its
// UTF-8 byte width.
func (p *parser) consumeChar() (rune, error) {
	r, err := p.nextChar()
	if err != nil {
		return 0, err
	}
	p.pos += utf8.RuneLen(r)
	return r, nil
}

// consumeWhile consumes runes while test holds, returning the accumulated
// string.
func (p *parser) consumeWhile(test func(rune) bool) (string, error) {
	start := p.pos
	for !p.eof() {
		r, err := p.nextChar()
		if err != nil {
			return "", err
		}
		if !test(r) {
			break
		}
		if _, err := p.consumeChar(); err != nil {
			return "", err
		}
	}
	return p.input[start:p.pos], nil
}

func (p *parser) consumeWhitespace() error {
	_, err := p.consumeWhile(unicode.IsSpace)
	return err
}

// parseName parses a tag or attribute name: a run of ASCII letters and
// digits.
func (p *parser) parseName() (string, error) {
	return p.consumeWhile(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	})
}

// parseNodes parses a sequence of sibling nodes, stopping at EOF or at a
// closing-tag marker.
func (p *parser) parseNodes() ([]*Node, error) {
	var nodes []*Node
	for {
		if err := p.consumeWhitespace(); err != nil {
			return nil, err
		}
		if p.eof() || p.startsWith("</") {
			break
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (p *parser) parseNode() (*Node, error) {
	if p.startsWith("<") {
		return p.parseElement()
	}
	return p.parseText()
}

// parseText consumes up to the next '<' as a Text node, verbatim: no
// entity decoding, no whitespace collapsing.
func (p *parser) parseText() (*Node, error) {
	text, err := p.consumeWhile(func(r rune) bool { return r != '<' })
	if err != nil {
		return nil, err
	}
	return NewText(text), nil
}

// parseElement parses a single element, including its open tag, contents
// and closing tag.
func (p *parser) parseElement() (*Node, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	tagName, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if tagName == "" {
		return nil, parseErrorf(p.pos, "expected a tag name")
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}

	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	if err := p.expect("</"); err != nil {
		return nil, err
	}
	if err := p.expect(tagName); err != nil {
		return nil, parseErrorf(p.pos, "mismatched closing tag, expected %q: %s", tagName, err)
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	return NewElement(tagName, attrs, children), nil
}

// parseAttr parses a single name="value" pair.
func (p *parser) parseAttr() (string, string, error) {
	name, err := p.parseName()
	if err != nil {
		return "", "", err
	}
	if name == "" {
		return "", "", parseErrorf(p.pos, "expected an attribute name")
	}
	if err := p.expect("="); err != nil {
		return "", "", err
	}
	value, err := p.parseAttrValue()
	if err != nil {
		return "", "", err
	}
	return name, value, nil
}

// parseAttrValue parses a quoted attribute value; the closing quote must
// match the opening quote.
func (p *parser) parseAttrValue() (string, error) {
	openQuote, err := p.consumeChar()
	if err != nil {
		return "", err
	}
	if openQuote != '"' && openQuote != '\'' {
		return "", parseErrorf(p.pos, "expected an opening quote, got %q", openQuote)
	}
	value, err := p.consumeWhile(func(r rune) bool { return r != openQuote })
	if err != nil {
		return "", err
	}
	closeQuote, err := p.consumeChar()
	if err != nil {
		return "", err
	}
	if closeQuote != openQuote {
		return "", parseErrorf(p.pos, "mismatched attribute quotes: opened with %q, closed with %q", openQuote, closeQuote)
	}
	return value, nil
}

// parseAttributes parses a list of name="value" pairs separated by
// whitespace, terminating at the tag's closing '>'.
func (p *parser) parseAttributes() (AttrMap, error) {
	attributes := AttrMap{}
	for {
		if err := p.consumeWhitespace(); err != nil {
			return nil, err
		}
		c, err := p.nextChar()
		if err != nil {
			return nil, err
		}
		if c == '>' {
			break
		}
		name, value, err := p.parseAttr()
		if err != nil {
			return nil, err
		}
		attributes[name] = value
	}
	return attributes, nil
}
