package cssenv

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type componentType int

const (
	identComponent componentType = iota
	numberComponent
	percentageComponent
	dimensionComponent
	hashComponent
	stringComponent
	urlComponent
	functionComponent
	slashComponent
)

// component is one top-level piece of a value: a token, or a whole
// function call including its arguments.
type component struct {
	tt   componentType
	text string // lower-cased for idents and dimensions
	fn   string // function name without "(", for functionComponent
}

// tokenize splits a value into comma-separated groups of components.
// It fails on anything a declaration value cannot contain.
func tokenize(value string) ([][]component, bool) {
	lexer := css.NewLexer(parse.NewInputString(value))

	var (
		groups  [][]component
		current []component
		depth   int
	)

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, false
			}
			break
		}
		text := string(data)

		switch tt {
		case css.BadStringToken, css.BadURLToken, css.SemicolonToken,
			css.LeftBraceToken, css.RightBraceToken, css.CDOToken, css.CDCToken, css.AtKeywordToken:
			return nil, false
		case css.WhitespaceToken, css.CommentToken:
			continue
		}

		if depth > 0 {
			switch tt {
			case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
				depth++
			case css.RightParenthesisToken, css.RightBracketToken:
				depth--
			}
			continue
		}

		switch tt {
		case css.IdentToken:
			current = append(current, component{tt: identComponent, text: strings.ToLower(text)})
		case css.NumberToken:
			current = append(current, component{tt: numberComponent, text: text})
		case css.PercentageToken:
			current = append(current, component{tt: percentageComponent, text: text})
		case css.DimensionToken:
			current = append(current, component{tt: dimensionComponent, text: strings.ToLower(text)})
		case css.HashToken:
			current = append(current, component{tt: hashComponent, text: strings.ToLower(text)})
		case css.StringToken:
			current = append(current, component{tt: stringComponent, text: text})
		case css.URLToken:
			current = append(current, component{tt: urlComponent, text: text})
		case css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(text, "("))
			current = append(current, component{tt: functionComponent, text: text, fn: name})
			depth++
		case css.LeftBracketToken:
			// Grid line names.
			current = append(current, component{tt: identComponent, text: "[]"})
			depth++
		case css.CommaToken:
			if len(current) == 0 {
				return nil, false
			}
			groups = append(groups, current)
			current = nil
		case css.DelimToken:
			if text != "/" {
				return nil, false
			}
			current = append(current, component{tt: slashComponent, text: text})
		default:
			// Stray parentheses, colons and match tokens.
			return nil, false
		}
	}

	if depth != 0 {
		return nil, false
	}
	if len(current) == 0 {
		// Trailing comma or empty value.
		return nil, false
	}
	return append(groups, current), true
}

// match checks every group against the grammar.
func (g grammar) match(groups [][]component) bool {
	if len(groups) > 1 && !g.comma {
		return false
	}
	for _, group := range groups {
		if !g.matchGroup(group) {
			return false
		}
	}
	return true
}

func (g grammar) matchGroup(group []component) bool {
	count := 0
	for _, c := range group {
		if c.tt == slashComponent {
			if !g.slash {
				return false
			}
			continue
		}
		count++
		if !g.matchComponent(c) {
			return false
		}
	}
	if count == 0 {
		return false
	}
	return g.max == 0 || count <= g.max
}

func (g grammar) matchComponent(c component) bool {
	if g.kinds&kindAny != 0 {
		return true
	}

	switch c.tt {
	case identComponent:
		if g.accepts(c.text) {
			return true
		}
		return g.kinds&kindColor != 0 && namedColors[c.text]
	case numberComponent:
		if g.kinds&kindNumber != 0 {
			return true
		}
		if g.kinds&kindInteger != 0 && isInteger(c.text) {
			return true
		}
		// Unitless zero is a valid length.
		return g.kinds&kindLength != 0 && isZero(c.text)
	case percentageComponent:
		return g.kinds&kindPercentage != 0
	case dimensionComponent:
		unit := dimensionUnit(c.text)
		switch {
		case lengthUnits[unit]:
			return g.kinds&kindLength != 0
		case timeUnits[unit]:
			return g.kinds&kindTime != 0
		case angleUnits[unit]:
			return g.kinds&kindAngle != 0
		}
		return false
	case hashComponent:
		return g.kinds&kindColor != 0 && isHexColor(c.text)
	case stringComponent:
		return g.kinds&kindString != 0
	case urlComponent:
		return g.kinds&(kindURL|kindImage) != 0
	case functionComponent:
		switch {
		case colorFunctions[c.fn]:
			return g.kinds&kindColor != 0
		case mathFunctions[c.fn]:
			return g.kinds&(kindLength|kindPercentage|kindNumber|kindInteger|kindTime|kindAngle) != 0
		case c.fn == "url":
			return g.kinds&(kindURL|kindImage) != 0
		case imageFunctions[c.fn]:
			return g.kinds&kindImage != 0
		}
		return false
	}
	return false
}

func isInteger(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isZero(s string) bool {
	s = strings.TrimLeft(s, "+-")
	s = strings.TrimRight(strings.TrimLeft(s, "0"), "0")
	return s == "" || s == "."
}

// dimensionUnit returns the trailing unit of a dimension token.
func dimensionUnit(s string) string {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			i--
			continue
		}
		break
	}
	return strings.ToLower(s[i:])
}

func isHexColor(s string) bool {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
