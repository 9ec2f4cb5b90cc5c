package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// leading signed decimal with optional exponent
	coefficientRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)
	// letter, marks, optional ^power
	factorRe = regexp.MustCompile(`(\p{L})(['"]*)(?:\^(\d+))?`)
)

// Parser turns term and model strings into Terms and Models. A Parser is
// immutable and safe for concurrent use.
type Parser struct {
	alphabet Alphabet
	strict   bool
}

// NewParser returns a Parser configured by opts.
func NewParser(opts ...Option) *Parser {
	o := gatherOptions(opts...)

	return &Parser{alphabet: o.alphabet, strict: o.strict}
}

// Alphabet returns the parser's alphabet.
func (p *Parser) Alphabet() Alphabet { return p.alphabet }

// ParseTerm reads one term: an optional leading coefficient followed by
// factor references. Characters that are neither are skipped, so "A*B" and
// "AB" are the same term.
//
// A variable referenced twice keeps the last power seen ("A*A^2" is A^2).
// A power of 0 removes the variable.
//
// Errors:
//   - *InvalidVariableError for a letter outside the alphabet.
//   - ErrInvalidPower when a power does not fit in an int.
//   - *ParseError in strict mode when a non-blank segment has neither a
//     coefficient nor a factor.
func (p *Parser) ParseTerm(s string) (Term, error) {
	s = strings.TrimSpace(s)
	t := Term{coefficient: 1, powers: map[int]int{}}

	rest := s
	coef := coefficientRe.FindString(s)
	if coef != "" {
		v, err := strconv.ParseFloat(coef, 64)
		if err != nil {
			return Term{}, fmt.Errorf("ParseTerm(%q): %w", s, ErrInvalidCoefficient)
		}
		t.coefficient = v
		rest = s[len(coef):]
	}

	matches := factorRe.FindAllStringSubmatch(rest, -1)
	if p.strict && coef == "" && len(matches) == 0 && s != "" {
		return Term{}, &ParseError{Segment: s}
	}

	n := p.alphabet.Size()
	for _, m := range matches {
		var letter rune
		for _, r := range m[1] {
			letter = r
		}
		base, err := p.alphabet.letterID(letter)
		if err != nil {
			return Term{}, err
		}
		cycle, _ := markWeight(m[2]) // regexp admits marks only
		id := base + cycle*n

		power := 1
		if m[3] != "" {
			power, err = strconv.Atoi(m[3])
			if err != nil {
				return Term{}, fmt.Errorf("ParseTerm(%q): power %q: %w", s, m[3], ErrInvalidPower)
			}
		}
		if power == 0 {
			delete(t.powers, id)
			continue
		}
		t.powers[id] = power // last write wins
	}

	return t, nil
}

// ParseModel splits s on every '+' and parses each segment as a term, keeping
// declaration order. "2E+3A" is therefore the two terms 2E and 3A; write
// exponents without '+' (2e3A). Parentheses are not supported.
func (p *Parser) ParseModel(s string) (*Model, error) {
	segments := strings.Split(s, "+")
	terms := make([]Term, 0, len(segments))
	for _, seg := range segments {
		t, err := p.ParseTerm(seg)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}

	return &Model{terms: terms}, nil
}

// ParseTerm parses one term with a Parser built from opts.
func ParseTerm(s string, opts ...Option) (Term, error) {
	return NewParser(opts...).ParseTerm(s)
}

// Parse parses a model string with a Parser built from opts.
func Parse(s string, opts ...Option) (*Model, error) {
	return NewParser(opts...).ParseModel(s)
}
