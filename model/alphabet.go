package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLetters is the default factor alphabet: A–Z without I, which is
// easily confused with the numeral 1.
const DefaultLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// Mark weights: a single prime advances one cycle of the alphabet, a double
// prime advances two.
const (
	primeMark       = '\''
	doublePrimeMark = '"'
)

// Alphabet maps variable ids to names and back. It is an immutable value;
// the zero Alphabet behaves as DefaultAlphabet().
//
// For an alphabet of n letters, id maps to letter id%n followed by marks for
// cycle k = id/n: k/2 double primes then k%2 single prime.
type Alphabet struct {
	letters []rune
	index   map[rune]int
}

var defaultAlphabet = mustAlphabet(DefaultLetters)

// DefaultAlphabet returns the 25-letter alphabet A–Z without I.
func DefaultAlphabet() Alphabet { return defaultAlphabet }

// NewAlphabet builds an alphabet from letters, in order. Letters are
// upper-cased; each must be a unicode letter and appear once.
func NewAlphabet(letters string) (Alphabet, error) {
	if letters == "" {
		return Alphabet{}, fmt.Errorf("NewAlphabet: empty: %w", ErrBadAlphabet)
	}
	a := Alphabet{index: make(map[rune]int, utf8.RuneCountInString(letters))}
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return Alphabet{}, fmt.Errorf("NewAlphabet: %q is not a letter: %w", r, ErrBadAlphabet)
		}
		r = unicode.ToUpper(r)
		if _, dup := a.index[r]; dup {
			return Alphabet{}, fmt.Errorf("NewAlphabet: %q repeated: %w", r, ErrBadAlphabet)
		}
		a.index[r] = len(a.letters)
		a.letters = append(a.letters, r)
	}

	return a, nil
}

func mustAlphabet(letters string) Alphabet {
	a, err := NewAlphabet(letters)
	if err != nil {
		panic(err)
	}

	return a
}

// orDefault resolves the zero value.
func (a Alphabet) orDefault() Alphabet {
	if len(a.letters) == 0 {
		return defaultAlphabet
	}

	return a
}

// Size returns the number of letters.
func (a Alphabet) Size() int { return len(a.orDefault().letters) }

// Letters returns the letters in order.
func (a Alphabet) Letters() string { return string(a.orDefault().letters) }

// Name renders a variable id.
func (a Alphabet) Name(id int) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("Alphabet.Name(%d): %w", id, ErrInvalidVariableID)
	}
	a = a.orDefault()
	n := len(a.letters)

	var sb strings.Builder
	sb.WriteRune(a.letters[id%n])
	cycle := id / n
	for i := 0; i < cycle/2; i++ {
		sb.WriteRune(doublePrimeMark)
	}
	if cycle%2 == 1 {
		sb.WriteRune(primeMark)
	}

	return sb.String(), nil
}

// ID decodes a variable name: one letter (case-insensitive) followed by any
// number of marks. Letters outside the alphabet fail with
// *InvalidVariableError.
func (a Alphabet) ID(name string) (int, error) {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || !unicode.IsLetter(r) {
		return 0, fmt.Errorf("Alphabet.ID(%q): %w", name, ErrBadName)
	}
	base, err := a.letterID(r)
	if err != nil {
		return 0, err
	}
	cycle, ok := markWeight(name[size:])
	if !ok {
		return 0, fmt.Errorf("Alphabet.ID(%q): %w", name, ErrBadName)
	}

	return base + cycle*a.Size(), nil
}

// letterID returns the base id of a single letter.
func (a Alphabet) letterID(r rune) (int, error) {
	a = a.orDefault()
	up := unicode.ToUpper(r)
	id, ok := a.index[up]
	if !ok {
		return 0, &InvalidVariableError{Letter: string(up)}
	}

	return id, nil
}

// markWeight sums mark weights; ok is false on any other rune.
func markWeight(marks string) (int, bool) {
	var w int
	for _, r := range marks {
		switch r {
		case primeMark:
			w++
		case doublePrimeMark:
			w += 2
		default:
			return 0, false
		}
	}

	return w, true
}
