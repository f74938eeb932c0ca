package expr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() (token, error) {
	for l.i < len(l.s) && (l.s[l.i] == ' ' || l.s[l.i] == '\t') {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}, nil
	}

	start := l.i
	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+", pos: start}, nil
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-", pos: start}, nil
	case '*':
		l.i++
		if l.i < len(l.s) && l.s[l.i] == '*' {
			l.i++
			return token{kind: tokPow, text: "**", pos: start}, nil
		}
		return token{kind: tokStar, text: "*", pos: start}, nil
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/", pos: start}, nil
	case '^':
		l.i++
		return token{kind: tokPow, text: "^", pos: start}, nil
	case '(':
		l.i++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	}

	if c := l.s[l.i]; c == '.' || isDigit(c) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		if txt == "." {
			return token{}, fmt.Errorf("%w: malformed number at offset %d", ErrSyntax, start)
		}
		if hasLeadingZero(txt) {
			return token{}, fmt.Errorf("%w: leading zeros in integer %q at offset %d", ErrSyntax, txt, start)
		}
		return token{kind: tokNumber, text: txt, pos: start}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.s[l.i:])
	return token{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, r, start)
}

// scanNumber accepts digits[.digits*] and .digits, with an optional
// exponent suffix so displayed results such as 1e-05 can be edited and
// evaluated again. A second decimal point ends the literal, so "1..2" lexes
// as "1." followed by ".2".
func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// hasLeadingZero reports an integer literal such as 07. Literals made only
// of zeros and literals with a fraction or exponent (07.5, 07e1) are fine.
func hasLeadingZero(lit string) bool {
	if len(lit) < 2 || lit[0] != '0' || strings.ContainsAny(lit, ".eE") {
		return false
	}
	return strings.Trim(lit, "0") != ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
