// Package numeric converts loosely formatted spreadsheet values to numbers.
package numeric

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dashfolio-dev/dashfolio/internal/model"
)

// Coerce parses s as a number after normalising "," to "." and trimming
// whitespace. An empty, malformed or non-finite value yields 0.
func Coerce(s string) float64 {
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return 0
	}
	v, ok := parse(s)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Field coerces the value of field in r. Absent fields yield 0.
func Field(r model.Record, field string) float64 {
	v, ok := r.Get(field)
	if !ok {
		return 0
	}
	return Coerce(v)
}

// Sum adds Field(row, field) over every row of ds.
func Sum(ds model.Dataset, field string) float64 {
	var total float64
	for _, r := range ds.Rows {
		total += Field(r, field)
	}
	return total
}

// isSpace matches the whitespace and line terminators trimmed by
// ECMAScript: unicode.IsSpace plus the BOM, without NEL.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\ufeff'
}

// parse accepts signed decimals with an optional exponent and unsigned
// 0x/0o/0b integers.
func parse(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}

	body := s
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if !isDecimalLiteral(body) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseRadix(digits string, base int) (float64, bool) {
	if digits == "" {
		return 0, false
	}
	var v float64
	for _, c := range digits {
		d, ok := digitValue(c)
		if !ok || d >= base {
			return 0, false
		}
		v = v*float64(base) + float64(d)
	}
	return v, true
}

func digitValue(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// isDecimalLiteral reports whether s is digits[.digits][e[+-]digits] with at
// least one mantissa digit. ParseFloat alone would also accept "inf", "nan",
// hex floats and underscores.
func isDecimalLiteral(s string) bool {
	i, n := 0, len(s)
	mantissa := 0
	for i < n && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < n && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
