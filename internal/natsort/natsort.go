// Package natsort orders file base names the way a human reads them:
// digit runs compare by numeric value, so page2 sorts before page10.
package natsort

import "strings"

// token is one run of a name: either a text run (lower-cased) or a digit
// run. A digit run keeps its raw form; digits being non-empty marks the
// token as numeric.
type token struct {
	text   string
	digits string
}

// Compare orders a and b naturally. Names split into alternating text and
// digit runs; the first token is always text (empty when the name starts
// with a digit) so equal positions always hold the same token kind. Digit
// runs compare by integer value at arbitrary precision, text runs compare
// case-insensitively, and a sequence that is a strict prefix of the other
// sorts first. Returns -1, 0 or 1.
func Compare(a, b string) int {
	ta, tb := tokenize(a), tokenize(b)
	n := len(ta)
	if len(tb) < n {
		n = len(tb)
	}
	for i := 0; i < n; i++ {
		if c := compareToken(ta[i], tb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}
	return 0
}

// Less reports whether a sorts before b in natural order. Names that
// differ only in zero padding compare equal; callers sorting stably keep
// such ties in their original order.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// tokenize splits name into runs. Text runs are folded with
// strings.ToLower at split time so comparisons stay allocation-free.
func tokenize(name string) []token {
	var toks []token
	for i := 0; i < len(name); {
		start := i
		for i < len(name) && !isDigit(name[i]) {
			i++
		}
		toks = append(toks, token{text: strings.ToLower(name[start:i])})
		start = i
		for i < len(name) && isDigit(name[i]) {
			i++
		}
		if i > start {
			toks = append(toks, token{digits: name[start:i]})
		}
	}
	return toks
}

func compareToken(a, b token) int {
	if a.digits != "" {
		// Same position means same kind, so b is numeric too.
		return compareDigits(a.digits, b.digits)
	}
	return strings.Compare(a.text, b.text)
}

// compareDigits compares two digit runs by value without parsing them
// into integers, so runs longer than an int64 still compare exactly.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
