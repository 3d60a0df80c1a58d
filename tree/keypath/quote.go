package keypath

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// NeedsQuote reports whether field must be quoted to survive a round trip
// through Parse.
func NeedsQuote(field string) bool {
	if field == "" {
		return true
	}
	for _, r := range field {
		switch {
		case r == '.', r == '"', r == '\'', r == '\\':
			return true
		case unicode.IsSpace(r), unicode.IsControl(r):
			return true
		}
	}
	return false
}

// QuoteField returns field as it appears in a key path: bare when possible,
// otherwise quoted.
func QuoteField(field string) string {
	if !NeedsQuote(field) {
		return field
	}
	return Quote(field)
}

// Quote quotes field. Single quotes are used when the field contains double
// quotes but no single quotes and nothing that needs escaping.
func Quote(field string) string {
	if strings.ContainsRune(field, '"') && !strings.ContainsAny(field, `'\`) && !hasControl(field) {
		return "'" + field + "'"
	}
	return strconv.Quote(field)
}

func hasControl(v string) bool {
	for _, r := range v {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Unquote reverses Quote for a single- or double-quoted segment.
func Unquote(q string) (string, error) {
	if len(q) < 2 || q[0] != q[len(q)-1] {
		return "", errors.New("malformed quoted segment")
	}
	switch q[0] {
	case '"':
		return strconv.Unquote(q)
	case '\'':
		b := &strings.Builder{}
		esc := false
		for _, r := range q[1 : len(q)-1] {
			if esc {
				if r != '\'' && r != '\\' {
					b.WriteByte('\\')
				}
				b.WriteRune(r)
				esc = false
				continue
			}
			if r == '\\' {
				esc = true
				continue
			}
			b.WriteRune(r)
		}
		if esc {
			return "", errors.New("dangling escape in quoted segment")
		}
		return b.String(), nil
	}
	return "", errors.New("malformed quoted segment")
}
