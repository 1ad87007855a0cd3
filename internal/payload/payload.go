// Package payload turns a raw submission body into a flat field map.
//
// Two decoding strategies are tried in order: JSON, then URL-encoded
// form. Only string values with non-whitespace content survive, stored
// trimmed. Parsing never fails; an unusable body yields a nil Payload,
// which the validation stage reports as an empty payload.
package payload

import (
	"encoding/json"
	"io"
	"strings"
)

// Payload maps a field name to its trimmed, non-empty value.
// A nil Payload means the body carried nothing usable.
type Payload map[string]string

// Get returns the value of a field, or "" when it was not submitted.
func (p Payload) Get(field string) string {
	return p[field]
}

// outcome reports what a strategy made of the body.
type outcome int

const (
	// notApplicable lets the next strategy try.
	notApplicable outcome = iota
	// decoded ends the search, even if the result is nil.
	decoded
)

// strategy is one way of reading a body.
type strategy func(body string) (Payload, outcome)

// strategies are tried in order until one reports decoded.
var strategies = []strategy{decodeJSON, decodeForm}

// Parse decodes body with the first applicable strategy.
//
// A body that is valid JSON but not an object (array, null, number,
// string, bool) yields nil without falling back to form decoding.
func Parse(body string) Payload {
	if body == "" {
		return nil
	}

	for _, decode := range strategies {
		if p, result := decode(body); result == decoded {
			return p
		}
	}
	return nil
}

func decodeJSON(body string) (Payload, outcome) {
	dec := json.NewDecoder(strings.NewReader(body))
	// Numbers are never read, but a float64 target rejects ones like
	// 1e999 that are still valid JSON.
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, notApplicable
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, notApplicable
	}

	object, ok := parsed.(map[string]any)
	if !ok {
		return nil, decoded
	}

	p := make(Payload, len(object))
	for key, value := range object {
		if s, ok := value.(string); ok {
			p.keep(key, s)
		}
	}
	return p.orNil(), decoded
}

// decodeForm reads application/x-www-form-urlencoded pairs. Only the
// first occurrence of a key counts. A `;` is ordinary text and a bad
// percent escape is kept literally, so no pair is ever dropped.
func decodeForm(body string) (Payload, outcome) {
	seen := make(map[string]bool)
	p := make(Payload)

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key := unescape(rawKey)
		if seen[key] {
			continue
		}
		seen[key] = true
		p.keep(key, unescape(rawValue))
	}
	return p.orNil(), decoded
}

// unescape decodes `+` and valid %XX escapes, leaving any other `%`
// untouched.
func unescape(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func (p Payload) keep(key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		p[key] = trimmed
	}
}

func (p Payload) orNil() Payload {
	if len(p) == 0 {
		return nil
	}
	return p
}
