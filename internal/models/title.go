package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the primitive category of a title value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return "other"
	}
}

// Title is a JSON title value tagged with its kind at decode time.
// The zero value is the empty string title.
type Title struct {
	kind Kind
	text string
}

// StringTitle builds a textual title.
func StringTitle(s string) Title {
	return Title{kind: KindString, text: s}
}

// IntegerTitle builds a whole-number title from its decimal literal.
func IntegerTitle(literal string) Title {
	return Title{kind: KindInteger, text: literal}
}

// OtherTitle builds a title from any other JSON value, kept in compact form.
func OtherTitle(raw string) Title {
	return Title{kind: KindOther, text: raw}
}

// Kind reports the title's category.
func (t Title) Kind() Kind {
	return t.kind
}

// String renders the title: the text itself for strings, JSON otherwise.
func (t Title) String() string {
	return t.text
}

// Contains reports whether a string title holds sub as a literal substring.
// Non-string titles never match.
func (t Title) Contains(sub string) bool {
	return t.kind == KindString && strings.Contains(t.text, sub)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Title) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return fmt.Errorf("empty title value")
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("decode title: %w", err)
		}
		*t = StringTitle(s)
	case c == '-' || (c >= '0' && c <= '9'):
		if !json.Valid(raw) {
			return fmt.Errorf("decode title: invalid number %q", raw)
		}
		if bytes.ContainsAny(raw, ".eE") {
			*t = OtherTitle(string(raw))
		} else {
			*t = IntegerTitle(string(raw))
		}
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("decode title: %w", err)
		}
		*t = OtherTitle(buf.String())
	}
	return nil
}
