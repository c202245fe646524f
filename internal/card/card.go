// Package card implements the FITS header card codec.
//
// A header is a sequence of 80-byte ASCII cards. Value cards carry the
// fixed-format layout: keyword in columns 1-8, "= " in columns 9-10, the
// value right-justified to column 30 (strings start at column 11), and an
// optional "/ comment" after the value.
package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the length of one card in bytes.
const Size = 80

// ErrNoValue is returned when a typed accessor is used on a card that
// carries no value (COMMENT, HISTORY, END, blank keyword).
var ErrNoValue = errors.New("card has no value")

// Card is one decoded header card.
type Card struct {
	Keyword string
	Value   any // bool, int64, float64 or string; nil for valueless cards
	Comment string
}

// Logical builds a boolean value card.
func Logical(keyword string, v bool, comment string) Card {
	return Card{Keyword: keyword, Value: v, Comment: comment}
}

// Int builds an integer value card.
func Int(keyword string, v int64, comment string) Card {
	return Card{Keyword: keyword, Value: v, Comment: comment}
}

// Str builds a string value card.
func Str(keyword string, v string, comment string) Card {
	return Card{Keyword: keyword, Value: v, Comment: comment}
}

// End builds the END card that terminates a header.
func End() Card {
	return Card{Keyword: "END"}
}

// IsEnd reports whether this is the END card.
func (c Card) IsEnd() bool {
	return c.Keyword == "END"
}

// Bool returns the card value as a logical.
func (c Card) Bool() (bool, error) {
	v, ok := c.Value.(bool)
	if !ok {
		return false, fmt.Errorf("%s: %w", c.Keyword, errNotType(c, "logical"))
	}
	return v, nil
}

// IntValue returns the card value as an integer.
func (c Card) IntValue() (int64, error) {
	v, ok := c.Value.(int64)
	if !ok {
		return 0, fmt.Errorf("%s: %w", c.Keyword, errNotType(c, "integer"))
	}
	return v, nil
}

// Text returns the card value as a string.
func (c Card) Text() (string, error) {
	v, ok := c.Value.(string)
	if !ok {
		return "", fmt.Errorf("%s: %w", c.Keyword, errNotType(c, "string"))
	}
	return v, nil
}

func errNotType(c Card, want string) error {
	if c.Value == nil {
		return ErrNoValue
	}
	return fmt.Errorf("value %v is not a %s", c.Value, want)
}

// Encode serializes the card into its 80-byte form.
func (c Card) Encode() []byte {
	var b strings.Builder
	switch v := c.Value.(type) {
	case nil:
		b.WriteString(c.Keyword)
	case bool:
		lv := "F"
		if v {
			lv = "T"
		}
		fmt.Fprintf(&b, "%-8s= %20s", c.Keyword, lv)
	case int64:
		fmt.Fprintf(&b, "%-8s= %20d", c.Keyword, v)
	case float64:
		fmt.Fprintf(&b, "%-8s= %20s", c.Keyword, strconv.FormatFloat(v, 'G', -1, 64))
	case string:
		fmt.Fprintf(&b, "%-8s= '%s'", c.Keyword, strings.ReplaceAll(v, "'", "''"))
	}
	if c.Comment != "" && c.Value != nil {
		b.WriteString(" / ")
		b.WriteString(c.Comment)
	}
	out := make([]byte, Size)
	for i := range out {
		out[i] = ' '
	}
	copy(out, b.String())
	return out
}

// Parse decodes one 80-byte card.
func Parse(raw []byte) (Card, error) {
	if len(raw) != Size {
		return Card{}, fmt.Errorf("card is %d bytes, want %d", len(raw), Size)
	}
	keyword := strings.TrimRight(string(raw[:8]), " ")

	// Valueless cards: END, COMMENT, HISTORY, blank keyword, or anything
	// without the "= " value indicator.
	if keyword == "END" || keyword == "COMMENT" || keyword == "HISTORY" ||
		keyword == "" || string(raw[8:10]) != "= " {
		return Card{Keyword: keyword, Comment: strings.TrimSpace(string(raw[8:]))}, nil
	}

	body := string(raw[10:])
	value, comment, err := splitValue(body)
	if err != nil {
		return Card{}, fmt.Errorf("%s: %w", keyword, err)
	}
	return Card{Keyword: keyword, Value: value, Comment: comment}, nil
}

// splitValue separates the value field from the trailing comment and
// decodes the value into its Go type.
func splitValue(body string) (any, string, error) {
	trimmed := strings.TrimLeft(body, " ")
	if trimmed == "" {
		return nil, "", nil
	}

	if trimmed[0] == '\'' {
		// Quoted string, with '' as the embedded-quote escape.
		var sb strings.Builder
		i := 1
		for {
			if i >= len(trimmed) {
				return nil, "", errors.New("unterminated string value")
			}
			if trimmed[i] == '\'' {
				if i+1 < len(trimmed) && trimmed[i+1] == '\'' {
					sb.WriteByte('\'')
					i += 2
					continue
				}
				break
			}
			sb.WriteByte(trimmed[i])
			i++
		}
		rest := trimmed[i+1:]
		return strings.TrimRight(sb.String(), " "), trimComment(rest), nil
	}

	value := trimmed
	comment := ""
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		value = trimmed[:idx]
		comment = strings.TrimSpace(trimmed[idx+1:])
	}
	value = strings.TrimSpace(value)

	switch value {
	case "":
		return nil, comment, nil
	case "T":
		return true, comment, nil
	case "F":
		return false, comment, nil
	}
	if iv, err := strconv.ParseInt(value, 10, 64); err == nil {
		return iv, comment, nil
	}
	if fv, err := strconv.ParseFloat(strings.ReplaceAll(value, "D", "E"), 64); err == nil {
		return fv, comment, nil
	}
	return nil, "", fmt.Errorf("unparseable value %q", value)
}

func trimComment(rest string) string {
	rest = strings.TrimLeft(rest, " ")
	rest = strings.TrimPrefix(rest, "/")
	return strings.TrimSpace(rest)
}
