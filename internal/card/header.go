package card

import (
	"errors"
	"fmt"
)

// ErrKeywordNotFound is returned when a required keyword is absent.
var ErrKeywordNotFound = errors.New("keyword not found")

// Header is an ordered list of cards, as they appear in the file. The END
// card is not stored; it is consumed on parse and emitted on encode.
type Header struct {
	cards []Card
}

// Append adds a card to the end of the header.
func (h *Header) Append(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in file order.
func (h *Header) Cards() []Card {
	return h.cards
}

// Get returns the first card with the given keyword.
func (h *Header) Get(keyword string) (Card, bool) {
	for _, c := range h.cards {
		if c.Keyword == keyword {
			return c, true
		}
	}
	return Card{}, false
}

// Has reports whether the header contains the given keyword.
func (h *Header) Has(keyword string) bool {
	_, ok := h.Get(keyword)
	return ok
}

// IntValue returns the integer value of the given keyword.
func (h *Header) IntValue(keyword string) (int64, error) {
	c, ok := h.Get(keyword)
	if !ok {
		return 0, fmt.Errorf("%s: %w", keyword, ErrKeywordNotFound)
	}
	return c.IntValue()
}

// Text returns the string value of the given keyword.
func (h *Header) Text(keyword string) (string, error) {
	c, ok := h.Get(keyword)
	if !ok {
		return "", fmt.Errorf("%s: %w", keyword, ErrKeywordNotFound)
	}
	return c.Text()
}

// Logical returns the boolean value of the given keyword.
func (h *Header) Logical(keyword string) (bool, error) {
	c, ok := h.Get(keyword)
	if !ok {
		return false, fmt.Errorf("%s: %w", keyword, ErrKeywordNotFound)
	}
	return c.Bool()
}
