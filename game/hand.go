package game

import (
	"sort"

	"github.com/ratel-online/durak/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 8)}
}

func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Remove(c card.Card) {
	for index, cardInHand := range h.cards {
		if cardInHand == c {
			h.cards[index] = h.cards[len(h.cards)-1]
			h.cards = h.cards[:len(h.cards)-1]
			return
		}
	}
}

func (h *Hand) Contains(c card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand == c {
			return true
		}
	}
	return false
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Sorted returns the hand ordered by card id, for stable enumeration.
func (h *Hand) Sorted() []card.Card {
	cards := h.Cards()
	sort.Slice(cards, func(i, j int) bool { return cards[i] < cards[j] })
	return cards
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Clone() *Hand {
	return &Hand{cards: h.Cards()}
}
