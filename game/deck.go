package game

import (
	"math/rand"

	"github.com/ratel-online/durak/card"
	"github.com/ratel-online/durak/consts"
)

// Deck is the shuffled stock. The order is fixed at creation and a
// cursor marks the next undealt card; the cursor only ever advances.
// The last slot holds the trump reveal and is the last card anyone
// can draw.
type Deck struct {
	cards []card.Card
	pos   int
}

func NewDeck(rnd *rand.Rand) *Deck {
	cards := card.All()
	rnd.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return &Deck{cards: cards}
}

// NewOrderedDeck builds a deck with a caller-fixed order, for replays
// and deterministic tests. The order must be a permutation of all 36
// cards.
func NewOrderedDeck(cards []card.Card) (*Deck, error) {
	if len(cards) != consts.NumCards {
		return nil, consts.ErrorsDeckOrderInvalid
	}
	seen := make(map[card.Card]bool, consts.NumCards)
	for _, c := range cards {
		if !c.Valid() || seen[c] {
			return nil, consts.ErrorsDeckOrderInvalid
		}
		seen[c] = true
	}
	copied := make([]card.Card, len(cards))
	copy(copied, cards)
	return &Deck{cards: copied}, nil
}

// Peek returns the card at the cursor without advancing it.
func (d *Deck) Peek() card.Card {
	if d.Exhausted() {
		return card.None
	}
	return d.cards[d.pos]
}

func (d *Deck) Draw() card.Card {
	if d.Exhausted() {
		return card.None
	}
	c := d.cards[d.pos]
	d.pos++
	return c
}

// Bottom is the reserved trump-reveal slot at the end of the order.
func (d *Deck) Bottom() card.Card {
	return d.cards[len(d.cards)-1]
}

func (d *Deck) Remaining() int {
	return len(d.cards) - d.pos
}

func (d *Deck) Exhausted() bool {
	return d.pos >= len(d.cards)
}

// Stock returns the undealt cards in draw order.
func (d *Deck) Stock() []card.Card {
	stock := make([]card.Card, d.Remaining())
	copy(stock, d.cards[d.pos:])
	return stock
}

// Order returns the full shuffled order, dealt cards included.
func (d *Deck) Order() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Clone() *Deck {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return &Deck{cards: cards, pos: d.pos}
}
