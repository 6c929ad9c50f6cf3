package card

import "github.com/ratel-online/durak/consts"

// Card identifies one of the 36 cards of a Durak deck. suit = card/9,
// rank = card%9, ranks ascending 6,7,8,9,10,J,Q,K,A.
type Card int

const None Card = -1

var suitSymbols = []string{"♠", "♣", "♦", "♥"}
var rankSymbols = []string{"6", "7", "8", "9", "10", "J", "Q", "K", "A"}

func (c Card) Valid() bool {
	return c >= 0 && c < consts.NumCards
}

func (c Card) Suit() int {
	return int(c) / 9
}

func (c Card) Rank() int {
	return int(c) % 9
}

func (c Card) String() string {
	if !c.Valid() {
		return "None"
	}
	return rankSymbols[c.Rank()] + suitSymbols[c.Suit()]
}

// All returns the 36 cards in canonical order.
func All() []Card {
	cards := make([]Card, consts.NumCards)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}
