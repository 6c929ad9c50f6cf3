package game

import (
	"strings"

	"github.com/ratel-online/durak/card"
)

// Pair is one attack card on the table and the card covering it, if
// any.
type Pair struct {
	Attack  card.Card
	Defense card.Card
}

func (p Pair) Covered() bool {
	return p.Defense != card.None
}

func (p Pair) String() string {
	if !p.Covered() {
		return p.Attack.String() + "->?"
	}
	return p.Attack.String() + "->" + p.Defense.String()
}

// Table is the ordered sequence of attack/defense pairs of the current
// round. Entries are covered strictly in table order: every query and
// mutation that touches an uncovered entry goes through FirstUncovered.
type Table struct {
	pairs []Pair
}

func NewTable() *Table {
	return &Table{pairs: make([]Pair, 0, 6)}
}

func (t *Table) Place(attack card.Card) {
	t.pairs = append(t.pairs, Pair{Attack: attack, Defense: card.None})
}

// FirstUncovered returns the index and attack card of the earliest
// uncovered entry, or (-1, None) when everything is covered.
func (t *Table) FirstUncovered() (int, card.Card) {
	for i, pair := range t.pairs {
		if !pair.Covered() {
			return i, pair.Attack
		}
	}
	return -1, card.None
}

// CoverFirst sets the defense card of the earliest uncovered entry and
// reports whether the table is now fully covered.
func (t *Table) CoverFirst(defense card.Card) bool {
	index, _ := t.FirstUncovered()
	if index >= 0 {
		t.pairs[index].Defense = defense
	}
	return t.AllCovered()
}

func (t *Table) AllCovered() bool {
	index, _ := t.FirstUncovered()
	return index < 0
}

// Ranks reports every rank present among attack and defense cards.
func (t *Table) Ranks() map[int]bool {
	ranks := make(map[int]bool)
	for _, pair := range t.pairs {
		ranks[pair.Attack.Rank()] = true
		if pair.Covered() {
			ranks[pair.Defense.Rank()] = true
		}
	}
	return ranks
}

// Cards returns every card on the table, attacks and defenses alike.
func (t *Table) Cards() []card.Card {
	cards := make([]card.Card, 0, len(t.pairs)*2)
	for _, pair := range t.pairs {
		cards = append(cards, pair.Attack)
		if pair.Covered() {
			cards = append(cards, pair.Defense)
		}
	}
	return cards
}

func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, len(t.pairs))
	copy(pairs, t.pairs)
	return pairs
}

func (t *Table) Size() int {
	return len(t.pairs)
}

func (t *Table) Empty() bool {
	return len(t.pairs) == 0
}

func (t *Table) Clear() {
	t.pairs = t.pairs[:0]
}

func (t *Table) Clone() *Table {
	return &Table{pairs: t.Pairs()}
}

func (t *Table) String() string {
	parts := make([]string, 0, len(t.pairs))
	for _, pair := range t.pairs {
		parts = append(parts, pair.String())
	}
	return strings.Join(parts, ", ")
}
