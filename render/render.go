package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/ratel-online/durak/card"
	"github.com/ratel-online/durak/consts"
	"github.com/ratel-online/durak/game"
)

var red = color.New(color.FgHiRed).SprintFunc()
var white = color.New(color.FgHiWhite).SprintFunc()
var yellow = color.New(color.FgHiYellow).SprintFunc()

// Card paints a card for terminal display, red for diamonds and
// hearts.
func Card(c card.Card) string {
	if !c.Valid() {
		return white("--")
	}
	if c.Suit() >= 2 {
		return red(c.String())
	}
	return white(c.String())
}

// Action names a raw action id for display: protocol actions by name,
// everything else as the card it plays.
func Action(action int) string {
	if name, ok := consts.ActionNames[action]; ok {
		return name
	}
	return Card(card.Card(action))
}

func Cards(cards []card.Card) string {
	buf := bytes.Buffer{}
	for i, c := range cards {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(Card(c))
	}
	return buf.String()
}

func Pair(pair game.Pair) string {
	if !pair.Covered() {
		return Card(pair.Attack) + "->?"
	}
	return Card(pair.Attack) + "->" + Card(pair.Defense)
}

// Screen composes the full game view for the terminal.
func Screen(state *game.State) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Phase %s, attacker %d, defender %d\n", state.Phase(), state.Attacker(), state.Defender()))
	if trump := state.TrumpCard(); trump != card.None {
		buf.WriteString(fmt.Sprintf("Trump: %s\n", yellow(trump.String())))
	}
	for p := 0; p < consts.NumPlayers; p++ {
		buf.WriteString(fmt.Sprintf("Player %d hand: %s\n", p, Cards(state.Hand(p))))
	}
	pairs := state.TablePairs()
	buf.WriteString("Table:")
	for _, pair := range pairs {
		buf.WriteString(" " + Pair(pair))
	}
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("Stock %d, discarded %d\n", state.DeckRemaining(), state.DiscardSize()))
	return buf.String()
}
