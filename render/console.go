package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ratel-online/durak/event"
)

// Console prints game events as they are emitted. Register one with
// Listen to trace a game on the terminal.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = color.Output
	}
	return &Console{out: out}
}

// Listen subscribes the console to every game event.
func (c *Console) Listen() {
	event.TrumpRevealed.AddListener(c)
	event.AttackPlaced.AddListener(c)
	event.DefenseCovered.AddListener(c)
	event.CardsTaken.AddListener(c)
	event.RoundFinished.AddListener(c)
}

func (c *Console) OnTrumpRevealed(payload event.TrumpRevealedPayload) {
	fmt.Fprintf(c.out, "Trump is %s, player %d attacks first\n", Card(payload.Card), payload.Attacker)
}

func (c *Console) OnAttackPlaced(payload event.AttackPlacedPayload) {
	fmt.Fprintf(c.out, "Player %d attacks with %s\n", payload.Player, Card(payload.Card))
}

func (c *Console) OnDefenseCovered(payload event.DefenseCoveredPayload) {
	fmt.Fprintf(c.out, "Player %d covers %s with %s\n", payload.Player, Card(payload.Attack), Card(payload.Defense))
}

func (c *Console) OnCardsTaken(payload event.CardsTakenPayload) {
	fmt.Fprintf(c.out, "Player %d takes %s\n", payload.Player, Cards(payload.Cards))
}

func (c *Console) OnRoundFinished(payload event.RoundFinishedPayload) {
	if payload.Swapped {
		fmt.Fprintf(c.out, "Round defended, player %d now attacks\n", payload.Attacker)
		return
	}
	fmt.Fprintf(c.out, "Round over, player %d keeps attacking\n", payload.Attacker)
}
