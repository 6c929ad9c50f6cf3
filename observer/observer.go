package observer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ratel-online/durak/card"
	"github.com/ratel-online/durak/consts"
	"github.com/ratel-online/durak/game"
)

// Supported configuration keys. Anything else is rejected.
const (
	ParamRevealOwnHand = "reveal_own_hand"
	ParamRevealTable   = "reveal_table"
)

type segment struct {
	name string
	size int
}

// Observer projects a state into a fixed-offset feature vector for one
// viewing player. The buffer is allocated once and refreshed in place
// by SetFrom; the segment layout is fixed by the configuration at
// construction time.
type Observer struct {
	revealOwnHand bool
	revealTable   bool
	tensor        []float32
	segments      map[string][]float32
}

// New builds an observer from a configuration map. Only the reveal
// flags are supported; unknown keys fail with a configuration error.
func New(params map[string]bool) (*Observer, error) {
	o := &Observer{}
	for key, value := range params {
		switch key {
		case ParamRevealOwnHand:
			o.revealOwnHand = value
		case ParamRevealTable:
			o.revealTable = value
		default:
			return nil, consts.ErrorsObserverParamsInvalid
		}
	}

	layout := []segment{
		{"player", consts.NumPlayers},
		{"trump_suit", 4},
		{"phase", 4},
		{"deck_size", 1},
		{"attacker_ind", 1},
		{"defender_ind", 1},
		{"trump_card", consts.NumCards},
	}
	if o.revealOwnHand {
		layout = append(layout, segment{"my_cards", consts.NumCards})
	}
	if o.revealTable {
		layout = append(layout, segment{"table_attack", consts.NumCards})
		layout = append(layout, segment{"table_defense", consts.NumCards})
	}

	total := 0
	for _, seg := range layout {
		total += seg.size
	}
	o.tensor = make([]float32, total)
	o.segments = make(map[string][]float32, len(layout))
	offset := 0
	for _, seg := range layout {
		o.segments[seg.name] = o.tensor[offset : offset+seg.size]
		offset += seg.size
	}
	return o, nil
}

// Tensor returns the underlying feature buffer. SetFrom rewrites it in
// place, so consumers holding the slice see each refresh.
func (o *Observer) Tensor() []float32 {
	return o.tensor
}

// Segment returns the named slice of the feature buffer, or nil if the
// configuration excludes it.
func (o *Observer) Segment(name string) []float32 {
	return o.segments[name]
}

// SetFrom refreshes the feature buffer from state as seen by player.
func (o *Observer) SetFrom(state *game.State, player int) {
	for i := range o.tensor {
		o.tensor[i] = 0
	}

	o.segments["player"][player] = 1
	if suit := state.TrumpSuit(); suit >= 0 {
		o.segments["trump_suit"][suit] = 1
	}
	if trump := state.TrumpCard(); trump != card.None {
		o.segments["trump_card"][trump] = 1
	}
	o.segments["phase"][state.Phase()] = 1
	o.segments["deck_size"][0] = float32(state.DeckRemaining()) / float32(consts.NumCards)
	if player == state.Attacker() {
		o.segments["attacker_ind"][0] = 1
	}
	if player == state.Defender() {
		o.segments["defender_ind"][0] = 1
	}

	if o.revealOwnHand {
		myCards := o.segments["my_cards"]
		for _, c := range state.Hand(player) {
			myCards[c] = 1
		}
	}
	if o.revealTable {
		attack := o.segments["table_attack"]
		defense := o.segments["table_defense"]
		for _, pair := range state.TablePairs() {
			attack[pair.Attack] = 1
			if pair.Covered() {
				defense[pair.Defense] = 1
			}
		}
	}
}

// StringFrom renders the state as seen by player: phase, trump, roles,
// own hand, table and remaining stock.
func (o *Observer) StringFrom(state *game.State, player int) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Player %d viewpoint\n", player))
	buf.WriteString(fmt.Sprintf("Phase: %s\n", state.Phase()))
	if trump := state.TrumpCard(); trump != card.None {
		buf.WriteString(fmt.Sprintf("Trump card: %s\n", trump))
	}
	buf.WriteString(fmt.Sprintf("Attacker=%d, Defender=%d\n", state.Attacker(), state.Defender()))

	hand := state.Hand(player)
	sort.Slice(hand, func(i, j int) bool { return hand[i] < hand[j] })
	buf.WriteString(fmt.Sprintf("My hand: %v\n", hand))

	pairs := state.TablePairs()
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, pair.String())
	}
	buf.WriteString(fmt.Sprintf("Table: %v\n", parts))
	buf.WriteString(fmt.Sprintf("DeckRemaining: %d", state.DeckRemaining()))
	return buf.String()
}
