package game

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"

	"github.com/ratel-online/durak/card"
	"github.com/ratel-online/durak/consts"
	"github.com/ratel-online/durak/event"
)

// Outcome is one branch of a chance node. The deal sequence is forced
// by the shuffle, so every outcome carries probability 1.
type Outcome struct {
	Action int
	Prob   float64
}

// State is the full round state of a two-player Durak game: both
// hands, the table, the discard pile, the stock and its cursor, trump,
// phase and role assignment. A State is owned exclusively by its
// caller; independent game trees require Clone.
type State struct {
	deck         *Deck
	hands        [consts.NumPlayers]*Hand
	table        *Table
	discard      []card.Card
	trumpSuit    int
	trumpCard    card.Card
	cardsDealt   int
	attacker     int
	defender     int
	roundStarter int
	phase        consts.Phase
	gameOver     bool
	history      []int
}

// NewState creates a fresh game, shuffling the deck with rnd. The
// first 13 actions are the forced chance sequence: 12 alternating
// deals followed by the trump reveal.
func NewState(rnd *rand.Rand) *State {
	return newState(NewDeck(rnd))
}

// NewStateFromDeck creates a game over a fixed deck order, for
// deterministic tests and history replay.
func NewStateFromDeck(order []card.Card) (*State, error) {
	deck, err := NewOrderedDeck(order)
	if err != nil {
		return nil, err
	}
	return newState(deck), nil
}

func newState(deck *Deck) *State {
	state := &State{
		deck:      deck,
		table:     NewTable(),
		discard:   make([]card.Card, 0, consts.NumCards),
		trumpSuit: -1,
		trumpCard: card.None,
		attacker:  0,
		defender:  1,
		phase:     consts.PhaseChance,
		history:   make([]int, 0, 64),
	}
	for p := 0; p < consts.NumPlayers; p++ {
		state.hands[p] = NewHand()
	}
	return state
}

// Replay reconstructs a state by applying actions in order over the
// given deck order, per the history contract.
func Replay(order []card.Card, actions []int) (*State, error) {
	state, err := NewStateFromDeck(order)
	if err != nil {
		return nil, err
	}
	for _, action := range actions {
		if err := state.Apply(action); err != nil {
			return nil, consts.ErrorsReplayActionInvalid
		}
	}
	return state, nil
}

// CurrentPlayer returns the acting player, consts.PlayerChance during
// the deal, or consts.PlayerTerminal once the game is over.
func (s *State) CurrentPlayer() int {
	if s.gameOver {
		return consts.PlayerTerminal
	}
	switch s.phase {
	case consts.PhaseChance:
		return consts.PlayerChance
	case consts.PhaseAttack, consts.PhaseAdditional:
		return s.attacker
	default:
		return s.defender
	}
}

func (s *State) IsChanceNode() bool {
	return s.phase == consts.PhaseChance
}

func (s *State) IsTerminal() bool {
	return s.gameOver
}

// ChanceOutcomes lists the forced reveal for the current chance node:
// the card at the cursor during the deal, then the bottom card as the
// trump reveal.
func (s *State) ChanceOutcomes() []Outcome {
	if !s.IsChanceNode() {
		return nil
	}
	if s.cardsDealt < consts.CardsPerPlayer*consts.NumPlayers {
		return []Outcome{{Action: int(s.deck.Peek()), Prob: 1.0}}
	}
	if s.trumpCard == card.None {
		return []Outcome{{Action: int(s.deck.Bottom()), Prob: 1.0}}
	}
	return nil
}

// LegalActions lists the actions available to the current player, in
// ascending action order. Chance and terminal nodes have none.
func (s *State) LegalActions() []int {
	if s.gameOver || s.IsChanceNode() {
		return nil
	}
	return s.legalActions(s.CurrentPlayer())
}

func (s *State) legalActions(player int) []int {
	actions := make([]int, 0, consts.CardsPerPlayer+1)
	hand := s.hands[player]

	switch {
	case (s.phase == consts.PhaseAttack || s.phase == consts.PhaseAdditional) && player == s.attacker:
		if s.table.Empty() {
			// First strike carries no rank restriction.
			for _, c := range hand.Cards() {
				actions = append(actions, int(c))
			}
		} else if s.table.Size() < consts.CardsPerPlayer && !s.hands[s.defender].Empty() {
			ranks := s.table.Ranks()
			for _, c := range hand.Cards() {
				if ranks[c.Rank()] {
					actions = append(actions, int(c))
				}
			}
		}
		if !s.table.Empty() {
			actions = append(actions, consts.ActionFinishAttack)
		}
	case s.phase == consts.PhaseDefense && player == s.defender:
		index, attack := s.table.FirstUncovered()
		if index < 0 {
			actions = append(actions, consts.ActionFinishDefense)
		} else {
			actions = append(actions, consts.ActionTakeCards)
			for _, c := range hand.Cards() {
				if CanDefend(s.trumpSuit, c, attack) {
					actions = append(actions, int(c))
				}
			}
		}
	}

	sort.Ints(actions)
	return actions
}

// Apply advances the state by one action. The action must come from
// LegalActions (or ChanceOutcomes at a chance node); anything else is
// rejected with consts.ErrorsIllegalAction and the state is left
// untouched.
func (s *State) Apply(action int) error {
	if s.gameOver {
		return consts.ErrorsGameOver
	}
	if s.IsChanceNode() {
		if err := s.applyChance(action); err != nil {
			return err
		}
		s.history = append(s.history, action)
		return nil
	}
	// FINISH_DEFENSE with uncovered entries is never offered, but it
	// is still accepted as a concession (same effect as TAKE_CARDS).
	concede := action == consts.ActionFinishDefense && s.phase == consts.PhaseDefense
	if !concede && !containsAction(s.legalActions(s.CurrentPlayer()), action) {
		return consts.ErrorsIllegalAction
	}

	switch action {
	case consts.ActionTakeCards:
		s.defenderTakesCards()
	case consts.ActionFinishAttack:
		s.attackerFinishesAttack()
	case consts.ActionFinishDefense:
		s.defenderFinishesDefense()
	default:
		s.applyCard(card.Card(action))
	}
	s.history = append(s.history, action)
	s.checkGameOver()
	return nil
}

func (s *State) applyChance(outcome int) error {
	forced := s.ChanceOutcomes()
	if len(forced) == 0 || forced[0].Action != outcome {
		return consts.ErrorsChanceOutcomeInvalid
	}
	if s.cardsDealt < consts.CardsPerPlayer*consts.NumPlayers {
		player := s.cardsDealt % consts.NumPlayers
		s.hands[player].Add(s.deck.Draw())
		s.cardsDealt++
		return nil
	}
	s.trumpCard = card.Card(outcome)
	s.trumpSuit = s.trumpCard.Suit()
	s.decideFirstAttacker()
	s.phase = consts.PhaseAttack
	s.roundStarter = s.attacker
	event.TrumpRevealed.Emit(event.TrumpRevealedPayload{
		Card:     s.trumpCard,
		Attacker: s.attacker,
	})
	return nil
}

// decideFirstAttacker gives the first attack to the holder of the
// lowest-rank trump card, defaulting to player 0 when neither player
// holds trump.
func (s *State) decideFirstAttacker() {
	lowest := card.None
	who := 0
	for p := 0; p < consts.NumPlayers; p++ {
		for _, c := range s.hands[p].Cards() {
			if c.Suit() != s.trumpSuit {
				continue
			}
			if lowest == card.None || c.Rank() < lowest.Rank() {
				lowest = c
				who = p
			}
		}
	}
	s.attacker = who
	s.defender = 1 - who
}

func (s *State) applyCard(c card.Card) {
	player := s.CurrentPlayer()
	switch {
	case (s.phase == consts.PhaseAttack || s.phase == consts.PhaseAdditional) && player == s.attacker:
		s.hands[player].Remove(c)
		s.table.Place(c)
		s.phase = consts.PhaseAttack
		event.AttackPlaced.Emit(event.AttackPlacedPayload{Player: player, Card: c})
	case s.phase == consts.PhaseDefense && player == s.defender:
		_, attack := s.table.FirstUncovered()
		s.hands[player].Remove(c)
		if s.table.CoverFirst(c) {
			s.phase = consts.PhaseAdditional
		}
		event.DefenseCovered.Emit(event.DefenseCoveredPayload{Player: player, Attack: attack, Defense: c})
	}
}

// defenderTakesCards ends the round with the defender absorbing the
// whole table. Roles stay as they are.
func (s *State) defenderTakesCards() {
	taken := s.table.Cards()
	s.hands[s.defender].Add(taken...)
	s.table.Clear()
	s.phase = consts.PhaseAttack
	s.refillHands()
	event.CardsTaken.Emit(event.CardsTakenPayload{Player: s.defender, Cards: taken})
	event.RoundFinished.Emit(event.RoundFinishedPayload{
		Attacker: s.attacker,
		Defender: s.defender,
		Swapped:  false,
	})
}

func (s *State) attackerFinishesAttack() {
	if s.table.Empty() {
		return
	}
	s.phase = consts.PhaseDefense
}

// defenderFinishesDefense resolves the round. With any entry still
// uncovered it is a concession and behaves exactly like TAKE_CARDS;
// with everything covered the table goes to the discard, roles swap
// and hands refill, new attacker drawing first.
func (s *State) defenderFinishesDefense() {
	if !s.table.AllCovered() {
		s.defenderTakesCards()
		return
	}
	s.discard = append(s.discard, s.table.Cards()...)
	s.table.Clear()
	s.attacker, s.defender = s.defender, s.attacker
	s.refillHands()
	s.phase = consts.PhaseAttack
	event.RoundFinished.Emit(event.RoundFinishedPayload{
		Attacker: s.attacker,
		Defender: s.defender,
		Swapped:  true,
	})
}

// refillHands deals alternately, attacker first, skipping a player at
// 6 cards, until both are at 6 or the stock runs out. The revealed
// trump sits in the final stock slot and is the last card drawn.
func (s *State) refillHands() {
	order := [2]int{s.attacker, s.defender}
	for !s.deck.Exhausted() {
		for _, p := range order {
			if s.hands[p].Size() < consts.CardsPerPlayer && !s.deck.Exhausted() {
				s.hands[p].Add(s.deck.Draw())
			}
		}
		if s.hands[order[0]].Size() >= consts.CardsPerPlayer && s.hands[order[1]].Size() >= consts.CardsPerPlayer {
			break
		}
	}
}

func (s *State) checkGameOver() {
	if (s.hands[0].Empty() || s.hands[1].Empty()) && s.deck.Exhausted() {
		s.gameOver = true
		return
	}
	// Both hands empty mid-game is a round boundary, not a terminal:
	// refill and keep playing.
	if s.hands[0].Empty() && s.hands[1].Empty() {
		s.refillHands()
	}
}

// Returns is the terminal payoff vector. A lone card-holder loses;
// both hands empty with an exhausted stock crowns the final round's
// attacker; the remaining unreachable configurations fall back to a
// draw rather than erroring.
func (s *State) Returns() []float64 {
	returns := make([]float64, consts.NumPlayers)
	if !s.gameOver {
		return returns
	}
	withCards := make([]int, 0, consts.NumPlayers)
	for p := 0; p < consts.NumPlayers; p++ {
		if !s.hands[p].Empty() {
			withCards = append(withCards, p)
		}
	}
	switch len(withCards) {
	case 1:
		loser := withCards[0]
		returns[loser] = -1.0
		returns[1-loser] = 1.0
	case 0:
		if s.deck.Exhausted() {
			returns[s.attacker] = 1.0
			returns[s.defender] = -1.0
		}
	}
	return returns
}

func (s *State) Phase() consts.Phase {
	return s.phase
}

func (s *State) Attacker() int {
	return s.attacker
}

func (s *State) Defender() int {
	return s.defender
}

func (s *State) RoundStarter() int {
	return s.roundStarter
}

// TrumpSuit is -1 until the reveal.
func (s *State) TrumpSuit() int {
	return s.trumpSuit
}

// TrumpCard is card.None until the reveal.
func (s *State) TrumpCard() card.Card {
	return s.trumpCard
}

func (s *State) Hand(player int) []card.Card {
	return s.hands[player].Cards()
}

func (s *State) HandSize(player int) int {
	return s.hands[player].Size()
}

func (s *State) TablePairs() []Pair {
	return s.table.Pairs()
}

func (s *State) Discard() []card.Card {
	discard := make([]card.Card, len(s.discard))
	copy(discard, s.discard)
	return discard
}

func (s *State) DiscardSize() int {
	return len(s.discard)
}

func (s *State) DeckRemaining() int {
	return s.deck.Remaining()
}

// DeckOrder returns the full shuffled order, for persisting alongside
// History so a game can be replayed elsewhere.
func (s *State) DeckOrder() []card.Card {
	return s.deck.Order()
}

// History is the ordered list of every applied action, chance
// outcomes included.
func (s *State) History() []int {
	history := make([]int, len(s.history))
	copy(history, s.history)
	return history
}

// Clone deep-copies the state so callers can branch game trees
// without sharing any mutable structure.
func (s *State) Clone() *State {
	clone := &State{
		deck:         s.deck.Clone(),
		table:        s.table.Clone(),
		discard:      append(make([]card.Card, 0, cap(s.discard)), s.discard...),
		trumpSuit:    s.trumpSuit,
		trumpCard:    s.trumpCard,
		cardsDealt:   s.cardsDealt,
		attacker:     s.attacker,
		defender:     s.defender,
		roundStarter: s.roundStarter,
		phase:        s.phase,
		gameOver:     s.gameOver,
		history:      s.History(),
	}
	for p := 0; p < consts.NumPlayers; p++ {
		clone.hands[p] = s.hands[p].Clone()
	}
	return clone
}

func (s *State) String() string {
	buf := bytes.Buffer{}
	if s.phase == consts.PhaseChance {
		trump := "??"
		if s.trumpCard != card.None {
			trump = s.trumpCard.String()
		}
		buf.WriteString(fmt.Sprintf("Chance node: dealing... cards_dealt=%d, trump=%s", s.cardsDealt, trump))
		return buf.String()
	}
	buf.WriteString(fmt.Sprintf("Attacker=%d, Defender=%d\n", s.attacker, s.defender))
	buf.WriteString(fmt.Sprintf("Phase=%s, Discarded=%d, DeckRemaining=%d\n", s.phase, len(s.discard), s.deck.Remaining()))
	if s.trumpCard != card.None {
		buf.WriteString(fmt.Sprintf("Trump=%s (suit=%d)\n", s.trumpCard, s.trumpSuit))
	}
	for p := 0; p < consts.NumPlayers; p++ {
		buf.WriteString(fmt.Sprintf("Player %d hand: %v\n", p, s.hands[p].Sorted()))
	}
	buf.WriteString("Table: " + s.table.String())
	return buf.String()
}

func containsAction(actions []int, action int) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
