package game

import "github.com/ratel-online/durak/card"

// CanDefend reports whether defense beats attack under trumpSuit:
// same suit and higher rank, any trump over a non-trump, or trump over
// trump with higher rank. Equal ranks never defend.
func CanDefend(trumpSuit int, defense, attack card.Card) bool {
	if defense.Suit() == attack.Suit() && defense.Rank() > attack.Rank() {
		return true
	}
	if defense.Suit() == trumpSuit && attack.Suit() != trumpSuit {
		return true
	}
	return false
}
