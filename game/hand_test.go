package game_test

import (
	"testing"

	"github.com/ratel-online/durak/card"
	"github.com/ratel-online/durak/game"
	"github.com/stretchr/testify/require"
)

func TestHandAdd(t *testing.T) {
	hand := game.NewHand()
	hand.Add(3, 17)
	require.ElementsMatch(t, []card.Card{3, 17}, hand.Cards())
}

func TestHandEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.Add(3)
	require.False(t, hand.Empty())
}

func TestHandRemove(t *testing.T) {
	t.Run("removes_an_existing_card", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(3, 17, 25)
		hand.Remove(17)
		require.ElementsMatch(t, []card.Card{3, 25}, hand.Cards())
	})

	t.Run("does_nothing_if_card_is_not_in_hand", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(3, 17)
		hand.Remove(25)
		require.ElementsMatch(t, []card.Card{3, 17}, hand.Cards())
	})
}

func TestHandContains(t *testing.T) {
	hand := game.NewHand()
	hand.Add(3, 17)
	require.True(t, hand.Contains(17))
	require.False(t, hand.Contains(25))
}

func TestHandSorted(t *testing.T) {
	hand := game.NewHand()
	hand.Add(25, 3, 17)
	require.Equal(t, []card.Card{3, 17, 25}, hand.Sorted())
	// Enumeration order of the hand itself is untouched.
	require.ElementsMatch(t, []card.Card{25, 3, 17}, hand.Cards())
}

func TestHandClone(t *testing.T) {
	hand := game.NewHand()
	hand.Add(3, 17)
	clone := hand.Clone()
	clone.Remove(3)
	require.Equal(t, 2, hand.Size())
	require.Equal(t, 1, clone.Size())
}
