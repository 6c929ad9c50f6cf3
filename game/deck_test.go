package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/durak/card"
	"github.com/ratel-online/durak/consts"
	"github.com/ratel-online/durak/game"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := game.NewDeck(rand.New(rand.NewSource(1)))
	require.Equal(t, consts.NumCards, deck.Remaining())
	require.ElementsMatch(t, card.All(), deck.Order())
}

func TestNewOrderedDeck(t *testing.T) {
	t.Run("accepts_a_full_permutation", func(t *testing.T) {
		deck, err := game.NewOrderedDeck(card.All())
		require.NoError(t, err)
		require.Equal(t, card.Card(0), deck.Peek())
		require.Equal(t, card.Card(35), deck.Bottom())
	})

	t.Run("rejects_short_orders", func(t *testing.T) {
		_, err := game.NewOrderedDeck(card.All()[:10])
		require.Equal(t, consts.ErrorsDeckOrderInvalid, err)
	})

	t.Run("rejects_duplicates", func(t *testing.T) {
		order := card.All()
		order[0] = order[1]
		_, err := game.NewOrderedDeck(order)
		require.Equal(t, consts.ErrorsDeckOrderInvalid, err)
	})

	t.Run("rejects_out_of_range_cards", func(t *testing.T) {
		order := card.All()
		order[0] = 99
		_, err := game.NewOrderedDeck(order)
		require.Equal(t, consts.ErrorsDeckOrderInvalid, err)
	})
}

func TestDeckDraw(t *testing.T) {
	deck, err := game.NewOrderedDeck(card.All())
	require.NoError(t, err)

	require.Equal(t, card.Card(0), deck.Draw())
	require.Equal(t, card.Card(1), deck.Draw())
	require.Equal(t, 34, deck.Remaining())
	require.Equal(t, card.Card(2), deck.Peek())

	for !deck.Exhausted() {
		deck.Draw()
	}
	require.Equal(t, 0, deck.Remaining())
	require.Equal(t, card.None, deck.Draw())
	require.Equal(t, card.None, deck.Peek())
}

func TestDeckStock(t *testing.T) {
	deck, err := game.NewOrderedDeck(card.All())
	require.NoError(t, err)
	deck.Draw()
	deck.Draw()
	stock := deck.Stock()
	require.Len(t, stock, 34)
	require.Equal(t, card.Card(2), stock[0])
}

func TestDeckClone(t *testing.T) {
	deck, err := game.NewOrderedDeck(card.All())
	require.NoError(t, err)
	deck.Draw()
	clone := deck.Clone()
	clone.Draw()
	require.Equal(t, 35, deck.Remaining())
	require.Equal(t, 34, clone.Remaining())
}
