package render_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/durak/consts"
	"github.com/ratel-online/durak/game"
	"github.com/ratel-online/durak/render"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestAction(t *testing.T) {
	require.Equal(t, "TAKE_CARDS", render.Action(consts.ActionTakeCards))
	require.Equal(t, "FINISH_ATTACK", render.Action(consts.ActionFinishAttack))
	require.Equal(t, "FINISH_DEFENSE", render.Action(consts.ActionFinishDefense))
	require.Equal(t, "6♠", render.Action(0))
}

func TestScreen(t *testing.T) {
	state := game.NewState(rand.New(rand.NewSource(1)))
	for state.IsChanceNode() {
		require.NoError(t, state.Apply(state.ChanceOutcomes()[0].Action))
	}

	screen := render.Screen(state)
	require.Contains(t, screen, "Phase ATTACK")
	require.Contains(t, screen, "Trump: "+state.TrumpCard().String())
	require.Contains(t, screen, "Player 0 hand:")
	require.Contains(t, screen, "Player 1 hand:")
	require.Contains(t, screen, "Stock 24, discarded 0")
}

func TestConsoleListensToEvents(t *testing.T) {
	buf := bytes.Buffer{}
	render.NewConsole(&buf).Listen()

	state := game.NewState(rand.New(rand.NewSource(2)))
	for state.IsChanceNode() {
		require.NoError(t, state.Apply(state.ChanceOutcomes()[0].Action))
	}
	require.Contains(t, buf.String(), "attacks first")

	attack := state.LegalActions()[0]
	require.NoError(t, state.Apply(attack))
	require.Contains(t, buf.String(), "attacks with")
}
