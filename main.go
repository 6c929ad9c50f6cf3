package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	randx "github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/durak/consts"
	"github.com/ratel-online/durak/game"
	"github.com/ratel-online/durak/render"
)

// Plays one random self-play game end to end and prints the result.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	render.NewConsole(nil).Listen()
	state := game.NewState(rand.New(rand.NewSource(time.Now().UnixNano())))
	for !state.IsTerminal() {
		var action int
		if state.CurrentPlayer() == consts.PlayerChance {
			outcomes := state.ChanceOutcomes()
			action = outcomes[0].Action
		} else {
			actions := state.LegalActions()
			action = actions[randx.Intn(len(actions))]
		}
		if err := state.Apply(action); err != nil {
			log.Error(err)
			return
		}
	}

	fmt.Println(render.Screen(state))
	returns := state.Returns()
	fmt.Printf("Returns: player 0 %.0f, player 1 %.0f\n", returns[0], returns[1])
}
