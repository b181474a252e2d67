package game_test

import (
	"fmt"

	"github.com/plus3/tetrion/game"
)

// ExampleController shows a frame loop driving the controller: input is
// applied as it arrives and Update is called once per frame.
func ExampleController() {
	cfg := game.DefaultConfig()
	cfg.Seed = 2024
	c := game.NewController(cfg)

	locks := 0
	c.Subscribe(game.EventPieceLock, func(ev game.Event) {
		locks++
	})

	c.Start()
	for i := 0; i < 3; i++ {
		c.HandleInput(game.HardDrop, true)
		c.HandleInput(game.HardDrop, false)
		c.Update(game.Frame)
	}

	fmt.Println(c.State(), locks, c.Stats().Lines)
	// Output: Playing 3 0
}
