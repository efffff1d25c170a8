package main

import "fmt"

type BlackjackCmd struct{}

func (c *BlackjackCmd) Run(rctx *runContext) error {
	return runSession(rctx, rctx.buildVariant("blackjack"))
}

type CoinflipCmd struct{}

func (c *CoinflipCmd) Run(rctx *runContext) error {
	return runSession(rctx, rctx.buildVariant("coinflip"))
}

type RpsCmd struct{}

func (c *RpsCmd) Run(rctx *runContext) error {
	return runSession(rctx, rctx.buildVariant("rps"))
}

type TictactoeCmd struct {
	Size int `help:"Board size, 3 or 4 (overrides config)"`
}

func (c *TictactoeCmd) Run(rctx *runContext) error {
	if c.Size != 0 {
		if c.Size != 3 && c.Size != 4 {
			return fmt.Errorf("board size must be 3 or 4, got %d", c.Size)
		}
		rctx.cfg.Game.BoardSize = c.Size
	}
	return runSession(rctx, rctx.buildVariant("tictactoe"))
}
