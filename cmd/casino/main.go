package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to HCL config file" default:"casino.hcl" type:"path"`
	Seed    int64            `help:"RNG seed (0 for time-derived)"`
	Journal string           `help:"Write a JSON round journal to this path" type:"path"`
	Debug   bool             `help:"Enable debug logging"`

	Play      PlayCmd      `cmd:"" default:"1" help:"Pick a game from the menu"`
	Blackjack BlackjackCmd `cmd:"" help:"Play blackjack against the dealer"`
	Coinflip  CoinflipCmd  `cmd:"" help:"Call a coin flip for even money"`
	Rps       RpsCmd       `cmd:"" help:"Play rock-paper-scissors against the house"`
	Tictactoe TictactoeCmd `cmd:"" help:"Play tic-tac-toe against the house"`
	Simulate  SimulateCmd  `cmd:"" help:"Run automated sessions and report results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("casino"),
		kong.Description("Terminal casino: wager on blackjack, coin flips, rock-paper-scissors and tic-tac-toe"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	rctx, err := newRunContext(&cli)
	ctx.FatalIfErrorf(err)
	defer rctx.Close()

	err = ctx.Run(rctx)
	ctx.FatalIfErrorf(err)
}
