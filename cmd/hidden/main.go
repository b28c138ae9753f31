package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Shuffle ShuffleCmd       `cmd:"" help:"Print the input lines through one freshly minted hand"`
	Deal    DealCmd          `cmd:"" help:"Mint several hands over the same deck and print each view"`
	Trials  TrialsCmd        `cmd:"" help:"Mint many hands and report shuffle uniformity statistics"`
	Peek    PeekCmd          `cmd:"" help:"Interactively reveal a minted hand choice by choice"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hidden"),
		kong.Description("A dispenser of frozen random hands over caller-owned decks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
