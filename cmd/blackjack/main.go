package main

import (
	"github.com/alecthomas/kong"
	"github.com/lox/blackjack/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"blackjack.hcl" type:"path" help:"HCL config file (defaults apply when missing)"`
	Seed    *int64 `help:"Shuffle seed (random when unset)"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
	NoColor bool   `help:"Disable colour output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play blackjack in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many rounds with a fixed strategy"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the config file and applies flag overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Seed != nil {
		cfg.Game.Seed = g.Seed
	}
	if g.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if g.NoColor {
		cfg.UI.Color = false
	}
	return cfg, nil
}
