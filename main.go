package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("voynich"),
		kong.Description("Exploratory cryptanalysis of a short ciphertext sample.\n\n"+
			"If no file is specified, reads from stdin (pipe), then falls back to the configured source path."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	app, err := NewApp(cli.Globals, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = app.Logger.Sync() }()

	if err := ctx.Run(app); err != nil {
		if !errors.Is(err, errAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		_ = app.Logger.Sync()
		os.Exit(1)
	}
}
