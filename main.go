package main

import (
	"os"

	"github.com/keskad/p50x/pkgs/app"
	"github.com/keskad/p50x/pkgs/cli"
	"github.com/keskad/p50x/pkgs/output"
)

func main() {
	p50xApp := app.P50XApp{P: output.ConsolePrinter{}}
	cmd := cli.NewRootCommand(&p50xApp)
	args := os.Args
	if args != nil {
		args = args[1:]
		cmd.SetArgs(args)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
