package main

import (
	"os"

	"github.com/idilsaglam/todo-cli/internal/cli"
	"github.com/idilsaglam/todo-cli/internal/ui"
)

func main() {
	err := cli.NewRootCmd().Execute()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
	}
	os.Exit(cli.ExitCode(err))
}
