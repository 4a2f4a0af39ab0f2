package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/MikeMC777/foodcart/internal/cli"
)

func main() {
	log.SetOutput(io.Discard)
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
