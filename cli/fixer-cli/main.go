package main

import (
	"context"
	"log"
	"os"

	"github.com/dusanm/fixer-cli/cli/cmd"
)

func main() {
	config := &cmd.Config{Ctx: context.Background()}

	if err := cmd.Execute(config); err != nil {
		log.New(os.Stderr, "fixer-cli ", 0).Printf("ERROR: %v", err)
		os.Exit(1)
	}
}
