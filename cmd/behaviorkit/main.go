package main

import (
	"fmt"
	"os"

	"github.com/joeycumines/behaviorkit/internal/command"
)

var version = "0.1.0"

func main() {
	if err := command.NewRootCommand(version).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
