package main

import (
	"fmt"
	"os"

	"github.com/relgate/relgate/internal/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		// Gate failures carry user-facing messages that are printed as-is.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
