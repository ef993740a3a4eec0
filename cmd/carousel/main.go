package main

import (
	"context"
	"fmt"
	"os"

	"github.com/treykane/cli-carousel/internal/commands"
)

func main() {
	if err := commands.New().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
