package main

import (
	"fmt"
	"os"

	"github.com/abdidvp/theater/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "theater:", err)
		os.Exit(1)
	}
}
