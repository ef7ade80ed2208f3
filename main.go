package main

import (
	"os"

	"github.com/spigell/web3-navigator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
