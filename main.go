// Droptrack - a command-line crypto airdrop and testnet tracker
package main

import (
	"os"

	"github.com/cryptopilot/droptrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
