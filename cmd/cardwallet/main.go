// cmd/cardwallet/main.go
package main

import (
	"os"

	"cardwallet/cmd/cardwallet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
