package main

import (
	"os"

	"github.com/MohammedMusharraf11/NaukriGraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
