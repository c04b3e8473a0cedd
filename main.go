package main

import (
	"os"

	"github.com/abhisek/cs52quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
