package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ontrackhk/ontrack/internal/cli"
)

func main() {
	// Best effort: a missing .env is fine, the environment wins anyway.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
