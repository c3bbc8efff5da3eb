package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"copsis/cli"
)

func main() {
	// COPSIS_* settings may come from a local .env file
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
