package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry(
		&SimulateCommand{},
		&CheckConfigCommand{},
		&ValidateContentCommand{},
		&HealthCheckCommand{},
		&SmokeCommand{},
	)

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			if len(os.Args) > 1 {
				PrintError("%v", err)
			}
			registry.Usage(os.Stderr)
		} else {
			PrintError("%v", err)
		}
		os.Exit(1)
	}
}
