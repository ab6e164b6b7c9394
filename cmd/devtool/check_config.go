package main

import (
	"github.com/osse101/SkinTrade_Go/internal/config"
)

type CheckConfigCommand struct{}

func (c *CheckConfigCommand) Name() string {
	return "check-config"
}

func (c *CheckConfigCommand) Description() string {
	return "Load configuration from .env and the environment and report problems"
}

func (c *CheckConfigCommand) Run(args []string) error {
	PrintHeader("Checking configuration...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	PrintInfo("Environment: %s, listen %s", cfg.Environment, cfg.Addr())
	PrintInfo("Sessions: capacity %d, ttl %s, starting balance %d", cfg.SessionCapacity, cfg.SessionTTL, cfg.StartingBalance)
	PrintInfo("Reveal delay: %s", cfg.RevealDelay)

	warnings := cfg.Warnings()
	for _, w := range warnings {
		PrintWarning("%s", w)
	}
	if len(warnings) == 0 {
		PrintSuccess("Configuration OK")
	}
	return nil
}
