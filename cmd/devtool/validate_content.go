package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/osse101/SkinTrade_Go/configs"
	"github.com/osse101/SkinTrade_Go/internal/cases"
	"github.com/osse101/SkinTrade_Go/internal/catalog"
	"github.com/osse101/SkinTrade_Go/internal/validation"
)

type ValidateContentCommand struct{}

func (c *ValidateContentCommand) Name() string {
	return "validate-content"
}

func (c *ValidateContentCommand) Description() string {
	return "Validate skins and cases files against the JSON schemas (-skins, -cases)"
}

func (c *ValidateContentCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	skinsPath := fs.String("skins", os.Getenv("SKINS_PATH"), "skins.json override")
	casesPath := fs.String("cases", os.Getenv("CASES_PATH"), "cases.json override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Validating content...")
	schemas := validation.NewSchemaValidator(configs.FS)
	hasError := false

	if _, err := catalog.Load(*skinsPath, configs.FS, schemas); err != nil {
		PrintError("Skins: %v", err)
		hasError = true
	} else {
		PrintSuccess("Skins OK (%s)", sourceName(*skinsPath, configs.SkinsFile))
	}

	registry, err := cases.Load(*casesPath, configs.FS, schemas)
	if err != nil {
		PrintError("Cases: %v", err)
		hasError = true
	} else {
		PrintSuccess("Cases OK: %d cases (%s)", registry.Len(), sourceName(*casesPath, configs.CasesFile))
	}

	if hasError {
		return fmt.Errorf("content validation found issues")
	}
	return nil
}

func sourceName(override, embedded string) string {
	if override != "" {
		return override
	}
	return "embedded " + embedded
}
