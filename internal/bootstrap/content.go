package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SkinTrade_Go/configs"
	"github.com/osse101/SkinTrade_Go/internal/cases"
	"github.com/osse101/SkinTrade_Go/internal/catalog"
	"github.com/osse101/SkinTrade_Go/internal/config"
	"github.com/osse101/SkinTrade_Go/internal/validation"
)

// Content is the static data the service runs on
type Content struct {
	Catalog catalog.Service
	Cases   *cases.Registry
}

// LoadContent loads the skin catalog and case definitions, validating both against
// the shipped JSON schemas. Override paths in cfg replace the embedded seed files.
func LoadContent(cfg *config.Config) (Content, error) {
	schemas := validation.NewSchemaValidator(configs.FS)

	catalogSvc, err := catalog.Load(cfg.SkinsPath, configs.FS, schemas)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	registry, err := cases.Load(cfg.CasesPath, configs.FS, schemas)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCases, err)
	}

	slog.Info(LogMsgContentLoaded,
		"cases", registry.Len(),
		"skins_override", cfg.SkinsPath != "",
		"cases_override", cfg.CasesPath != "")

	return Content{Catalog: catalogSvc, Cases: registry}, nil
}
