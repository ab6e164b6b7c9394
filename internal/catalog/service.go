package catalog

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/osse101/SkinTrade_Go/configs"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/utils"
	"github.com/osse101/SkinTrade_Go/internal/validation"
)

// Tab is one filter tab on the marketplace page.
type Tab struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DefaultTabs lists the tabs in display order.
var DefaultTabs = []Tab{
	{Key: TabAll, Label: "All"},
	{Key: TabCSGO, Label: "CS:GO"},
	{Key: TabValorant, Label: "Valorant"},
}

// Config represents the JSON catalog file
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Skins       []domain.Skin `json:"skins"`
}

// Service exposes the static skin catalog
type Service interface {
	List(ctx context.Context, f Filter) []domain.Skin
	Get(ctx context.Context, id string) (domain.Skin, error)
	Tabs() []Tab
}

type service struct {
	skins []domain.Skin
	byID  map[string]int
}

// NewService builds a catalog over a fixed list of skins
func NewService(skins []domain.Skin) Service {
	byID := make(map[string]int, len(skins))
	for i, s := range skins {
		byID[s.ID] = i
	}
	return &service{skins: skins, byID: byID}
}

// Load reads the catalog from overridePath, or from the embedded seed file when it is
// empty, validates it against its schema and returns a ready service.
func Load(overridePath string, fsys fs.FS, schemas validation.SchemaValidator) (Service, error) {
	data, source, err := utils.ReadConfigBytes(overridePath, fsys, configs.SkinsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCatalog, err)
	}
	if schemas != nil {
		if err := schemas.ValidateBytes(data, configs.SkinsSchemaFile); err != nil {
			return nil, fmt.Errorf("schema validation failed for %s: %w", source, err)
		}
	}

	var cfg Config
	if err := utils.DecodeJSON(data, source, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
	}
	if cfg.Version != ConfigVersion {
		logger.Warn(LogMsgCatalogVersion, "source", source, "version", cfg.Version, "expected", ConfigVersion)
	}

	logger.Info(LogMsgCatalogLoaded, "source", source, "skins", len(cfg.Skins))
	return NewService(cfg.Skins), nil
}

func (s *service) List(ctx context.Context, f Filter) []domain.Skin {
	result := Apply(s.skins, f)
	logger.FromContext(ctx).Debug("Catalog filtered",
		"tab", f.Tab,
		"query", f.Query,
		"matched", len(result),
		"total", len(s.skins))
	return result
}

func (s *service) Get(_ context.Context, id string) (domain.Skin, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Skin{}, fmt.Errorf("%w: %s", domain.ErrSkinNotFound, id)
	}
	return s.skins[i], nil
}

func (s *service) Tabs() []Tab {
	tabs := make([]Tab, len(DefaultTabs))
	copy(tabs, DefaultTabs)
	return tabs
}
