package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/configs"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/validation"
)

func TestLoad_EmbeddedSeed(t *testing.T) {
	svc, err := Load("", configs.FS, validation.NewSchemaValidator(configs.FS))
	require.NoError(t, err)

	all := svc.List(context.Background(), Filter{Tab: TabAll})
	require.Len(t, all, 6)
	assert.Equal(t, "Dragon Lore AWP", all[0].Name)
	assert.Equal(t, domain.RarityLegendary, all[0].Rarity)

	skin, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.True(t, skin.TradeLock)

	_, err = svc.Get(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrSkinNotFound)
}

func TestLoad_OverrideFailsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skins.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","skins":[{"id":"1"}]}`), 0o600))

	_, err := Load(path, configs.FS, validation.NewSchemaValidator(configs.FS))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestService_TabsIsACopy(t *testing.T) {
	svc := NewService(nil)
	tabs := svc.Tabs()
	require.Len(t, tabs, 3)
	tabs[0].Key = "mutated"
	assert.Equal(t, TabAll, svc.Tabs()[0].Key)
}
