package cases

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
	reg, err := Load("", configs.FS, validation.NewSchemaValidator(configs.FS))
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	ctx := context.Background()
	neon, err := reg.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Neon Case", neon.Name)
	assert.Equal(t, 250, neon.Price)
	require.Len(t, neon.Items, 4)
	assert.Equal(t, domain.RarityCommon, neon.Items[0].Rarity)

	for _, c := range reg.List(ctx) {
		assert.InDelta(t, ExpectedChanceTotal, c.TotalChance(), ChanceTolerance, "case %s", c.ID)
	}
	assert.Empty(t, Check(reg.List(ctx)))
}

func TestGet_Unknown(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	_, err = reg.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	_, err := NewRegistry([]domain.Case{{ID: "1"}, {ID: "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgDuplicateCaseID)
}

func TestCheck(t *testing.T) {
	issues := Check([]domain.Case{
		{ID: "ok", Items: []domain.CaseItem{{Chance: 60}, {Chance: 40}}},
		{ID: "short", Items: []domain.CaseItem{{Chance: 50}, {Chance: 30}}},
		{ID: "empty"},
	})

	require.Len(t, issues, 2)
	assert.Equal(t, "short", issues[0].CaseID)
	assert.InDelta(t, 80.0, issues[0].Total, 1e-9)
	assert.Equal(t, LogMsgChanceSumOff, issues[0].Message)
	assert.Equal(t, "empty", issues[1].CaseID)
	assert.Equal(t, LogMsgCaseHasNoItems, issues[1].Message)
}

func TestLoad_ShortChancesStillLoads(t *testing.T) {
	body := `{"version":"1.0","cases":[{"id":"x","name":"X","price":10,"image":"i",
		"items":[{"id":"a","name":"A","rarity":"common","image":"i","chance":50}]}]}`
	path := filepath.Join(t.TempDir(), "cases.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	reg, err := Load(path, configs.FS, validation.NewSchemaValidator(configs.FS))
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestList_ReturnsCopy(t *testing.T) {
	reg, err := NewRegistry([]domain.Case{{ID: "1", Name: "A"}})
	require.NoError(t, err)

	list := reg.List(context.Background())
	list[0].Name = "changed"

	got, err := reg.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}
