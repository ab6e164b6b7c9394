package roulette

import (
	"fmt"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// Layout describes the geometry of the spinning strip.
type Layout struct {
	TileWidth      int
	TileGap        int
	Padding        int
	ViewportWidth  int
	Repeats        int
	TailTiles      int
	JitterFraction float64
}

// DefaultLayout returns the geometry used by the web client.
func DefaultLayout() Layout {
	return Layout{
		TileWidth:      TileWidth,
		TileGap:        TileGap,
		Padding:        StripPadding,
		ViewportWidth:  ViewportWidth,
		Repeats:        StripRepeats,
		TailTiles:      TailTiles,
		JitterFraction: JitterFraction,
	}
}

// Stride is the distance between the left edges of two neighbouring tiles.
func (l Layout) Stride() int {
	return l.TileWidth + l.TileGap
}

// Strip is the precomputed animation target for one spin.
// Tiles holds item IDs in display order.
type Strip struct {
	Tiles        []string `json:"tiles"`
	LandingIndex int      `json:"landing_index"`
	OffsetPx     float64  `json:"offset_px"`
	LegacyOffset int      `json:"legacy_offset_px"`
}

// BuildStrip repeats the items and computes a resting offset that puts the chosen item
// under the centre marker. rnd supplies the cosmetic jitter and may be nil for none.
func BuildStrip(items []domain.CaseItem, chosen int, layout Layout, rnd func() float64) (Strip, error) {
	n := len(items)
	if n == 0 {
		return Strip{}, domain.ErrEmptyCase
	}
	if chosen < 0 || chosen >= n {
		return Strip{}, fmt.Errorf("%w: chosen index %d out of range", domain.ErrInvalidInput, chosen)
	}
	if layout.Repeats < 1 {
		layout.Repeats = 1
	}

	total := n * layout.Repeats
	tiles := make([]string, 0, total)
	for r := 0; r < layout.Repeats; r++ {
		for _, item := range items {
			tiles = append(tiles, item.ID)
		}
	}

	idx := LandingIndex(n, layout.Repeats, layout.TailTiles, chosen)

	stride := layout.Stride()
	centre := float64(layout.Padding + idx*stride + layout.TileWidth/2)
	offset := centre - float64(layout.ViewportWidth)/2
	if rnd != nil && layout.JitterFraction > 0 {
		offset += (rnd()*2 - 1) * layout.JitterFraction * float64(layout.TileWidth)
	}

	legacy := (total - layout.TailTiles) * stride
	if legacy < 0 {
		legacy = 0
	}

	return Strip{
		Tiles:        tiles,
		LandingIndex: idx,
		OffsetPx:     offset,
		LegacyOffset: legacy,
	}, nil
}

// LandingIndex returns the strip position of the chosen item inside the last full
// repetition that still leaves tailTiles tiles after it ends.
func LandingIndex(n, repeats, tailTiles, chosen int) int {
	total := n * repeats
	rep := (total - tailTiles - n) / n
	if total-tailTiles-n < 0 {
		rep = 0
	}
	if rep > repeats-1 {
		rep = repeats - 1
	}
	return rep*n + chosen
}
