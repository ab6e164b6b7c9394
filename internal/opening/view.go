package opening

import (
	"time"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/roulette"
)

// StripView is what a client needs to animate the spin.
type StripView struct {
	roulette.Strip
	TileWidth     int `json:"tile_width"`
	TileGap       int `json:"tile_gap"`
	Padding       int `json:"padding"`
	ViewportWidth int `json:"viewport_width"`
}

// OpenResult is returned when a case has been paid for and its spin started.
// The drawn item is not part of it.
type OpenResult struct {
	SpinID        string    `json:"spin_id"`
	CaseID        string    `json:"case_id"`
	Price         int       `json:"price"`
	Balance       int       `json:"balance"`
	RevealAt      time.Time `json:"reveal_at"`
	RevealAfterMs int64     `json:"reveal_after_ms"`
	Strip         StripView `json:"strip"`
}

// SpinView is the status of one spin. Item is set only once the spin is revealed.
type SpinView struct {
	ID       string                `json:"id"`
	CaseID   string                `json:"case_id"`
	Status   string                `json:"status"`
	RevealAt time.Time             `json:"reveal_at"`
	Item     *domain.InventoryItem `json:"item,omitempty"`
	Fallback bool                  `json:"fallback,omitempty"`
}

// spinRecord is the stored state of a spin, including the hidden outcome.
type spinRecord struct {
	id        string
	sessionID string
	caseID    string
	revealAt  time.Time
	revealed  bool
	item      domain.InventoryItem
	fallback  bool
}

func (r spinRecord) view() SpinView {
	v := SpinView{
		ID:       r.id,
		CaseID:   r.caseID,
		Status:   StatusSpinning,
		RevealAt: r.revealAt,
	}
	if r.revealed {
		item := r.item
		v.Status = StatusRevealed
		v.Item = &item
		v.Fallback = r.fallback
	}
	return v
}

func newStripView(strip roulette.Strip, layout roulette.Layout) StripView {
	return StripView{
		Strip:         strip,
		TileWidth:     layout.TileWidth,
		TileGap:       layout.TileGap,
		Padding:       layout.Padding,
		ViewportWidth: layout.ViewportWidth,
	}
}
