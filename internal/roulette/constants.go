package roulette

// ============================================================================
// Draw
// ============================================================================

// RollScale maps the [0,1) random source onto the percentage scale used by chances.
const RollScale = 100.0

// ============================================================================
// Strip Layout
// ============================================================================

// StripRepeats is how many times the case's item list is repeated in the strip.
const StripRepeats = 50

// TileWidth is the width of one strip tile in pixels.
const TileWidth = 128

// TileGap is the horizontal gap between tiles in pixels.
const TileGap = 16

// StripPadding is the left padding before the first tile in pixels.
const StripPadding = 32

// TailTiles is how many tiles must remain after the landing tile.
const TailTiles = 10

// ViewportWidth is the visible width of the strip container in pixels.
// The centre marker sits at half of it.
const ViewportWidth = 832

// JitterFraction bounds how far the resting point may drift from the tile centre,
// as a fraction of the tile width. Must stay below 0.5 to keep the marker on the tile.
const JitterFraction = 0.4

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgFallbackDraw  = "Roll exceeded total chance, using fallback item"
	LogMsgSpinScheduled = "Spin scheduled"
	LogMsgSpinRevealed  = "Spin revealed"
)

// Log field keys for structured logging
const (
	LogFieldSpinID  = "spin_id"
	LogFieldKey     = "key"
	LogFieldRoll    = "roll"
	LogFieldTotal   = "total_chance"
	LogFieldDelayMs = "delay_ms"
)
