package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rarity is the ordinal classification of a skin. It drives color coding and sale value.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities lists rarities from lowest to highest.
var AllRarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityRare:      1,
	RarityEpic:      2,
	RarityLegendary: 3,
}

var raritySaleValue = map[Rarity]int{
	RarityCommon:    SaleValueCommon,
	RarityRare:      SaleValueRare,
	RarityEpic:      SaleValueEpic,
	RarityLegendary: SaleValueLegendary,
}

var rarityColor = map[Rarity]string{
	RarityCommon:    "gray",
	RarityRare:      "blue",
	RarityEpic:      "purple",
	RarityLegendary: "amber",
}

// ParseRarity converts a string into a Rarity, ignoring case and surrounding space.
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRarity, s)
	}
	return r, nil
}

// Valid reports whether r is one of the known rarities.
func (r Rarity) Valid() bool {
	_, ok := rarityRank[r]
	return ok
}

// Rank returns the ordinal position of r, or -1 for unknown values.
func (r Rarity) Rank() int {
	if rank, ok := rarityRank[r]; ok {
		return rank
	}
	return -1
}

// SaleValue returns the fixed amount credited when an item of this rarity is sold.
func (r Rarity) SaleValue() int {
	return raritySaleValue[r]
}

// Color returns the display color hint for the rarity.
func (r Rarity) Color() string {
	return rarityColor[r]
}

// UnmarshalJSON rejects unknown rarities at decode time.
func (r *Rarity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
