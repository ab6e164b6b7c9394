package roulette

import (
	"fmt"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// Result is the outcome of one weighted draw.
type Result struct {
	Index    int             `json:"index"`
	Item     domain.CaseItem `json:"item"`
	Roll     float64         `json:"roll"`
	Fallback bool            `json:"fallback"`
}

// Select picks an item for a roll on the [0,100) scale.
//
// Items are walked in order with a running sum of their chances and the first item
// whose cumulative sum is greater than or equal to the roll wins, so a roll sitting
// exactly on a boundary belongs to the lower item. Items with a non-positive chance
// are skipped. When the roll lands above the total (chances summing below 100) the
// first item is returned with Fallback set.
func Select(items []domain.CaseItem, roll float64) (Result, error) {
	if len(items) == 0 {
		return Result{}, domain.ErrEmptyCase
	}

	cumulative := 0.0
	for i, item := range items {
		if item.Chance <= 0 {
			continue
		}
		cumulative += item.Chance
		if roll <= cumulative {
			return Result{Index: i, Item: item, Roll: roll}, nil
		}
	}

	return Result{Index: 0, Item: items[0], Roll: roll, Fallback: true}, nil
}

// Draw rolls rnd (a [0,1) source) onto the percentage scale and selects an item.
func Draw(items []domain.CaseItem, rnd func() float64) (Result, error) {
	if rnd == nil {
		return Result{}, fmt.Errorf("%w: nil random source", domain.ErrInvalidInput)
	}
	return Select(items, rnd()*RollScale)
}
