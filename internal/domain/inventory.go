package domain

import "time"

// InventoryItem is a won case item held by a session until it is sold.
type InventoryItem struct {
	InstanceID string    `json:"instance_id"`
	ItemID     string    `json:"item_id"`
	CaseID     string    `json:"case_id"`
	Name       string    `json:"name"`
	Rarity     Rarity    `json:"rarity"`
	Image      string    `json:"image"`
	Value      int       `json:"value"`
	WonAt      time.Time `json:"won_at"`
}

// NewInventoryItem builds an inventory entry for a drop. The value comes from the rarity table.
func NewInventoryItem(instanceID, caseID string, item CaseItem, wonAt time.Time) InventoryItem {
	return InventoryItem{
		InstanceID: instanceID,
		ItemID:     item.ID,
		CaseID:     caseID,
		Name:       item.Name,
		Rarity:     item.Rarity,
		Image:      item.Image,
		Value:      item.Rarity.SaleValue(),
		WonAt:      wonAt,
	}
}

// InventoryValue sums the sale value of the given items.
func InventoryValue(items []InventoryItem) int {
	total := 0
	for _, item := range items {
		total += item.Value
	}
	return total
}
