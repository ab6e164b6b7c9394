package domain

// CaseItem is one possible drop of a case with its chance in percent.
type CaseItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rarity Rarity  `json:"rarity"`
	Image  string  `json:"image"`
	Chance float64 `json:"chance"`
}

// Case is a purchasable bundle that yields one of its items when opened.
type Case struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Price int        `json:"price"`
	Image string     `json:"image"`
	Items []CaseItem `json:"items"`
}

// TotalChance sums the positive chances of all items.
func (c Case) TotalChance() float64 {
	total := 0.0
	for _, item := range c.Items {
		if item.Chance > 0 {
			total += item.Chance
		}
	}
	return total
}

// Affordable reports whether a balance covers the case price.
func (c Case) Affordable(balance int) bool {
	return balance >= c.Price
}
