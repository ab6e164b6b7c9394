package domain

// Skin is a catalog listing on the marketplace page. Read-only.
type Skin struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Game      string `json:"game"`
	Rarity    Rarity `json:"rarity"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Verified  bool   `json:"verified"`
	TradeLock bool   `json:"trade_lock"`
}
