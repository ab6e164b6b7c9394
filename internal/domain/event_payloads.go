package domain

// CaseOpenedPayload is the event payload for case.opened events.
// The drawn item is intentionally absent: it stays hidden until the reveal.
type CaseOpenedPayload struct {
	SessionID string `json:"session_id"`
	SpinID    string `json:"spin_id"`
	CaseID    string `json:"case_id"`
	Price     int    `json:"price"`
	RevealAt  int64  `json:"reveal_at"`
	Timestamp int64  `json:"timestamp"`
}

// CaseRevealedPayload is the event payload for case.revealed events
type CaseRevealedPayload struct {
	SessionID string        `json:"session_id"`
	SpinID    string        `json:"spin_id"`
	CaseID    string        `json:"case_id"`
	Item      InventoryItem `json:"item"`
	Fallback  bool          `json:"fallback"`
	Timestamp int64         `json:"timestamp"`
}

// ItemSoldPayload is the event payload for item.sold events
type ItemSoldPayload struct {
	SessionID   string   `json:"session_id"`
	InstanceIDs []string `json:"instance_ids"`
	TotalValue  int      `json:"total_value"`
	Timestamp   int64    `json:"timestamp"`
}

// BalanceChangedPayload is the event payload for balance.changed events
type BalanceChangedPayload struct {
	SessionID string `json:"session_id"`
	Balance   int    `json:"balance"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// Balance change reasons
const (
	BalanceReasonCasePurchase = "case_purchase"
	BalanceReasonItemSale     = "item_sale"
)

// SessionScoped is implemented by payloads that belong to one session.
// The SSE bridge uses it to route events only to that session's clients.
type SessionScoped interface {
	OwnerSession() string
}

func (p CaseOpenedPayload) OwnerSession() string { return p.SessionID }
func (p CaseRevealedPayload) OwnerSession() string { return p.SessionID }
func (p ItemSoldPayload) OwnerSession() string { return p.SessionID }
func (p BalanceChangedPayload) OwnerSession() string { return p.SessionID }
