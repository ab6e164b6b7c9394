package economy

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/skip2/go-qrcode"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// TopUp builds payment links for an external wallet. Payment success never comes back
// into the service.
type TopUp struct {
	receiver string
}

// NewTopUp creates a link builder for receiver; empty uses DefaultReceiver.
func NewTopUp(receiver string) *TopUp {
	if receiver == "" {
		receiver = DefaultReceiver
	}
	return &TopUp{receiver: receiver}
}

// QuickAmounts are the preset amounts offered next to the input.
func (t *TopUp) QuickAmounts() []int {
	out := make([]int, len(domain.TopUpQuickAmounts))
	copy(out, domain.TopUpQuickAmounts)
	return out
}

// URL returns the quickpay confirmation link for amount.
func (t *TopUp) URL(amount int) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	q := url.Values{}
	q.Set("receiver", t.receiver)
	q.Set("sum", strconv.Itoa(amount))
	q.Set("label", QuickpayLabel)
	q.Set("quickpay-form", QuickpayForm)
	return QuickpayEndpoint + "?" + q.Encode(), nil
}

// QRCode renders the quickpay link for amount as a PNG of size×size pixels.
func (t *TopUp) QRCode(amount, size int) ([]byte, error) {
	link, err := t.URL(amount)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, fmt.Errorf("%w: qr size %d outside [%d, %d]", domain.ErrInvalidInput, size, MinQRSize, MaxQRSize)
	}

	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
