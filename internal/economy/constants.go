package economy

// YooMoney quickpay parameters
const (
	QuickpayEndpoint = "https://yoomoney.ru/quickpay/confirm"
	QuickpayLabel    = "SkinTrade"
	QuickpayForm     = "button"

	DefaultReceiver = "410011234567890"
)

// QR code rendering
const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

const (
	LogMsgItemsSold   = "Items sold"
	LogMsgTopUpLinked = "Top-up link created"
)
