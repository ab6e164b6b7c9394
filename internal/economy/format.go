package economy

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

var ruPrinter = message.NewPrinter(language.Russian)

// FormatAmount renders an amount with Russian digit grouping and the ruble sign,
// e.g. 45750 as "45 750 ₽". The group separator is a no-break space.
func FormatAmount(amount int) string {
	return ruPrinter.Sprintf("%d", amount) + " " + domain.CurrencySymbol
}
