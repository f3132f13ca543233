package fines

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/catchers-sc/teamapp/internal/matches"
)

// Fine is one entry of the team's fine catalogue. Amounts are whole CZK.
type Fine struct {
	Label        string `json:"label"`
	Detail       string `json:"detail"`
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

const DefaultCurrencyCode = "CZK"

var (
	LateArrivalFine = Fine{
		Label:        "Pozdní příchod na zápas",
		Detail:       "do výkopu",
		Amount:       50,
		CurrencyCode: DefaultCurrencyCode,
	}
	LateResponseFine = Fine{
		Label:        "Pozdní vyjádření se k účasti",
		Detail:       "3 dny před zápasem",
		Amount:       100,
		CurrencyCode: DefaultCurrencyCode,
	}
	UnrespondedFine = Fine{
		Label:        "Nevyjádření se k účasti",
		Detail:       "do výkopu",
		Amount:       200,
		CurrencyCode: DefaultCurrencyCode,
	}
	NoShowFine = Fine{
		Label:        "Nedostavení se na přijatý zápas",
		Detail:       "bez omluvy",
		Amount:       300,
		CurrencyCode: DefaultCurrencyCode,
	}
)

// Catalogue lists the fines in the order the rules page shows them.
func Catalogue() []Fine {
	return []Fine{LateArrivalFine, LateResponseFine, UnrespondedFine, NoShowFine}
}

// FormatAmount renders a fine amount for display and mail bodies, using the
// Czech locale.
func FormatAmount(f Fine) string {
	unit, err := currency.ParseISO(f.CurrencyCode)
	if err != nil {
		return fmt.Sprintf("%d %s", f.Amount, f.CurrencyCode)
	}
	p := message.NewPrinter(language.Czech)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(f.Amount)))
}

// TransactionPurpose builds the ledger line for a fine tied to a match,
// e.g. "Pozdní vyjádření se k účasti: fc-x 5.3.2023".
func TransactionPurpose(f Fine, m *matches.Match, loc *time.Location) string {
	return fmt.Sprintf("%s: %s %s", f.Label, m.Opponent, m.StartsAt.In(loc).Format("2.1.2006"))
}
