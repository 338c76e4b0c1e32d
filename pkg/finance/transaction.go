// Package finance implements the ledger demo: an ordered sequence of
// transactions searched and removed by predicate.
package finance

import (
	"fmt"
	"time"
)

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Transaction is a single ledger entry. Entries are append-only and keep
// their insertion order; the ledger never deduplicates them.
type Transaction struct {
	ID     int
	Payee  string
	Amount float64
	Kind   Kind
	Date   time.Time
}

// Signed returns the amount with its sign applied: withdrawals count
// negative.
func (t Transaction) Signed() float64 {
	if t.Kind == KindWithdrawal {
		return -t.Amount
	}
	return t.Amount
}

func (t Transaction) String() string {
	return fmt.Sprintf("#%d %s %s %.2f (%s)", t.ID, t.Date.Format("2006-01-02"), t.Kind, t.Amount, t.Payee)
}
