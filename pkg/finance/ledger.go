package finance

import (
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aretw0/croft/pkg/collection"
)

// Ledger owns the transaction log. Lookups are probes: absence is an
// ordinary outcome reported as a false ok, never an error, because the demo
// flow checks for existence before deciding what to do.
type Ledger struct {
	entries *collection.Linear[Transaction]
	logger  *slog.Logger
}

// NewLedger creates an empty ledger.
func NewLedger(logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		entries: collection.NewLinear[Transaction](),
		logger:  logger,
	}
}

// Record appends a transaction unconditionally.
func (l *Ledger) Record(tx Transaction) {
	l.entries.Add(tx)
	l.logger.Debug("transaction recorded", "id", tx.ID, "kind", tx.Kind, "amount", tx.Amount)
}

// FindByID returns the first transaction with the given id.
func (l *Ledger) FindByID(id int) (Transaction, bool) {
	return l.entries.FindFirst(func(t Transaction) bool { return t.ID == id })
}

// FindByPayee returns the earliest transaction involving the payee.
func (l *Ledger) FindByPayee(payee string) (Transaction, bool) {
	return l.entries.FindFirst(func(t Transaction) bool { return t.Payee == payee })
}

// RemoveByID removes the first transaction with the given id and reports
// whether one existed.
func (l *Ledger) RemoveByID(id int) bool {
	removed := l.entries.RemoveFirst(func(t Transaction) bool { return t.ID == id })
	if !removed {
		l.logger.Debug("no transaction to remove", "id", id)
	}
	return removed
}

// List returns the transactions in insertion order.
func (l *Ledger) List() []Transaction {
	return l.entries.List()
}

// Len reports the number of recorded transactions.
func (l *Ledger) Len() int {
	return l.entries.Len()
}

// Balance sums all entries, withdrawals negative.
func (l *Ledger) Balance() float64 {
	var total float64
	for _, tx := range l.entries.List() {
		total += tx.Signed()
	}
	return total
}

// Seed fills the ledger with n generated transactions for the interactive
// demo. IDs are sequential so menu prompts have something predictable to
// reference.
func (l *Ledger) Seed(n int) {
	for i := 1; i <= n; i++ {
		kind := KindDeposit
		if gofakeit.Bool() {
			kind = KindWithdrawal
		}
		l.Record(Transaction{
			ID:     i,
			Payee:  gofakeit.Company(),
			Amount: gofakeit.Price(5, 2500),
			Kind:   kind,
			Date:   gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()),
		})
	}
}
