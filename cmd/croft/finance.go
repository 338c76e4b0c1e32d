package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/croft/internal/console"
	"github.com/aretw0/croft/pkg/finance"
)

var seedTransactions int

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Run the ledger demo",
	Long:  `An ordered transaction log searched by predicate. Lookups are probes: a missing transaction is an ordinary answer, not an error.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ledger := finance.NewLedger(slog.Default())
		ledger.Seed(seedTransactions)

		sh := console.New(os.Stdin, os.Stdout)
		for {
			choice := sh.Menu("Ledger",
				"List transactions",
				"Find by id",
				"Record transaction",
				"Remove by id",
				"Balance",
				"Quit",
			)

			switch choice {
			case 1:
				for _, tx := range ledger.List() {
					sh.Printf("%s", tx)
				}
			case 2:
				id, ok := sh.ReadInt("transaction id: ")
				if !ok {
					return
				}
				tx, found := ledger.FindByID(id)
				if !found {
					sh.Failf("no transaction #%d", id)
					continue
				}
				sh.Printf("%s", tx)
			case 3:
				id, ok := sh.ReadInt("id: ")
				if !ok {
					return
				}
				payee, ok := sh.ReadLine("payee: ")
				if !ok {
					return
				}
				amount, ok := sh.ReadInt("amount (whole units): ")
				if !ok {
					return
				}
				kind := finance.KindDeposit
				if c := sh.Menu("Kind", "deposit", "withdrawal"); c == 2 {
					kind = finance.KindWithdrawal
				} else if c == 0 {
					return
				}
				ledger.Record(finance.Transaction{
					ID:     id,
					Payee:  payee,
					Amount: float64(amount),
					Kind:   kind,
					Date:   time.Now(),
				})
				sh.Okf("recorded #%d", id)
			case 4:
				id, ok := sh.ReadInt("transaction id: ")
				if !ok {
					return
				}
				if !ledger.RemoveByID(id) {
					sh.Failf("no transaction #%d", id)
					continue
				}
				sh.Okf("removed #%d", id)
			case 5:
				sh.Printf("balance: %.2f over %d transactions", ledger.Balance(), ledger.Len())
			default:
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(financeCmd)
	financeCmd.Flags().IntVar(&seedTransactions, "seed", 10, "Number of generated transactions to start with")
}
