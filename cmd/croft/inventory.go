package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/croft/internal/console"
	"github.com/aretw0/croft/pkg/core"
	"github.com/aretw0/croft/pkg/inventory"
)

var (
	catalogPath string
	randomItems int
)

var inventoryCmd = &cobra.Command{
	Use:       "inventory [electronics|grocery]",
	Short:     "Run the warehouse demo",
	Long:      `An interactive stock catalog keyed by item ID. Duplicate IDs, unknown IDs and negative quantities are rejected with typed failures; the menu keeps running either way.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"electronics", "grocery"},
	Run: func(cmd *cobra.Command, args []string) {
		variant := "electronics"
		if len(args) == 1 {
			variant = args[0]
		}

		manager := inventory.NewManager(
			inventory.WithVariant(variant),
			inventory.WithLogger(slog.Default()),
		)

		switch {
		case catalogPath != "":
			items, skipped, err := inventory.LoadCatalog(catalogPath)
			if err != nil {
				fatal("failed to load catalog", err)
			}
			for _, diag := range skipped {
				fmt.Fprintf(os.Stderr, "catalog: %v\n", diag)
			}
			manager.Seed(items)
		case randomItems > 0:
			manager.SeedRandom(randomItems)
		case variant == "grocery":
			manager.Seed(inventory.Grocery())
		default:
			manager.Seed(inventory.Electronics())
		}

		runInventoryShell(manager)
	},
}

func runInventoryShell(manager *inventory.Manager) {
	sh := console.New(os.Stdin, os.Stdout)

	for {
		choice := sh.Menu(fmt.Sprintf("Warehouse (%s)", manager.Variant()),
			"List items",
			"Show item",
			"Add item",
			"Remove item",
			"Update quantity",
			"Quit",
		)

		switch choice {
		case 1:
			for _, item := range manager.List() {
				sh.Printf("%s", item)
			}
		case 2:
			id, ok := sh.ReadInt("item id: ")
			if !ok {
				return
			}
			item, err := manager.Get(id)
			if err != nil {
				sh.Failf("%v", err)
				continue
			}
			sh.Printf("%s", item)
		case 3:
			id, ok := sh.ReadInt("new id: ")
			if !ok {
				return
			}
			name, ok := sh.ReadLine("name: ")
			if !ok {
				return
			}
			qty, ok := sh.ReadInt("quantity: ")
			if !ok {
				return
			}
			if err := manager.Add(&inventory.Item{ID: id, Name: name, Quantity: qty}); err != nil {
				reportFailure(sh, err)
				continue
			}
			sh.Okf("added #%d", id)
		case 4:
			id, ok := sh.ReadInt("item id: ")
			if !ok {
				return
			}
			if err := manager.Remove(id); err != nil {
				reportFailure(sh, err)
				continue
			}
			sh.Okf("removed #%d", id)
		case 5:
			id, ok := sh.ReadInt("item id: ")
			if !ok {
				return
			}
			qty, ok := sh.ReadInt("new quantity: ")
			if !ok {
				return
			}
			if err := manager.UpdateQuantity(id, qty); err != nil {
				reportFailure(sh, err)
				continue
			}
			sh.Okf("updated #%d to %d", id, qty)
		default:
			return
		}
	}
}

// reportFailure renders a typed collection failure and hands control back to
// the menu. No failure kind is fatal here.
func reportFailure(sh *console.Shell, err error) {
	switch {
	case errors.Is(err, core.ErrDuplicateKey):
		sh.Failf("already taken: %v", err)
	case errors.Is(err, core.ErrNotFound):
		sh.Failf("no such record: %v", err)
	case errors.Is(err, core.ErrInvalidValue):
		sh.Failf("rejected: %v", err)
	default:
		sh.Failf("%v", err)
	}
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
	inventoryCmd.Flags().StringVar(&catalogPath, "catalog", "", "Seed from a YAML catalog file instead of the built-in list")
	inventoryCmd.Flags().IntVar(&randomItems, "random", 0, "Seed with N generated items instead of the built-in list")
}
