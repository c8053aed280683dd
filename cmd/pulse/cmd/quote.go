package cmd

import (
	"fmt"

	"github.com/RayyanDarugar/Pulse/exchange"
	"github.com/RayyanDarugar/Pulse/journal"
	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <creator-id>",
	Short: "Print the live quote for a creator token",
	Long: `Look up a creator and print its current token price.

A fresh engine is built per invocation, so the quote equals the creator's
initial token price unless a scripted session has moved it.

Example:
  pulse quote c1`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

var quoteCatalogPath string

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVarP(&quoteCatalogPath, "catalog", "c", "", "path to a creator catalog file (YAML or JSON)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(quoteCatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	eng, err := exchange.NewEngine(cat, exchange.Account{ID: "DEMO-001"}, journal.Noop{}, exchange.DefaultPolicy())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	cr, err := eng.Creator(args[0])
	if err != nil {
		return err
	}
	price, err := eng.Quote(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", cr.Name, cr.Handle)
	fmt.Printf("  Price: $%.2f\n", price)
	fmt.Printf("  Supply: %d tokens\n", cr.TokenSupply)
	return nil
}
