package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the creator catalog",
	Long: `Print every creator in the catalog with its initial token price and supply.

With no flags, the built-in demo catalog is used.

Example:
  pulse catalog
  pulse catalog --catalog creators.yaml`,
	RunE: runCatalog,
}

var catalogPath string

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "path to a creator catalog file (YAML or JSON)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	fmt.Printf("%-6s %-20s %-14s %10s %12s  %s\n", "ID", "NAME", "HANDLE", "PRICE", "SUPPLY", "REGION")
	for _, cr := range cat.List() {
		fmt.Printf("%-6s %-20s %-14s %10.2f %12d  %s\n",
			cr.ID, cr.Name, cr.Handle, cr.InitialTokenPrice, cr.TokenSupply, cr.Region)
	}
	return nil
}
