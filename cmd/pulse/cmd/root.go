package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "A mock exchange for creator tokens",
	Long: `Pulse is a simulated micro-exchange for creator tokens.

It provides tools for:
  - Browsing the creator catalog and live quotes
  - Running scripted buy/sell sessions against a demo account
  - Simulated platform fees and bonding-curve price impact
  - Synthetic price history for charting
  - Journaling fills and balances to CSV or SQLite

Complete documentation is available at https://github.com/RayyanDarugar/Pulse`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
