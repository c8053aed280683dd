package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/RayyanDarugar/Pulse/config"
	"github.com/RayyanDarugar/Pulse/exchange"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted trading session from a config file",
	Long: `Run a scripted trading session using settings from a configuration file.

The config file specifies the demo account, market policy (fee rate, price
impact), the creator catalog, journaling, and the sequence of orders to place.

Example:
  pulse run -f examples/configs/basic.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	eng, j, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	fmt.Printf("Running session with config: %s\n", runConfigPath)
	fmt.Printf("  Account: %s (Balance: $%.2f)\n", cfg.Account.ID, cfg.Account.Balance)
	fmt.Printf("  Orders: %d\n\n", len(cfg.Session.Orders))

	for i, step := range cfg.Session.Orders {
		var fill exchange.Fill
		if step.Side == "buy" {
			fill, err = eng.Buy(step.Creator, step.Quantity)
		} else {
			fill, err = eng.Sell(step.Creator, step.Quantity)
		}

		if err != nil {
			switch {
			case errors.Is(err, exchange.ErrUnknownToken),
				errors.Is(err, exchange.ErrInvalidQuantity),
				errors.Is(err, exchange.ErrInsufficientFunds),
				errors.Is(err, exchange.ErrInsufficientHoldings):
				fmt.Printf("[%d] REJECTED %s %d %s: %v\n", i+1, step.Side, step.Quantity, step.Creator, err)
				continue
			default:
				return fmt.Errorf("order %d: %w", i+1, err)
			}
		}

		fmt.Printf("[%d] FILLED %s %d %s @ $%.2f (fee $%.2f) -> balance $%.2f, quote $%.2f\n",
			i+1, fill.Side, fill.Quantity, fill.CreatorID, fill.UnitPrice, fill.Fee, fill.Balance, fill.Price)
	}

	acct := eng.Account()
	fmt.Printf("\nFinal Results:\n")
	fmt.Printf("  Balance: $%.2f\n", acct.Balance)

	ids := make([]string, 0, len(acct.Portfolio))
	for cid := range acct.Portfolio {
		ids = append(ids, cid)
	}
	sort.Strings(ids)
	for _, cid := range ids {
		price, _ := eng.Quote(cid)
		fmt.Printf("  %s: %d tokens @ $%.2f\n", cid, acct.Portfolio[cid], price)
	}

	switch cfg.Journal.Type {
	case "csv":
		fmt.Printf("\nResults saved to:\n  - %s\n  - %s\n", cfg.Journal.FillsFile, cfg.Journal.BalancesFile)
	case "sqlite":
		fmt.Printf("\nResults saved to: %s\n", cfg.Journal.DBPath)
	}

	return nil
}
