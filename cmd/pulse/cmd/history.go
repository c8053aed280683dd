package cmd

import (
	"fmt"

	"github.com/RayyanDarugar/Pulse/exchange"
	"github.com/RayyanDarugar/Pulse/journal"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <creator-id>",
	Short: "Print a synthetic price history for a creator token",
	Long: `Generate the charting series for a creator: hourly points over the
trailing week, ending exactly at the live quote. The data is synthetic and
regenerated on every call.

Example:
  pulse history c1
  pulse history c1 --tail 24`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

var (
	historyCatalogPath string
	historyTail        int
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyCatalogPath, "catalog", "c", "", "path to a creator catalog file (YAML or JSON)")
	historyCmd.Flags().IntVarP(&historyTail, "tail", "t", 0, "print only the last N points (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(historyCatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	eng, err := exchange.NewEngine(cat, exchange.Account{ID: "DEMO-001"}, journal.Noop{}, exchange.DefaultPolicy())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	points, err := eng.History(args[0])
	if err != nil {
		return err
	}

	if historyTail > 0 && historyTail < len(points) {
		points = points[len(points)-historyTail:]
	}

	for _, p := range points {
		fmt.Printf("%s  %8.2f\n", p.Time.Format("2006-01-02 15:04"), p.Price)
	}
	return nil
}
