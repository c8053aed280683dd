package cmd

import (
	"fmt"

	"github.com/RayyanDarugar/Pulse/catalog"
	"github.com/RayyanDarugar/Pulse/config"
	"github.com/RayyanDarugar/Pulse/exchange"
	"github.com/RayyanDarugar/Pulse/journal"
)

// loadCatalog returns the catalog named by path, or the built-in demo set
// when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Demo(), nil
	}
	return catalog.LoadFile(path)
}

// buildEngine assembles a journal and engine from a config.
func buildEngine(cfg *config.Config) (*exchange.Engine, journal.Journal, error) {
	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	var j journal.Journal
	switch cfg.Journal.Type {
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.FillsFile, cfg.Journal.BalancesFile)
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	default:
		j = journal.Noop{}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create journal: %w", err)
	}

	eng, err := exchange.NewEngine(cat, exchange.Account{
		ID:      cfg.Account.ID,
		Balance: cfg.Account.Balance,
	}, j, marketPolicy(cfg))
	if err != nil {
		j.Close()
		return nil, nil, fmt.Errorf("create engine: %w", err)
	}
	return eng, j, nil
}

// marketPolicy maps the config's market section onto an engine policy.
// Fields the config sets are taken verbatim, including zero; omitted fields
// keep the engine default.
func marketPolicy(cfg *config.Config) exchange.Policy {
	pol := exchange.DefaultPolicy()
	if cfg.Market.FeeRate != nil {
		pol.FeeRate = *cfg.Market.FeeRate
	}
	if cfg.Market.ImpactPerUnit != nil {
		pol.ImpactPerUnit = *cfg.Market.ImpactPerUnit
	}
	if cfg.Market.MinPrice != nil {
		pol.MinPrice = *cfg.Market.MinPrice
	}
	return pol
}
