package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete exchange configuration
type Config struct {
	Account Account `json:"account" yaml:"account"`
	Market  Market  `json:"market" yaml:"market"`
	Catalog Catalog `json:"catalog" yaml:"catalog"`
	Journal Journal `json:"journal" yaml:"journal"`
	Session Session `json:"session" yaml:"session"`
}

// Account contains the demo account's starting state
type Account struct {
	ID      string  `json:"id" yaml:"id"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// Market contains the pricing policy knobs. Fields are pointers so that an
// explicit zero (a free or impact-less market) is distinguishable from an
// omitted field, which falls back to the engine default.
type Market struct {
	FeeRate       *float64 `json:"fee_rate,omitempty" yaml:"fee_rate,omitempty"`
	ImpactPerUnit *float64 `json:"impact_per_unit,omitempty" yaml:"impact_per_unit,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty" yaml:"min_price,omitempty"`
}

// Catalog points at the creator seed file; empty means the built-in demo set
type Catalog struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Journal contains journaling parameters
type Journal struct {
	Type         string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	FillsFile    string `json:"fills_file,omitempty" yaml:"fills_file,omitempty"`
	BalancesFile string `json:"balances_file,omitempty" yaml:"balances_file,omitempty"`
	DBPath       string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Session is a scripted sequence of orders for `pulse run`
type Session struct {
	Orders []OrderStep `json:"orders,omitempty" yaml:"orders,omitempty"`
}

// OrderStep is one order in a scripted session
type OrderStep struct {
	Creator  string `json:"creator" yaml:"creator"`
	Side     string `json:"side" yaml:"side"` // "buy" or "sell"
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// LoadFromFile loads configuration from a file (YAML or JSON based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.ID == "" {
		return fmt.Errorf("account.id is required")
	}
	if c.Account.Balance < 0 {
		return fmt.Errorf("account.balance must not be negative")
	}
	if c.Market.FeeRate != nil && (*c.Market.FeeRate < 0 || *c.Market.FeeRate >= 1) {
		return fmt.Errorf("market.fee_rate must be in [0, 1)")
	}
	if c.Market.ImpactPerUnit != nil && *c.Market.ImpactPerUnit < 0 {
		return fmt.Errorf("market.impact_per_unit must not be negative")
	}
	if c.Market.MinPrice != nil && *c.Market.MinPrice <= 0 {
		return fmt.Errorf("market.min_price must be positive")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.FillsFile == "" || c.Journal.BalancesFile == "" {
			return fmt.Errorf("journal fills_file and balances_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	for i, step := range c.Session.Orders {
		if step.Creator == "" {
			return fmt.Errorf("session.orders[%d]: creator is required", i)
		}
		if step.Side != "buy" && step.Side != "sell" {
			return fmt.Errorf("session.orders[%d]: side must be 'buy' or 'sell'", i)
		}
		if step.Quantity <= 0 {
			return fmt.Errorf("session.orders[%d]: quantity must be positive", i)
		}
	}
	return nil
}

func f64(v float64) *float64 { return &v }

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: Account{
			ID:      "DEMO-001",
			Balance: 1000,
		},
		Market: Market{
			FeeRate:       f64(0.01),
			ImpactPerUnit: f64(0.0001),
			MinPrice:      f64(0.01),
		},
		Journal: Journal{
			Type:         "csv",
			FillsFile:    "./fills.csv",
			BalancesFile: "./balances.csv",
		},
		Session: Session{
			Orders: []OrderStep{
				{Creator: "c1", Side: "buy", Quantity: 10},
				{Creator: "c1", Side: "sell", Quantity: 5},
			},
		},
	}
}
