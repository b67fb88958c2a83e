package stockroom

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration of the tracker. Everything has a
// default, so a missing config file is not an error.
type Config struct {
	// DataDir is the directory holding the three durable artifacts.
	DataDir string `mapstructure:"data_dir"`
	// InventoryFile, LedgerFile and HistoryFile are the artifact file
	// names, relative to DataDir.
	InventoryFile string `mapstructure:"inventory_file"`
	LedgerFile    string `mapstructure:"ledger_file"`
	HistoryFile   string `mapstructure:"history_file"`
	// Categories is the closed list of accepted item categories. It is
	// injected here rather than compiled in so a new category does not
	// require a rebuild.
	Categories []string `mapstructure:"categories"`
	// LowStockThreshold is the default quantity boundary below which an
	// item is flagged for attention. Callers may override it per query.
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
	// Currency is the display currency code for prices and totals.
	Currency string `mapstructure:"currency"`
}

// DefaultCategories is the category list used when the configuration does
// not provide one.
var DefaultCategories = []string{
	"Fruits", "Vegetables", "Snacks", "Beverages",
	"Dairy", "Meat", "Bakery", "Frozen Foods", "Other",
}

// LoadConfig reads the configuration from the given file. An empty path
// looks for stockroom.yaml in the working directory; a missing file yields
// the defaults. Environment variables prefixed with STOCKROOM override
// file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", ".")
	v.SetDefault("inventory_file", "stock.dat")
	v.SetDefault("ledger_file", "grand_total.dat")
	v.SetDefault("history_file", "history.jsonl")
	v.SetDefault("categories", DefaultCategories)
	v.SetDefault("low_stock_threshold", 15)
	v.SetDefault("currency", "USD")

	v.SetEnvPrefix("STOCKROOM")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stockroom")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine: the defaults cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("config: categories list cannot be empty")
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("config: low_stock_threshold cannot be negative")
	}
	return nil
}

// ValidCategory reports whether the category is in the configured list.
func (c *Config) ValidCategory(category string) bool {
	for _, cat := range c.Categories {
		if cat == category {
			return true
		}
	}
	return false
}
