// Package config loads storefront settings and catalog records.
//
// Sources are layered: the embedded defaults, then an optional YAML/JSON/TOML
// file, then STOREFRONT_* environment variables. An empty product list falls
// back to the built-in catalog.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
)

//go:embed default.yaml
var defaultYAML []byte

const EnvPrefix = "STOREFRONT"

// Settings is the decoded configuration.
type Settings struct {
	LogLevel    string          `mapstructure:"log_level"`
	DefaultSort string          `mapstructure:"default_sort"`
	Catalog     CatalogSettings `mapstructure:"catalog"`
}

// CatalogSettings holds the static catalog asset.
type CatalogSettings struct {
	Products   []ProductRecord  `mapstructure:"products"`
	Categories []CategoryRecord `mapstructure:"categories"`
}

// ProductRecord is one product as written in a config file.
type ProductRecord struct {
	ID            string  `mapstructure:"id"`
	Name          string  `mapstructure:"name"`
	Price         int64   `mapstructure:"price"`
	OriginalPrice int64   `mapstructure:"original_price"`
	Discount      int32   `mapstructure:"discount"`
	Image         string  `mapstructure:"image"`
	Rating        float64 `mapstructure:"rating"`
	Reviews       int32   `mapstructure:"reviews"`
	Category      string  `mapstructure:"category"`
}

// CategoryRecord is one category strip entry.
type CategoryRecord struct {
	Name  string `mapstructure:"name"`
	Emoji string `mapstructure:"emoji"`
}

// Load reads settings. path may be empty.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultYAML)); err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}

	if path != "" {
		// The file's own viper picks the format from the extension; v is
		// pinned to yaml by the embedded defaults.
		fv := viper.New()
		fv.SetConfigFile(path)
		if err := fv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := v.MergeConfigMap(fv.AllSettings()); err != nil {
			return nil, fmt.Errorf("merge config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &s, nil
}

// SortKey parses the configured default sort.
func (s *Settings) SortKey() (catalog.SortKey, error) {
	return catalog.ParseSortKey(s.DefaultSort)
}

// BuildCatalog validates the configured records into a Catalog.
func (s *Settings) BuildCatalog() (*catalog.Catalog, error) {
	products := make([]catalog.Product, 0, len(s.Catalog.Products))
	for _, r := range s.Catalog.Products {
		products = append(products, catalog.Product{
			ID:            r.ID,
			Name:          r.Name,
			Price:         r.Price,
			OriginalPrice: r.OriginalPrice,
			Discount:      r.Discount,
			Image:         r.Image,
			Rating:        r.Rating,
			Reviews:       r.Reviews,
			Category:      r.Category,
		})
	}
	if len(products) == 0 {
		products = catalog.DefaultProducts()
	}

	categories := make([]catalog.Category, 0, len(s.Catalog.Categories))
	for _, r := range s.Catalog.Categories {
		categories = append(categories, catalog.Category{Name: r.Name, Emoji: r.Emoji})
	}
	if len(categories) == 0 {
		categories = catalog.DefaultCategories()
	}

	return catalog.NewCatalog(products, categories)
}
