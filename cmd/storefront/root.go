package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LokeshReddy2201/FUTURE-FS-03/catalog/config"
	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
	"github.com/LokeshReddy2201/FUTURE-FS-03/shop"
)

type app struct {
	configPath string
	logLevel   string

	catalog *catalog.Catalog
	sort    catalog.SortKey
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the storefront catalog and manage a cart",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides log_level from config")

	root.AddCommand(newProductsCmd(a), newCategoriesCmd(a), newSessionCmd(a))
	return root
}

func (a *app) setup() error {
	settings, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level := settings.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := shop.NewLogger(level)
	if err != nil {
		return err
	}
	cat, err := settings.BuildCatalog()
	if err != nil {
		return err
	}
	key, err := settings.SortKey()
	if err != nil {
		return err
	}

	a.logger = logger
	a.catalog = cat
	a.sort = key
	logger.Debug("catalog loaded", zap.Int("products", cat.Len()), zap.Stringer("default_sort", key))
	return nil
}
