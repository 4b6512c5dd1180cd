package main

import (
	"fmt"

	"product_slider_app_go/config"
	"product_slider_app_go/db"
	"product_slider_app_go/logger"
	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the services every command works with
type app struct {
	cfg        *config.Config
	log        *zap.Logger
	db         *gorm.DB
	options    *services.OptionStore
	catalog    *services.Catalog
	categories *services.CategoryStore
	activator  *services.Activator
	auth       *services.AuthService
}

func newApp(verbose bool) (*app, error) {
	cfg, _ := config.Load()
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(cfg.Environment, level, "")

	database, err := db.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(database, &models.Option{}, &models.Product{}, &models.User{}, &models.Session{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	options := services.NewOptionStore(database)
	catalog := services.NewCatalog(database)
	return &app{
		cfg:        cfg,
		log:        log,
		db:         database,
		options:    options,
		catalog:    catalog,
		categories: services.NewCategoryStore(options, catalog, log),
		activator:  services.NewActivator(options, log),
		auth:       services.NewAuthService(database, log),
	}, nil
}

func (a *app) close() {
	a.log.Sync()
	db.Close(a.db)
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		a       *app
	)

	root := &cobra.Command{
		Use:   "sliderctl",
		Short: "Manage custom categories and the product catalog",
		Long: `sliderctl operates on the same database as the storefront server.

Configuration is read from the environment (and .env), e.g. DB_PATH or TURSO_DATABASE_URL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.close()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	current := func() *app { return a }
	root.AddCommand(
		newActivateCmd(current),
		newResetCmd(current),
		newSeedCmd(current),
		newListCmd(current),
		newExportCmd(current),
		newImportProductsCmd(current),
		newCreateAdminCmd(current),
	)
	return root
}
