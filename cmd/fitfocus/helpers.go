package fitfocus

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fitfocus/fitfocus-cli/internal/app"
	"github.com/fitfocus/fitfocus-cli/internal/calc"
	"github.com/fitfocus/fitfocus-cli/internal/catalog"
	"github.com/fitfocus/fitfocus-cli/internal/config"
	"github.com/fitfocus/fitfocus-cli/internal/db"
	"github.com/fitfocus/fitfocus-cli/internal/model"
	"github.com/fitfocus/fitfocus-cli/internal/store"
)

func resolveDBPath(cfg config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

// withStore opens the database, applies migrations, rehydrates the
// store, and hands it to run. Every command goes through here.
func withStore(run func(*store.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := store.Open(sqldb, catalog.Default(), cfg.DefaultTheme, logger)
	if err != nil {
		return err
	}
	return run(s)
}

// calorieTarget handles the no-profile dashboard default.
func calorieTarget(profile *model.UserProfile) int {
	if profile == nil {
		return calc.DefaultCalorieTarget
	}
	return calc.CalorieTarget(*profile)
}

func waterTarget(profile *model.UserProfile) int {
	if profile == nil {
		return calc.DefaultWaterTarget
	}
	return calc.WaterTarget(*profile)
}

func formatLogTime(unixMilli int64) string {
	return time.UnixMilli(unixMilli).Local().Format("15:04")
}
