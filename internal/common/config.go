package common

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/db"
	"github.com/opsecfreak/webintel/pkg/storage"
)

// LoadConfig reads the config file named by the global --config flag.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// OpenStorage creates the output-directory storage for the loaded config.
func OpenStorage(cfg *models.Config) (*storage.Storage, error) {
	return storage.New(cfg.OutputDir)
}

// OpenDB opens the sqlite database for the loaded config.
func OpenDB(cfg *models.Config) (*db.DB, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}
