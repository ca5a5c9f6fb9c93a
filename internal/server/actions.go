package server

import (
	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/internal/common"
	"github.com/opsecfreak/webintel/pkg/genai"
)

// ServeAction starts the HTTP server.
func ServeAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	if addr := c.String("addr"); addr != "" {
		cfg.ListenAddr = addr
	}

	store, err := common.OpenStorage(cfg)
	if err != nil {
		return err
	}
	database, err := common.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return New(cfg, store, database, genai.NewClient(cfg)).Run()
}
