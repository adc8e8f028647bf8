package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/mbraun/recyourself/internal"
	"github.com/mbraun/recyourself/internal/mcpserver"
	pkgconfig "github.com/mbraun/recyourself/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	loaded, err := pkgconfig.LoadIfExists(cmd.String("config"), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !loaded && cmd.IsSet("config") {
		return nil, fmt.Errorf("config file not found: %s", cmd.String("config"))
	}
	return cfg, nil
}

func runServer(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func runMCP(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	svc, err := internal.BuildService(cfg.Store.DataDir)
	if err != nil {
		return err
	}

	return mcpserver.New(svc).ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:   "recyourself",
		Usage:  "Voice recording server with durable JSON metadata storage, audio materialization, and on-demand backups",
		Action: runServer,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "Serve the recording tools over MCP stdio transport",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
