package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"weather/cli"
	"weather/config"
	"weather/manager"
)

func main() {
	ctx := context.Background()

	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		exit(err)
	}
	level.Set(cfg.LogLevel)

	cmd, err := cli.New(cli.Options{
		ConfigPath: cfg.ConfigPath,
		Level:      level,
		Weather: func() (cli.Weather, error) {
			apis, err := cfg.Providers()
			if err != nil {
				return nil, err
			}

			weatherManager := manager.New()
			weatherManager.RegisterAPI(apis...)

			return weatherManager, nil
		},
	})
	if err != nil {
		exit(err)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	os.Exit(1)
}
