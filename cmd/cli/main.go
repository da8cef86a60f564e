package main

import (
	"context"

	"github.com/andrejsm/taskkeeper/internal/client/cli"
	"github.com/andrejsm/taskkeeper/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
