package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/harborline/freightline/internal/clock"
	"github.com/harborline/freightline/internal/config"
	"github.com/harborline/freightline/internal/migration"
	"github.com/harborline/freightline/internal/observability"
	"github.com/harborline/freightline/internal/server"
	"github.com/harborline/freightline/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
