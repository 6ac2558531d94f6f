package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/caredesk/caredesk/internal/clock"
	"github.com/caredesk/caredesk/internal/config"
	"github.com/caredesk/caredesk/internal/migration"
	"github.com/caredesk/caredesk/internal/observability"
	"github.com/caredesk/caredesk/internal/server"
	"github.com/caredesk/caredesk/pkg/db"
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
