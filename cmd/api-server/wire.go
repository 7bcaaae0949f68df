//go:build wireinject
// +build wireinject

package main

import (
	"Fanhub/config"
	"Fanhub/dao"
	"Fanhub/dao/cache"
	"Fanhub/handler"
	"Fanhub/pkg/client"
	"Fanhub/pkg/database"
	"Fanhub/pkg/llm"
	"Fanhub/pkg/server"
	"Fanhub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		llm.NewTagGenerator,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Creator), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Subscription), "*"),
		wire.Struct(new(handler.Library), "*"),
		wire.Struct(new(handler.Message), "*"),
		wire.Struct(new(handler.QuickReply), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
