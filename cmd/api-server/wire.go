//go:build wireinject
// +build wireinject

package main

import (
	"playtube/config"
	"playtube/dao"
	"playtube/dao/cache"
	"playtube/handler"
	"playtube/pkg/client"
	"playtube/pkg/database"
	"playtube/pkg/oss"
	"playtube/pkg/server"
	"playtube/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideJwtConfig,
		oss.NewClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Video), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Tweet), "*"),
		wire.Struct(new(handler.Playlist), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Subscription), "*"),
		wire.Struct(new(handler.Dashboard), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
