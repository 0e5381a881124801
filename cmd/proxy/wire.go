//go:build wireinject
// +build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/client"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/x/access"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/x/catalogue"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/x/introspect"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/x/metering"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/x/revocation"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/x/token"
)

func provideApi(config util.Config) core.Api {
	return core.NewApi(config.Proxy.DxApiBasePath)
}

var introspectProvider = wire.NewSet(
	introspect.NewService,
	token.NewService, token.NewRepository,
	revocation.NewService, revocation.NewRepository,
	catalogue.NewService,
	access.NewService,
	provideApi,
)

func SetupIntrospectService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, cl client.Client, config util.Config) core.IntrospectService {
	wire.Build(introspectProvider)
	return nil
}

func SetupMeteringService(db *gorm.DB, rdb *redis.Client) core.MeteringService {
	wire.Build(metering.NewService)
	return nil
}
