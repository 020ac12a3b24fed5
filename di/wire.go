//go:build wireinject
// +build wireinject

package di

import (
	"todolist/config"
	"todolist/infras/database"
	"todolist/infras/otel"
	"todolist/infras/redis"
	taskRepository "todolist/internal/domains/task/repository"
	taskService "todolist/internal/domains/task/service"
	homeHandler "todolist/internal/handlers/home"
	taskHandler "todolist/internal/handlers/task"
	"todolist/internal/view"
	"todolist/shared/cache"
	"todolist/transport/http"
	"todolist/transport/http/middleware"
	"todolist/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	taskService.New,
)

var domains = wire.NewSet(
	taskDomain,
)

var presentation = wire.NewSet(
	view.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	homeHandler.New,
	taskHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		presentation,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
