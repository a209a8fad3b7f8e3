package router

import (
	"github.com/oksasatya/contactbook-api/internal/application"
	"github.com/oksasatya/contactbook-api/internal/container"
	pginfra "github.com/oksasatya/contactbook-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/contactbook-api/internal/interface/http"
	"github.com/oksasatya/contactbook-api/internal/interface/middleware"
	"github.com/oksasatya/contactbook-api/internal/router/modules"
	"github.com/oksasatya/contactbook-api/internal/session"
)

// InitModules wires repositories, services, and handlers from the
// container singletons and registers all feature modules. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()

	users := pginfra.NewUserRepository(pool)
	contacts := pginfra.NewContactRepository(pool)
	addresses := pginfra.NewAddressRepository(pool)
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	authSvc := application.NewAuthService(users, sessions)
	contactSvc := application.NewContactService(contacts, container.GetRabbitPub(), logger)
	addressSvc := application.NewAddressService(contacts, addresses)

	authMW := middleware.Auth(authSvc)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, logger), authMW, rdb))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger), authMW, rdb))
	r.Add(modules.NewAddressModule(handlers.NewAddressHandler(addressSvc, logger), authMW))
}
