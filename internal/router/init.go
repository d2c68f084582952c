package router

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/config"
	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/container"
	handlers "github.com/oksasatya/go-contact-management/internal/interface/http"
	"github.com/oksasatya/go-contact-management/internal/interface/middleware"
	"github.com/oksasatya/go-contact-management/internal/router/modules"
)

// Deps are the collaborators every module is built from.
type Deps struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client
	Repos  container.Repositories
}

func depsFromContainer() Deps {
	return Deps{
		Config: container.GetConfig(),
		Logger: container.GetLogger(),
		Redis:  container.GetRedis(),
		Repos:  container.GetRepositories(),
	}
}

func guards(d Deps, users *application.UserService) modules.Guards {
	g := modules.Guards{Auth: middleware.Auth(users)}
	if d.Config == nil || !d.Config.RateLimitActive() {
		return g
	}
	var allow middleware.AllowFunc
	if d.Config.RateLimitBypassPrivate {
		allow = middleware.AllowPrivateIP()
	}
	perMinute := d.Config.RateLimitPerMinute
	// unauthenticated routes get a tighter budget
	g.PublicLimit = middleware.RateLimit(d.Redis, max(perMinute/4, 1), time.Minute, middleware.KeyByIPAndPath(), allow)
	g.UserLimit = middleware.RateLimit(d.Redis, perMinute, time.Minute, middleware.KeyByUsername(), allow)
	return g
}

// Mount builds services, handlers and modules from d and adds them to r.
func Mount(r *Registry, d Deps) {
	users := application.NewUserService(d.Repos.Users, d.Logger)
	contacts := application.NewContactService(d.Repos.Contacts, d.Logger)
	addresses := application.NewAddressService(d.Repos.Addresses, contacts, d.Logger)

	g := guards(d, users)
	r.Add(
		modules.NewUserModule(handlers.NewUserHandler(users, d.Logger), g),
		modules.NewContactModule(
			handlers.NewContactHandler(contacts, d.Logger),
			handlers.NewAddressHandler(addresses, d.Logger),
			g,
		),
	)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	Mount(r, depsFromContainer())
}
