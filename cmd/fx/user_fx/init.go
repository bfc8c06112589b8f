package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gemquest/internal/api/controllers"
	"gemquest/internal/repositories"
	"gemquest/internal/services"
	"gemquest/pkg/memcache"
)

var Module = fx.Provide(
	provideParentRepo,
	provideChildRepo,
	provideSessionStore,
	provideUserService,
	provideFamilyService,
	provideUserController)

func provideParentRepo(db *gorm.DB) repositories.ParentRepository {
	return repositories.NewParentRepository(db)
}

func provideChildRepo(db *gorm.DB) repositories.ChildRepository {
	return repositories.NewChildRepository(db)
}

func provideSessionStore() memcache.SessionStore {
	return memcache.NewRefreshSessions()
}

func provideUserService(parentRepo repositories.ParentRepository, sessions memcache.SessionStore) services.UserServiceInterface {
	return services.NewUserService(parentRepo, sessions)
}

func provideFamilyService(parentRepo repositories.ParentRepository, childRepo repositories.ChildRepository) services.FamilyServiceInterface {
	return services.NewFamilyService(parentRepo, childRepo)
}

func provideUserController(userService services.UserServiceInterface, familyService services.FamilyServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService, familyService)
}
