package chore_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gemquest/internal/api/controllers"
	"gemquest/internal/repositories"
	"gemquest/internal/services"
)

var Module = fx.Provide(
	provideChoreRepo,
	provideChoreService,
	provideChoreController)

func provideChoreRepo(db *gorm.DB) repositories.ChoreRepository {
	return repositories.NewChoreRepository(db)
}

func provideChoreService(choreRepo repositories.ChoreRepository, childRepo repositories.ChildRepository) services.ChoreServiceInterface {
	return services.NewChoreService(choreRepo, childRepo)
}

func provideChoreController(choreService services.ChoreServiceInterface) *controllers.ChoreController {
	return controllers.NewChoreController(choreService)
}
