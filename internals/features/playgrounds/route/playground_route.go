package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"markazy_backend/internals/constants"
	"markazy_backend/internals/features/playgrounds/controller"
	authStore "markazy_backend/internals/features/users/auth/store"
	authMiddleware "markazy_backend/internals/middlewares/auth"
)

func PlaygroundRoutes(api fiber.Router, db *gorm.DB, tokens authStore.TokenStore) {
	ctrl := controller.NewPlaygroundController(db)

	public := api.Group("/playgrounds")
	public.Get("/", ctrl.GetAll)
	public.Get("/stats", ctrl.Stats)
	public.Get("/:id", ctrl.GetByID)

	protected := api.Group("/playgrounds",
		authMiddleware.AuthMiddleware(tokens),
		authMiddleware.OnlyRole(constants.RoleCenters, constants.RoleError(constants.RoleCenters, "playgrounds")),
	)
	protected.Post("/bulk", ctrl.BulkCreate)
	protected.Post("/", ctrl.Create)
	protected.Put("/:id", ctrl.Update)
	protected.Delete("/:id", ctrl.Delete)
}
