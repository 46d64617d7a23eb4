package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"markazy_backend/internals/constants"
	"markazy_backend/internals/features/swimmingpools/controller"
	authStore "markazy_backend/internals/features/users/auth/store"
	authMiddleware "markazy_backend/internals/middlewares/auth"
)

func SwimmingPoolRoutes(api fiber.Router, db *gorm.DB, tokens authStore.TokenStore) {
	ctrl := controller.NewSwimmingPoolController(db)

	public := api.Group("/swimming-pools")
	public.Get("/", ctrl.GetAll)
	public.Get("/stats", ctrl.Stats)
	public.Get("/:id", ctrl.GetByID)

	protected := api.Group("/swimming-pools",
		authMiddleware.AuthMiddleware(tokens),
		authMiddleware.OnlyRole(constants.RoleCenters, constants.RoleError(constants.RoleCenters, "swimming pools")),
	)
	protected.Post("/bulk", ctrl.BulkCreate)
	protected.Post("/", ctrl.Create)
	protected.Put("/:id", ctrl.Update)
	protected.Delete("/:id", ctrl.Delete)
}
